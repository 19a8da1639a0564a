// internal/models/catalog.go
package models

// Reference entities behind the catalog dropdowns. Brand and Category
// additionally own one optional image/background-image pair, kept in step
// with the object store the same way product images are.

type Brand struct {
	BaseModel
	Name               string       `json:"name" gorm:"size:255;not null"`
	Status             EntityStatus `json:"status" gorm:"type:varchar(20);default:'Active'"`
	Slug               string       `json:"slug" gorm:"size:255;index"`
	ImageURL           string       `json:"image_url" gorm:"type:text"`
	BackgroundImageURL string       `json:"background_image_url" gorm:"type:text"`
}

type Category struct {
	BaseModel
	Name               string       `json:"name" gorm:"size:255;not null"`
	Status             EntityStatus `json:"status" gorm:"type:varchar(20);default:'Active'"`
	Slug               string       `json:"slug" gorm:"size:255;index"`
	ImageURL           string       `json:"image_url" gorm:"type:text"`
	BackgroundImageURL string       `json:"background_image_url" gorm:"type:text"`
}

type Color struct {
	BaseModel
	ColorName string       `json:"color_name" gorm:"size:100;not null"`
	HexCode   string       `json:"hex_code" gorm:"size:20;not null"`
	Status    EntityStatus `json:"status" gorm:"type:varchar(20);default:'Active'"`
	Slug      string       `json:"slug" gorm:"size:100;index"`
}

type Size struct {
	BaseModel
	Size   string       `json:"size" gorm:"size:50;not null"`
	Status EntityStatus `json:"status" gorm:"type:varchar(20);default:'Active'"`
}
