// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name        string       `json:"name" gorm:"size:255;not null"`
	SKU         string       `json:"sku" gorm:"size:100;not null;index"`
	ActualPrice float64      `json:"actual_price" gorm:"type:decimal(10,2)"`
	SellPrice   float64      `json:"sell_price" gorm:"type:decimal(10,2)"`
	Discount    float64      `json:"discount" gorm:"type:decimal(5,2)"`
	Colors      StringList   `json:"colors" gorm:"type:text"`
	Sizes       StringList   `json:"sizes" gorm:"type:text"`
	Brand       string       `json:"brand" gorm:"size:255;index"`
	Category    string       `json:"category" gorm:"size:255;index"`
	Gender      string       `json:"gender" gorm:"size:20"`
	ProductType string       `json:"product_type" gorm:"size:100;index"`
	Description string       `json:"description" gorm:"type:text"`
	Details     string       `json:"details" gorm:"type:text"`
	ReleaseDate string       `json:"release_date" gorm:"size:20"`
	Status      EntityStatus `json:"status" gorm:"type:varchar(20);default:'Active';index"`
	Trending    bool         `json:"trending" gorm:"default:false"`
	TopBrand    bool         `json:"top_brand" gorm:"default:false"`
	Slug        string       `json:"slug" gorm:"size:255;index"`

	// Relationships
	Images []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
}
