// internal/models/product_image.go
package models

import "github.com/google/uuid"

// ProductImage is the metadata row behind one stored object under the
// product's storage prefix. ImageURL holds the public URL verbatim as
// returned by the store; ColorID optionally tags the image with a variant
// color and never touches storage when reassigned.
type ProductImage struct {
	BaseModel
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	ImageURL  string     `json:"image_url" gorm:"type:text;not null"`
	ColorID   *uuid.UUID `json:"color_id" gorm:"type:uuid"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
