// internal/models/user.go
package models

// User is a customer record. Orders reference users by id and look them up
// in bulk rather than through a join.
type User struct {
	BaseModel
	UID     string       `json:"uid" gorm:"size:100;index"`
	Name    string       `json:"name" gorm:"size:255;not null"`
	Email   string       `json:"email" gorm:"size:255;index"`
	Phone   string       `json:"phone" gorm:"size:50"`
	Address string       `json:"address" gorm:"type:text"`
	Status  EntityStatus `json:"status" gorm:"type:varchar(20);default:'Active'"`
}
