package models

import "time"

// Valid work item types. The value is not enforced at the database level,
// the forms only ever submit one of these.
const (
	WorkTypeWeb    = "web"
	WorkTypeGame   = "game"
	WorkTypeDesign = "design"
	WorkTypeUxd    = "uxd"
)

type WorkItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Type        string    `gorm:"not null" json:"type"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
