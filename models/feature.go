package models

import "time"

// Feature is an opaque selection dimension. Each banner belongs to exactly
// one feature; deleting a feature removes its banners.
type Feature struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
}
