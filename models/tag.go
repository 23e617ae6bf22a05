package models

import "time"

// Tag is an opaque selection dimension. It carries no payload of its own;
// banners reference tags through the banner_tags join table.
type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
}
