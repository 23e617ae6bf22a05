package models

import "time"

// BannerTag is the join row between banners and tags. FeatureID is
// denormalized from the owning banner so the (tag_id, feature_id) unique
// index can enforce at the storage layer that no two banners share both a
// tag and a feature, closing the race between the service-level uniqueness
// check and the insert.
type BannerTag struct {
	BannerID  uint      `json:"banner_id" gorm:"primaryKey"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey;uniqueIndex:idx_tag_feature"`
	FeatureID uint      `json:"feature_id" gorm:"not null;uniqueIndex:idx_tag_feature"`
	CreatedAt time.Time `json:"created_at"`
}
