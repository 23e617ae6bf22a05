package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type UserBannerParams struct {
	TagID           uint `form:"tag_id" binding:"required"`
	FeatureID       uint `form:"feature_id" binding:"required"`
	UseLastRevision bool `form:"use_last_revision"`
}

type BannerListParams struct {
	FeatureID *uint `form:"feature_id"`
	TagID     *uint `form:"tag_id"`
	Limit     *int  `form:"limit"`
	Offset    *int  `form:"offset"`
}

type CreateBannerRequest struct {
	TagIDs    []uint  `json:"tag_ids" binding:"required"`
	FeatureID uint    `json:"feature_id" binding:"required"`
	Content   JSONMap `json:"content" binding:"required"`
	IsActive  bool    `json:"is_active"`
}

// PatchBannerRequest carries a partial update; nil fields are left
// untouched. An empty tag_ids list is treated the same as an absent one.
type PatchBannerRequest struct {
	TagIDs    []uint  `json:"tag_ids"`
	FeatureID *uint   `json:"feature_id"`
	Content   JSONMap `json:"content"`
	IsActive  *bool   `json:"is_active"`
}

type BulkDeleteParams struct {
	FeatureID *uint `form:"feature_id"`
	TagID     *uint `form:"tag_id"`
}

type BannerResponse struct {
	Content JSONMap `json:"content"`
}

type BannerAdminResponse struct {
	BannerID  uint      `json:"banner_id"`
	TagIDs    []uint    `json:"tag_ids"`
	FeatureID uint      `json:"feature_id"`
	Content   JSONMap   `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
