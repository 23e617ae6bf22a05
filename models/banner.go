package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONMap stores an arbitrary JSON document in a jsonb column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported jsonb source type")
	}
}

type Banner struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Content   JSONMap   `json:"content" gorm:"type:jsonb"`
	FeatureID uint      `json:"feature_id" gorm:"not null;index"`
	Feature   *Feature  `json:"-" gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE"`
	Tags      []Tag     `json:"tags,omitempty" gorm:"many2many:banner_tags;"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Banner) TagIDs() []uint {
	ids := make([]uint, 0, len(b.Tags))
	for _, tag := range b.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func (b *Banner) ToAdminResponse() BannerAdminResponse {
	return BannerAdminResponse{
		BannerID:  b.ID,
		TagIDs:    b.TagIDs(),
		FeatureID: b.FeatureID,
		Content:   b.Content,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
