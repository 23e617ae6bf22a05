package repositories

import (
	"banner-service/models"

	"gorm.io/gorm"
)

type FeatureRepository interface {
	Create(feature *models.Feature) error
	GetAll() ([]models.Feature, error)
	Exists(id uint) (bool, error)
	Delete(id uint) error
}

type featureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

func (r *featureRepository) Create(feature *models.Feature) error {
	return r.db.Create(feature).Error
}

func (r *featureRepository) GetAll() ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.Order("id").Find(&features).Error
	return features, err
}

func (r *featureRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Feature{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes the feature together with its banners and their join
// rows; the feature is the exclusive-owning side of the relation.
func (r *featureRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feature_id = ?", id).Delete(&models.BannerTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feature_id = ?", id).Delete(&models.Banner{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feature{}, id).Error
	})
}
