package repositories

import (
	"banner-service/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByIDs(ids []uint) ([]models.Tag, error)
	GetAll() ([]models.Tag, error)
	Exists(id uint) (bool, error)
	Delete(id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("id").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes the tag and its join rows. Banners keep existing with
// their remaining tags.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.BannerTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}
