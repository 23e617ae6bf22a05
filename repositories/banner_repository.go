package repositories

import (
	"banner-service/models"

	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(banner *models.Banner, tagIDs []uint) error
	GetByID(id uint) (*models.Banner, error)
	GetByFeatureAndTag(featureID, tagID uint) (*models.Banner, error)
	GetByTagsAndFeature(tagIDs []uint, featureID uint) ([]models.Banner, error)
	GetList(params models.BannerListParams) ([]models.Banner, error)
	Update(banner *models.Banner, tagIDs []uint) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	DeleteByFeatureID(featureID uint) error
	DeleteByTagID(tagID uint) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

// Create inserts the banner and its join rows in one transaction. The join
// rows carry the banner's feature id, so a concurrent insert of a
// conflicting (tag, feature) combination fails on the unique index and
// surfaces as gorm.ErrDuplicatedKey.
func (r *bannerRepository) Create(banner *models.Banner, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(banner).Error; err != nil {
			return err
		}
		return createBannerTags(tx, banner.ID, banner.FeatureID, tagIDs)
	})
}

func createBannerTags(tx *gorm.DB, bannerID, featureID uint, tagIDs []uint) error {
	for _, tagID := range tagIDs {
		row := models.BannerTag{
			BannerID:  bannerID,
			TagID:     tagID,
			FeatureID: featureID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *bannerRepository) GetByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.Preload("Tags").First(&banner, id).Error
	return &banner, err
}

func (r *bannerRepository) GetByFeatureAndTag(featureID, tagID uint) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.
		Joins("JOIN banner_tags ON banner_tags.banner_id = banners.id").
		Where("banners.feature_id = ? AND banner_tags.tag_id = ?", featureID, tagID).
		Preload("Tags").
		First(&banner).Error
	return &banner, err
}

// GetByTagsAndFeature returns every banner of the feature whose tag-set
// intersects tagIDs. Used for the uniqueness check on create/update.
func (r *bannerRepository) GetByTagsAndFeature(tagIDs []uint, featureID uint) ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.
		Distinct("banners.*").
		Joins("JOIN banner_tags ON banner_tags.banner_id = banners.id").
		Where("banners.feature_id = ? AND banner_tags.tag_id IN ?", featureID, tagIDs).
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) GetList(params models.BannerListParams) ([]models.Banner, error) {
	query := r.db.Model(&models.Banner{}).Preload("Tags")

	if params.FeatureID != nil {
		query = query.Where("banners.feature_id = ?", *params.FeatureID)
	}
	if params.TagID != nil {
		query = query.
			Distinct("banners.*").
			Joins("JOIN banner_tags ON banner_tags.banner_id = banners.id").
			Where("banner_tags.tag_id = ?", *params.TagID)
	}
	if params.Limit != nil {
		query = query.Limit(*params.Limit)
	}
	if params.Offset != nil {
		query = query.Offset(*params.Offset)
	}

	var banners []models.Banner
	err := query.Order("banners.id").Find(&banners).Error
	return banners, err
}

// Update persists the banner fields. A non-nil tagIDs replaces the join
// rows; otherwise the existing rows are kept but their feature_id is
// synced with the banner's, so the unique index stays correct after a
// feature-only patch.
func (r *bannerRepository) Update(banner *models.Banner, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(banner).Error; err != nil {
			return err
		}
		if tagIDs != nil {
			if err := tx.Where("banner_id = ?", banner.ID).Delete(&models.BannerTag{}).Error; err != nil {
				return err
			}
			return createBannerTags(tx, banner.ID, banner.FeatureID, tagIDs)
		}
		return tx.Model(&models.BannerTag{}).
			Where("banner_id = ?", banner.ID).
			Update("feature_id", banner.FeatureID).Error
	})
}

func (r *bannerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("banner_id = ?", id).Delete(&models.BannerTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Banner{}, id).Error
	})
}

func (r *bannerRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Banner{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *bannerRepository) DeleteByFeatureID(featureID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feature_id = ?", featureID).Delete(&models.BannerTag{}).Error; err != nil {
			return err
		}
		return tx.Where("feature_id = ?", featureID).Delete(&models.Banner{}).Error
	})
}

func (r *bannerRepository) DeleteByTagID(tagID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var bannerIDs []uint
		err := tx.Model(&models.BannerTag{}).
			Where("tag_id = ?", tagID).
			Pluck("banner_id", &bannerIDs).Error
		if err != nil {
			return err
		}
		if len(bannerIDs) == 0 {
			return nil
		}
		if err := tx.Where("banner_id IN ?", bannerIDs).Delete(&models.BannerTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", bannerIDs).Delete(&models.Banner{}).Error
	})
}
