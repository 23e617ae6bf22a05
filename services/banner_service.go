package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"banner-service/cache"
	"banner-service/config"
	"banner-service/models"
	"banner-service/repositories"

	"gorm.io/gorm"
)

type BannerService interface {
	GetUserBanner(ctx context.Context, tagID, featureID uint, useLastRevision, isAdmin bool) (*models.Banner, error)
	GetBanners(params models.BannerListParams, isAdmin bool) ([]models.BannerAdminResponse, error)
	CreateBanner(req models.CreateBannerRequest, isAdmin bool) (uint, error)
	UpdateBanner(id uint, patch models.PatchBannerRequest, isAdmin bool) error
	DeleteBanner(id uint, isAdmin bool) error
	DeleteBannersByTagOrFeature(params models.BulkDeleteParams, isAdmin bool) error
}

type bannerService struct {
	bannerRepo  repositories.BannerRepository
	tagRepo     repositories.TagRepository
	featureRepo repositories.FeatureRepository
	cache       cache.Cache
	queue       TaskQueue
}

func NewBannerService(
	bannerRepo repositories.BannerRepository,
	tagRepo repositories.TagRepository,
	featureRepo repositories.FeatureRepository,
	bannerCache cache.Cache,
	queue TaskQueue,
) BannerService {
	return &bannerService{
		bannerRepo:  bannerRepo,
		tagRepo:     tagRepo,
		featureRepo: featureRepo,
		cache:       bannerCache,
		queue:       queue,
	}
}

func bannerCacheKey(tagID, featureID uint) string {
	return fmt.Sprintf("%d_%d", tagID, featureID)
}

// GetUserBanner serves the banner for a (tag, feature) pair. Unless a
// forced read is requested, the cached copy wins and may be up to the
// cache TTL stale. The activity flag travels inside the cached blob, so
// inactive banners stay hidden from non-admins even on a cache hit.
func (s *bannerService) GetUserBanner(ctx context.Context, tagID, featureID uint, useLastRevision, isAdmin bool) (*models.Banner, error) {
	cacheKey := bannerCacheKey(tagID, featureID)

	if !useLastRevision {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached models.Banner
			if unmarshalErr := json.Unmarshal(data, &cached); unmarshalErr != nil {
				log.Printf("dropping undecodable cache entry %q: %v", cacheKey, unmarshalErr)
				if err := s.cache.Delete(ctx, cacheKey); err != nil {
					log.Printf("failed to drop cache entry %q: %v", cacheKey, err)
				}
			} else {
				if cached.IsActive || isAdmin {
					return &cached, nil
				}
				return nil, models.ErrForbidden
			}
		}
	}

	tagExists, err := s.tagRepo.Exists(tagID)
	if err != nil {
		return nil, err
	}
	featureExists, err := s.featureRepo.Exists(featureID)
	if err != nil {
		return nil, err
	}
	if !tagExists || !featureExists {
		return nil, fmt.Errorf("%w: unknown tag or feature", models.ErrInvalidInput)
	}

	banner, err := s.bannerRepo.GetByFeatureAndTag(featureID, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: banner not found", models.ErrNotFound)
		}
		return nil, err
	}

	if !banner.IsActive && !isAdmin {
		return nil, models.ErrForbidden
	}

	if data, err := json.Marshal(banner); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, config.BannerCacheTTL); err != nil {
			// A cold cache only costs latency; the read itself succeeded.
			log.Printf("failed to cache banner %q: %v", cacheKey, err)
		}
	}

	return banner, nil
}

func (s *bannerService) GetBanners(params models.BannerListParams, isAdmin bool) ([]models.BannerAdminResponse, error) {
	if !isAdmin {
		return nil, models.ErrForbidden
	}
	if params.Limit != nil && *params.Limit < 1 {
		return nil, fmt.Errorf("%w: limit must be >= 1", models.ErrInvalidInput)
	}
	if params.Offset != nil && *params.Offset < 1 {
		return nil, fmt.Errorf("%w: offset must be >= 1", models.ErrInvalidInput)
	}

	banners, err := s.bannerRepo.GetList(params)
	if err != nil {
		return nil, err
	}

	response := make([]models.BannerAdminResponse, 0, len(banners))
	for i := range banners {
		response = append(response, banners[i].ToAdminResponse())
	}
	return response, nil
}

func (s *bannerService) CreateBanner(req models.CreateBannerRequest, isAdmin bool) (uint, error) {
	if !isAdmin {
		return 0, models.ErrForbidden
	}
	if len(req.TagIDs) == 0 {
		return 0, fmt.Errorf("%w: tag_ids must not be empty", models.ErrInvalidInput)
	}

	if err := s.resolveTags(req.TagIDs); err != nil {
		return 0, err
	}

	conflicts, err := s.bannerRepo.GetByTagsAndFeature(req.TagIDs, req.FeatureID)
	if err != nil {
		return 0, err
	}
	if len(conflicts) != 0 {
		return 0, fmt.Errorf("%w: uniqueness violation", models.ErrInvalidInput)
	}

	banner := &models.Banner{
		Content:   req.Content,
		FeatureID: req.FeatureID,
		IsActive:  req.IsActive,
	}
	if err := s.bannerRepo.Create(banner, req.TagIDs); err != nil {
		return 0, downgradeIntegrityError(err)
	}

	return banner.ID, nil
}

// UpdateBanner applies a partial update. A missing target is reported as
// invalid input, matching the delete-by-id path rather than the lookup
// path. When the patch replaces the tag-set, the uniqueness check runs
// against the patch's feature id, falling back to the banner's current
// feature id when the patch leaves the feature unchanged.
func (s *bannerService) UpdateBanner(id uint, patch models.PatchBannerRequest, isAdmin bool) error {
	if !isAdmin {
		return models.ErrForbidden
	}

	banner, err := s.bannerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: banner does not exist", models.ErrInvalidInput)
		}
		return err
	}

	targetFeatureID := banner.FeatureID
	if patch.FeatureID != nil {
		targetFeatureID = *patch.FeatureID
	}

	var newTagIDs []uint
	if len(patch.TagIDs) > 0 {
		if err := s.resolveTags(patch.TagIDs); err != nil {
			return err
		}
		conflicts, err := s.bannerRepo.GetByTagsAndFeature(patch.TagIDs, targetFeatureID)
		if err != nil {
			return err
		}
		for i := range conflicts {
			if conflicts[i].ID != banner.ID {
				return fmt.Errorf("%w: uniqueness violation", models.ErrInvalidInput)
			}
		}
		newTagIDs = patch.TagIDs
	}

	changed := newTagIDs != nil
	if patch.FeatureID != nil && *patch.FeatureID != banner.FeatureID {
		banner.FeatureID = *patch.FeatureID
		changed = true
	}
	if patch.Content != nil {
		banner.Content = patch.Content
		changed = true
	}
	if patch.IsActive != nil && *patch.IsActive != banner.IsActive {
		banner.IsActive = *patch.IsActive
		changed = true
	}

	if !changed {
		return nil
	}

	if err := s.bannerRepo.Update(banner, newTagIDs); err != nil {
		return downgradeIntegrityError(err)
	}
	return nil
}

func (s *bannerService) DeleteBanner(id uint, isAdmin bool) error {
	if !isAdmin {
		return models.ErrForbidden
	}

	exists, err := s.bannerRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: banner does not exist", models.ErrInvalidInput)
	}

	return s.bannerRepo.Delete(id)
}

// DeleteBannersByTagOrFeature submits one fire-and-forget job; removal is
// eventually consistent and its outcome is not reported back.
func (s *bannerService) DeleteBannersByTagOrFeature(params models.BulkDeleteParams, isAdmin bool) error {
	if !isAdmin {
		return models.ErrForbidden
	}
	if params.FeatureID != nil && params.TagID != nil {
		return fmt.Errorf("%w: specify either tag_id or feature_id, not both", models.ErrInvalidInput)
	}
	if params.FeatureID == nil && params.TagID == nil {
		return fmt.Errorf("%w: specify either tag_id or feature_id", models.ErrInvalidInput)
	}

	if params.FeatureID != nil {
		s.queue.Submit(Job{Name: JobDeleteByFeature, TargetID: *params.FeatureID})
	} else {
		s.queue.Submit(Job{Name: JobDeleteByTag, TargetID: *params.TagID})
	}
	return nil
}

// resolveTags fails when any of the ids has no Tag row.
func (s *bannerService) resolveTags(tagIDs []uint) error {
	tags, err := s.tagRepo.GetByIDs(tagIDs)
	if err != nil {
		return err
	}
	found := make(map[uint]bool, len(tags))
	for i := range tags {
		found[tags[i].ID] = true
	}
	for _, id := range tagIDs {
		if !found[id] {
			return fmt.Errorf("%w: one or more tags missing", models.ErrInvalidInput)
		}
	}
	return nil
}

// downgradeIntegrityError maps storage-level constraint violations (a lost
// uniqueness race, a vanished feature) to invalid input instead of a 5xx.
func downgradeIntegrityError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: uniqueness violation", models.ErrInvalidInput)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: unknown feature", models.ErrInvalidInput)
	}
	return err
}
