package services

import (
	"fmt"

	"banner-service/models"
	"banner-service/repositories"
)

type FeatureService interface {
	CreateFeature(isAdmin bool) (*models.Feature, error)
	GetFeatures() ([]models.Feature, error)
	DeleteFeature(id uint, isAdmin bool) error
}

type featureService struct {
	featureRepo repositories.FeatureRepository
}

func NewFeatureService(featureRepo repositories.FeatureRepository) FeatureService {
	return &featureService{featureRepo: featureRepo}
}

func (s *featureService) CreateFeature(isAdmin bool) (*models.Feature, error) {
	if !isAdmin {
		return nil, models.ErrForbidden
	}
	feature := &models.Feature{}
	if err := s.featureRepo.Create(feature); err != nil {
		return nil, err
	}
	return feature, nil
}

func (s *featureService) GetFeatures() ([]models.Feature, error) {
	return s.featureRepo.GetAll()
}

// DeleteFeature cascades to every banner bound to the feature.
func (s *featureService) DeleteFeature(id uint, isAdmin bool) error {
	if !isAdmin {
		return models.ErrForbidden
	}
	exists, err := s.featureRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: feature does not exist", models.ErrInvalidInput)
	}
	return s.featureRepo.Delete(id)
}
