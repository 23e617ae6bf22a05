package services

import (
	"fmt"

	"banner-service/models"
	"banner-service/repositories"
)

type TagService interface {
	CreateTag(isAdmin bool) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	DeleteTag(id uint, isAdmin bool) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(isAdmin bool) (*models.Tag, error) {
	if !isAdmin {
		return nil, models.ErrForbidden
	}
	tag := &models.Tag{}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

// DeleteTag removes the tag and its banner associations; the banners
// themselves survive with their remaining tags.
func (s *tagService) DeleteTag(id uint, isAdmin bool) error {
	if !isAdmin {
		return models.ErrForbidden
	}
	exists, err := s.tagRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: tag does not exist", models.ErrInvalidInput)
	}
	return s.tagRepo.Delete(id)
}
