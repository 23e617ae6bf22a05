package services

import (
	"net/http"
	"testing"

	"banner-service/helper"
	"banner-service/models"

	"github.com/stretchr/testify/assert"
)

func TestTagServiceCreateRequiresAdmin(t *testing.T) {
	service := NewTagService(newFakeTagRepo())

	_, err := service.CreateTag(false)
	assert.ErrorIs(t, err, models.ErrForbidden)

	tag, err := service.CreateTag(true)
	assert.NoError(t, err)
	assert.NotZero(t, tag.ID)
}

func TestTagServiceDelete(t *testing.T) {
	repo := newFakeTagRepo(1, 2)
	service := NewTagService(repo)

	assert.ErrorIs(t, service.DeleteTag(1, false), models.ErrForbidden)

	err := service.DeleteTag(99, true)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, (&helper.HTTPHelper{}).GetStatusCode(err))

	assert.NoError(t, service.DeleteTag(1, true))
	assert.NotContains(t, repo.ids, uint(1))
}

func TestFeatureServiceCreateRequiresAdmin(t *testing.T) {
	service := NewFeatureService(newFakeFeatureRepo())

	_, err := service.CreateFeature(false)
	assert.ErrorIs(t, err, models.ErrForbidden)

	feature, err := service.CreateFeature(true)
	assert.NoError(t, err)
	assert.NotZero(t, feature.ID)
}

func TestFeatureServiceDelete(t *testing.T) {
	repo := newFakeFeatureRepo(1)
	service := NewFeatureService(repo)

	assert.ErrorIs(t, service.DeleteFeature(1, false), models.ErrForbidden)

	err := service.DeleteFeature(99, true)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, (&helper.HTTPHelper{}).GetStatusCode(err))

	assert.NoError(t, service.DeleteFeature(1, true))
}
