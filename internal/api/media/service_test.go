package media

import (
	"context"
	"testing"

	"partner-ads/database"
	"partner-ads/database/databasetest"
	"partner-ads/internal/domain/campaigns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreatePrefixesPath(t *testing.T) {
	s := NewService(databasetest.Open(t))

	img, err := s.Create(context.Background(), CreateInput{Path: "spring/poster.jpg", Description: ptr("poster")})
	require.NoError(t, err)
	assert.Equal(t, "media/spring/poster.jpg", img.Path)
	assert.False(t, img.UploadedAt.IsZero())
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewService(databasetest.Open(t))
	img, err := s.Create(ctx, CreateInput{Path: "a.jpg", Description: ptr("first")})
	require.NoError(t, err)

	got, err := s.Update(ctx, img.ID, Patch{Description: ptr("second")})
	require.NoError(t, err)
	assert.Equal(t, "media/a.jpg", got.Path)
	assert.Equal(t, "second", *got.Description)

	got, err = s.Update(ctx, img.ID, Patch{Path: ptr("b.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "media/b.jpg", got.Path)
	assert.Equal(t, "second", *got.Description)

	_, err = s.Update(ctx, 99, Patch{Path: ptr("c.jpg")})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteClearsCoverAndAttachments(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	s := NewService(db)

	img, err := s.Create(ctx, CreateInput{Path: "a.jpg"})
	require.NoError(t, err)
	c := campaigns.Campaign{Name: "C", Status: campaigns.StatusUpload, ImageID: &img.ID}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Create(&campaigns.CampaignImage{CampaignID: c.ID, ImageID: img.ID, Order: 1}).Error)

	require.NoError(t, s.Delete(ctx, img.ID))
	assert.ErrorIs(t, s.Delete(ctx, img.ID), database.ErrNotFound)

	var stored campaigns.Campaign
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Nil(t, stored.ImageID)

	var links int64
	require.NoError(t, db.Model(&campaigns.CampaignImage{}).Count(&links).Error)
	assert.Zero(t, links)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	_, err = s.Get(ctx, img.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
