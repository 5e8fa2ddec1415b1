package campaigns

import (
	"context"
	"fmt"

	"partner-ads/database"
	dc "partner-ads/internal/domain/campaigns"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Service) ListCampaignImages(ctx context.Context) ([]dc.CampaignImage, error) {
	return database.List[dc.CampaignImage](ctx, s.db)
}

func (s *Service) GetCampaignImage(ctx context.Context, id uint) (*dc.CampaignImage, error) {
	return database.Get[dc.CampaignImage](ctx, s.db, id)
}

// CreateCampaignImage links an existing image. Unlike Upload it does not
// touch the campaign status.
func (s *Service) CreateCampaignImage(ctx context.Context, in ImageInput) (*dc.CampaignImage, error) {
	ci := dc.CampaignImage{CampaignID: in.CampaignID, ImageID: in.ImageID, Order: 1}
	if in.Order != nil {
		ci.Order = *in.Order
	}
	if err := s.db.WithContext(ctx).Create(&ci).Error; err != nil {
		return nil, fmt.Errorf("create campaign image: %w", err)
	}
	return &ci, nil
}

func (s *Service) UpdateCampaignImage(ctx context.Context, id uint, p ImagePatch) (*dc.CampaignImage, error) {
	var ci dc.CampaignImage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ci, id).Error; err != nil {
			return database.NotFound(err)
		}
		p.Apply(&ci)
		return tx.Omit(clause.Associations).Save(&ci).Error
	})
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func (s *Service) DeleteCampaignImage(ctx context.Context, id uint) error {
	return database.Delete[dc.CampaignImage](ctx, s.db, id)
}
