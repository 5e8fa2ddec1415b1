package campaigns

import (
	"context"
	"fmt"

	"partner-ads/database"
	dc "partner-ads/internal/domain/campaigns"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Service) ListCampaignDisplays(ctx context.Context) ([]dc.CampaignDisplay, error) {
	return database.List[dc.CampaignDisplay](ctx, s.db)
}

func (s *Service) GetCampaignDisplay(ctx context.Context, id uint) (*dc.CampaignDisplay, error) {
	return database.Get[dc.CampaignDisplay](ctx, s.db, id)
}

// CreateCampaignDisplay schedules a campaign on a display. A pair can only be
// scheduled once.
func (s *Service) CreateCampaignDisplay(ctx context.Context, in DisplayInput) (*dc.CampaignDisplay, error) {
	cd := dc.CampaignDisplay{
		CampaignID: in.CampaignID,
		DisplayID:  in.DisplayID,
		StartDate:  dateOnly(in.StartDate),
		EndDate:    dateOnly(in.EndDate),
	}
	if in.Impressions != nil {
		cd.Impressions = *in.Impressions
	}
	if err := s.db.WithContext(ctx).Create(&cd).Error; err != nil {
		return nil, fmt.Errorf("create campaign display: %w", err)
	}
	return &cd, nil
}

func (s *Service) UpdateCampaignDisplay(ctx context.Context, id uint, p DisplayPatch) (*dc.CampaignDisplay, error) {
	var cd dc.CampaignDisplay
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cd, id).Error; err != nil {
			return database.NotFound(err)
		}
		p.Apply(&cd)
		return tx.Omit(clause.Associations).Save(&cd).Error
	})
	if err != nil {
		return nil, err
	}
	return &cd, nil
}

func (s *Service) DeleteCampaignDisplay(ctx context.Context, id uint) error {
	return database.Delete[dc.CampaignDisplay](ctx, s.db, id)
}
