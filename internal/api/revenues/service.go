package revenues

import (
	"context"
	"fmt"
	"time"

	"partner-ads/database"
	"partner-ads/internal/domain/campaigns"
	dr "partner-ads/internal/domain/revenues"

	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// NewService returns a revenue service. now supplies the current time in the
// business timezone; nil means time.Now.
func NewService(db *gorm.DB, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{db: db, now: now}
}

func (s *Service) List(ctx context.Context) ([]dr.Revenue, error) {
	return database.List[dr.Revenue](ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id uint) (*dr.Revenue, error) {
	return database.Get[dr.Revenue](ctx, s.db, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dr.Revenue, error) {
	r := dr.Revenue{
		Amount:      in.Amount,
		Source:      in.Source,
		Description: in.Description,
		Date:        campaigns.DateOf(s.now()),
		PartnerID:   in.PartnerID,
		CampaignID:  in.CampaignID,
		DisplayID:   in.DisplayID,
	}
	if in.Date != nil {
		r.Date = campaigns.DateOf(*in.Date)
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("create revenue: %w", err)
	}
	return &r, nil
}

func (s *Service) Update(ctx context.Context, id uint, p Patch) (*dr.Revenue, error) {
	var r dr.Revenue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, id).Error; err != nil {
			return database.NotFound(err)
		}
		p.Apply(&r)
		return tx.Save(&r).Error
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return database.Delete[dr.Revenue](ctx, s.db, id)
}
