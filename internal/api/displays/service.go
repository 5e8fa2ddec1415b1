package displays

import (
	"context"
	"fmt"

	"partner-ads/database"
	dd "partner-ads/internal/domain/displays"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(ctx context.Context) ([]dd.Display, error) {
	return database.List[dd.Display](ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id uint) (*dd.Display, error) {
	return database.Get[dd.Display](ctx, s.db, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dd.Display, error) {
	d := dd.Display{
		Name:     in.Name,
		Location: in.Location,
		OwnerID:  in.OwnerID,
		Active:   true,
	}
	if in.Active != nil {
		d.Active = *in.Active
	}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, fmt.Errorf("create display: %w", err)
	}
	return &d, nil
}

func (s *Service) Update(ctx context.Context, id uint, p Patch) (*dd.Display, error) {
	var d dd.Display
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, id).Error; err != nil {
			return database.NotFound(err)
		}
		p.Apply(&d)
		return tx.Save(&d).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return database.Delete[dd.Display](ctx, s.db, id)
}
