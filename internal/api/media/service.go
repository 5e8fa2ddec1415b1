package media

import (
	"context"
	"fmt"
	"path"

	"partner-ads/database"
	dm "partner-ads/internal/domain/media"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// StoredPath joins a client supplied path onto the media prefix.
func StoredPath(p string) string {
	return path.Join(dm.PathPrefix, p)
}

func (s *Service) List(ctx context.Context) ([]dm.Image, error) {
	return database.List[dm.Image](ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id uint) (*dm.Image, error) {
	return database.Get[dm.Image](ctx, s.db, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dm.Image, error) {
	img := dm.Image{
		Path:        StoredPath(in.Path),
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}
	if err := s.db.WithContext(ctx).Create(&img).Error; err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	return &img, nil
}

// Update rewrites the image record only. Stored content is left alone.
func (s *Service) Update(ctx context.Context, id uint, p Patch) (*dm.Image, error) {
	var img dm.Image
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&img, id).Error; err != nil {
			return database.NotFound(err)
		}
		if p.Path != nil && *p.Path != "" {
			img.Path = StoredPath(*p.Path)
		}
		if p.Description != nil {
			img.Description = p.Description
		}
		if p.OwnerID != nil {
			img.OwnerID = p.OwnerID
		}
		return tx.Save(&img).Error
	})
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// Delete removes the record; dependent attachments go with it and campaigns
// using it as cover lose the reference.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return database.Delete[dm.Image](ctx, s.db, id)
}
