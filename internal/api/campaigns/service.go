package campaigns

import (
	"context"
	"fmt"
	"io"
	"time"

	"partner-ads/database"
	dc "partner-ads/internal/domain/campaigns"
	dm "partner-ads/internal/domain/media"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FileStore keeps the binary content of uploaded images.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}

type Option func(*Service)

// WithClock overrides the source of "today" used by automatic completion
// and upload bookkeeping. The returned time's location decides the day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	db    *gorm.DB
	files FileStore
	log   *zap.Logger
	now   func() time.Time
}

func NewService(db *gorm.DB, files FileStore, log *zap.Logger, opts ...Option) *Service {
	s := &Service{db: db, files: files, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]dc.Campaign, error) {
	return database.List[dc.Campaign](ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id uint) (*dc.Campaign, error) {
	return database.Get[dc.Campaign](ctx, s.db, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dc.Campaign, error) {
	c := dc.Campaign{
		Name:        in.Name,
		Status:      dc.StatusUpload,
		StartDate:   dateOnly(in.StartDate),
		EndDate:     dateOnly(in.EndDate),
		Budget:      in.Budget,
		Description: in.Description,
		CreatorID:   in.CreatorID,
		ImageID:     in.ImageID,
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("create campaign: unknown status %q", *in.Status)
		}
		c.Status = *in.Status
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}

// Update runs the lifecycle engine against the stored campaign, purges the
// attachments when the request cancels it, then overwrites the supplied
// fields. Everything but stored file removal happens in one transaction.
func (s *Service) Update(ctx context.Context, id uint, p Patch) (*dc.Campaign, error) {
	if p.Status != nil && !p.Status.Valid() {
		return nil, fmt.Errorf("update campaign: unknown status %q", *p.Status)
	}

	var (
		c      dc.Campaign
		purged []string
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return database.NotFound(err)
		}

		out := dc.Next(dc.Input{
			Trigger:   dc.TriggerUpdate,
			Current:   c.Status,
			Requested: p.Status,
			EndDate:   c.EndDate,
			Today:     s.now(),
		})

		if out.PurgeAttachments {
			images, err := purgeAttachments(tx, &c)
			if err != nil {
				return fmt.Errorf("purge attachments: %w", err)
			}
			for _, img := range images {
				purged = append(purged, img.Path)
				// a cover pointing at a purged image is dropped
				if p.ImageID != nil && *p.ImageID == img.ID {
					p.ImageID = nil
				}
			}
		}

		if out.Status != c.Status {
			s.log.Info("campaign status changed",
				zap.Uint("campaign_id", c.ID),
				zap.String("from", string(c.Status)),
				zap.String("to", string(out.Status)),
			)
		}
		c.Status = out.Status
		p.Apply(&c)

		return tx.Omit(clause.Associations).Save(&c).Error
	})
	if err != nil {
		return nil, err
	}

	s.removeFiles(ctx, purged)
	return &c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return database.Delete[dc.Campaign](ctx, s.db, id)
}

// ImagesOf lists the attachments of a campaign in display order.
func (s *Service) ImagesOf(ctx context.Context, campaignID uint) ([]dc.CampaignImage, error) {
	var out []dc.CampaignImage
	err := s.db.WithContext(ctx).
		Where("id_campaign_id = ?", campaignID).
		Order("ordre_affichage ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (s *Service) DisplaysOf(ctx context.Context, campaignID uint) ([]dc.CampaignDisplay, error) {
	var out []dc.CampaignDisplay
	err := s.db.WithContext(ctx).
		Where("id_campaign_id = ?", campaignID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// purgeAttachments deletes every CampaignImage of c and the images they
// reference, and returns the deleted images.
func purgeAttachments(tx *gorm.DB, c *dc.Campaign) ([]dm.Image, error) {
	var links []dc.CampaignImage
	if err := tx.Preload("Image").Where("id_campaign_id = ?", c.ID).Find(&links).Error; err != nil {
		return nil, err
	}

	images := make([]dm.Image, 0, len(links))
	for _, link := range links {
		if err := tx.Delete(&dc.CampaignImage{}, link.ID).Error; err != nil {
			return nil, err
		}
		if link.Image == nil {
			continue
		}
		if err := tx.Delete(&dm.Image{}, link.Image.ID).Error; err != nil {
			return nil, err
		}
		if c.ImageID != nil && *c.ImageID == link.Image.ID {
			c.ImageID = nil
		}
		images = append(images, *link.Image)
	}
	return images, nil
}

// removeFiles deletes stored content on a best-effort basis. Failures are
// logged, never returned.
func (s *Service) removeFiles(ctx context.Context, refs []string) {
	var errs error
	for _, ref := range refs {
		errs = multierr.Append(errs, s.files.Remove(ctx, ref))
	}
	if errs != nil {
		s.log.Warn("stored image cleanup failed",
			zap.Int("files", len(refs)),
			zap.Errors("errors", multierr.Errors(errs)),
		)
	}
}
