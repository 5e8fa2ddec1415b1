package campaigns

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"partner-ads/database"
	dc "partner-ads/internal/domain/campaigns"
	dm "partner-ads/internal/domain/media"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sniffLen = 512

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var ErrUnsupportedContent = errors.New("unsupported content type")

// Upload stores the file, records the image and, when a campaign is given,
// attaches it and lets the lifecycle engine react to the new image count.
// Failures leave neither rows nor stored content behind and are reported in
// the result.
func (s *Service) Upload(ctx context.Context, in UploadInput) UploadResult {
	img, c, err := s.upload(ctx, in)
	if err != nil {
		s.log.Info("upload rejected", zap.String("filename", in.Filename), zap.Error(err))
		return UploadResult{Message: "upload failed: " + err.Error()}
	}
	return UploadResult{OK: true, Message: "upload successful", Image: img, Campaign: c}
}

func (s *Service) upload(ctx context.Context, in UploadInput) (*dm.Image, *dc.Campaign, error) {
	if in.Content == nil {
		return nil, nil, errors.New("missing file content")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if ct := http.DetectContentType(head); !allowedImageTypes[ct] {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedContent, ct)
	}

	ref, err := s.files.Save(ctx, in.Filename, io.MultiReader(bytes.NewReader(head), in.Content))
	if err != nil {
		return nil, nil, fmt.Errorf("store file: %w", err)
	}

	var (
		img dm.Image
		c   *dc.Campaign
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		img = dm.Image{Path: ref, Description: in.Description, OwnerID: in.OwnerID}
		if err := tx.Create(&img).Error; err != nil {
			return fmt.Errorf("create image: %w", err)
		}
		if in.CampaignID == nil {
			return nil
		}

		var err error
		c, err = attach(tx, *in.CampaignID, img.ID, in.Order)
		return err
	})
	if err != nil {
		if rmErr := s.files.Remove(ctx, ref); rmErr != nil {
			s.log.Warn("stored upload cleanup failed", zap.String("ref", ref), zap.Error(rmErr))
		}
		return nil, nil, err
	}

	if c != nil {
		s.log.Info("image attached",
			zap.Uint("campaign_id", c.ID),
			zap.Uint("image_id", img.ID),
			zap.String("status", string(c.Status)),
		)
	}
	return &img, c, nil
}

// attach links imageID to the campaign and applies the image-attached
// transition. It returns the campaign in its new state.
func attach(tx *gorm.DB, campaignID, imageID uint, order *int) (*dc.Campaign, error) {
	var c dc.Campaign
	if err := tx.First(&c, campaignID).Error; err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, database.NotFound(err))
	}

	var count int64
	if err := tx.Model(&dc.CampaignImage{}).Where("id_campaign_id = ?", c.ID).Count(&count).Error; err != nil {
		return nil, err
	}

	link := dc.CampaignImage{CampaignID: c.ID, ImageID: imageID, Order: int(count) + 1}
	if order != nil {
		link.Order = *order
	}
	if err := tx.Create(&link).Error; err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}

	out := dc.Next(dc.Input{
		Trigger:    dc.TriggerImageAttached,
		Current:    c.Status,
		ImageCount: int(count) + 1,
	})
	if out.Status != c.Status {
		if err := tx.Model(&c).Update("status", out.Status).Error; err != nil {
			return nil, err
		}
		c.Status = out.Status
	}
	return &c, nil
}
