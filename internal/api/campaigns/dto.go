package campaigns

import (
	"io"
	"time"

	dc "partner-ads/internal/domain/campaigns"
	dm "partner-ads/internal/domain/media"

	"github.com/shopspring/decimal"
)

// ---------- campaigns

type CreateInput struct {
	Name        string
	Status      *dc.Status
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      decimal.NullDecimal
	Description *string
	CreatorID   *uint
	ImageID     *uint
}

// Patch holds the fields of an update request. Status is not a plain field:
// it goes through the lifecycle engine.
type Patch struct {
	Name        *string
	Status      *dc.Status
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *decimal.Decimal
	Description *string
	CreatorID   *uint
	ImageID     *uint
}

func (p Patch) Apply(c *dc.Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.StartDate != nil {
		c.StartDate = dateOnly(p.StartDate)
	}
	if p.EndDate != nil {
		c.EndDate = dateOnly(p.EndDate)
	}
	if p.Budget != nil {
		c.Budget = decimal.NewNullDecimal(*p.Budget)
	}
	if p.Description != nil {
		c.Description = p.Description
	}
	if p.CreatorID != nil {
		c.CreatorID = p.CreatorID
	}
	if p.ImageID != nil {
		c.ImageID = p.ImageID
	}
}

// ---------- campaign displays

type DisplayInput struct {
	CampaignID  uint
	DisplayID   uint
	StartDate   *time.Time
	EndDate     *time.Time
	Impressions *int
}

type DisplayPatch struct {
	CampaignID  *uint
	DisplayID   *uint
	StartDate   *time.Time
	EndDate     *time.Time
	Impressions *int
}

func (p DisplayPatch) Apply(cd *dc.CampaignDisplay) {
	if p.CampaignID != nil {
		cd.CampaignID = *p.CampaignID
	}
	if p.DisplayID != nil {
		cd.DisplayID = *p.DisplayID
	}
	if p.StartDate != nil {
		cd.StartDate = dateOnly(p.StartDate)
	}
	if p.EndDate != nil {
		cd.EndDate = dateOnly(p.EndDate)
	}
	if p.Impressions != nil {
		cd.Impressions = *p.Impressions
	}
}

// ---------- campaign images

type ImageInput struct {
	CampaignID uint
	ImageID    uint
	// Order defaults to 1.
	Order *int
}

type ImagePatch struct {
	CampaignID *uint
	ImageID    *uint
	Order      *int
}

func (p ImagePatch) Apply(ci *dc.CampaignImage) {
	if p.CampaignID != nil {
		ci.CampaignID = *p.CampaignID
	}
	if p.ImageID != nil {
		ci.ImageID = *p.ImageID
	}
	if p.Order != nil {
		ci.Order = *p.Order
	}
}

// ---------- upload

type UploadInput struct {
	Filename    string
	Content     io.Reader
	Description *string
	OwnerID     *uint
	// CampaignID attaches the new image when set.
	CampaignID *uint
	// Order is the display position; defaults to the next free slot.
	Order *int
}

type UploadResult struct {
	OK       bool
	Message  string
	Image    *dm.Image
	Campaign *dc.Campaign
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dc.DateOf(*t)
	return &d
}
