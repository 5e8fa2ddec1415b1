package revenues

import (
	"time"

	dr "partner-ads/internal/domain/revenues"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Amount      decimal.Decimal
	Source      *string
	Description *string
	// Date defaults to the current day.
	Date       *time.Time
	PartnerID  *uint
	CampaignID *uint
	DisplayID  *uint
}

type Patch struct {
	Amount      *decimal.Decimal
	Source      *string
	Description *string
	Date        *time.Time
	PartnerID   *uint
	CampaignID  *uint
	DisplayID   *uint
}

func (p Patch) Apply(r *dr.Revenue) {
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Source != nil {
		r.Source = p.Source
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.PartnerID != nil {
		r.PartnerID = p.PartnerID
	}
	if p.CampaignID != nil {
		r.CampaignID = p.CampaignID
	}
	if p.DisplayID != nil {
		r.DisplayID = p.DisplayID
	}
}
