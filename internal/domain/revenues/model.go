package revenues

import (
	"time"

	"github.com/shopspring/decimal"

	"partner-ads/internal/domain/campaigns"
	"partner-ads/internal/domain/displays"
	"partner-ads/internal/domain/users"
)

type Revenue struct {
	ID          uint            `gorm:"primaryKey"`
	Amount      decimal.Decimal `gorm:"column:revenue;type:decimal(12,2);not null"`
	Source      *string         `gorm:"type:text"`
	Description *string         `gorm:"type:text"`
	Date        time.Time       `gorm:"column:date_revenue;type:date;not null;index:idx_revenue_date"`

	PartnerID *uint       `gorm:"column:id_utilisateur_partenaire_id;index"`
	Partner   *users.User `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`

	CampaignID *uint               `gorm:"column:id_campaign_id;index"`
	Campaign   *campaigns.Campaign `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`

	DisplayID *uint             `gorm:"column:id_display_id;index"`
	Display   *displays.Display `gorm:"foreignKey:DisplayID;constraint:OnDelete:CASCADE"`
}

func (Revenue) TableName() string { return "revenue" }
