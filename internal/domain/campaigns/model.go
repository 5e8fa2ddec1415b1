package campaigns

import (
	"time"

	"github.com/shopspring/decimal"

	"partner-ads/internal/domain/displays"
	"partner-ads/internal/domain/media"
	"partner-ads/internal/domain/users"
)

type Campaign struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"column:campaign_name;type:text;not null"`
	Status Status `gorm:"size:20;not null;default:'upload';index:idx_campaign_status"`

	StartDate *time.Time `gorm:"type:date;index:idx_campaign_dates,priority:1"`
	EndDate   *time.Time `gorm:"type:date;index:idx_campaign_dates,priority:2;check:check_campaign_dates,end_date IS NULL OR start_date <= end_date"`

	Budget      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Description *string             `gorm:"type:text"`

	CreatorID *uint       `gorm:"column:id_utilisateur_createur_id;index"`
	Creator   *users.User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`

	// ImageID is the cover image, independent from the ordered attachments.
	ImageID *uint        `gorm:"column:id_image_id"`
	Image   *media.Image `gorm:"foreignKey:ImageID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"column:date_creation"`
}

func (Campaign) TableName() string { return "campaign" }

// CampaignDisplay schedules a campaign on a display.
type CampaignDisplay struct {
	ID uint `gorm:"primaryKey"`

	CampaignID uint      `gorm:"column:id_campaign_id;not null;uniqueIndex:campaign_display_pair,priority:1"`
	Campaign   *Campaign `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`

	DisplayID uint              `gorm:"column:id_display_id;not null;uniqueIndex:campaign_display_pair,priority:2"`
	Display   *displays.Display `gorm:"foreignKey:DisplayID;constraint:OnDelete:CASCADE"`

	StartDate *time.Time `gorm:"column:date_debut_affichage;type:date;index:idx_campaign_displays_dates,priority:1"`
	EndDate   *time.Time `gorm:"column:date_fin_affichage;type:date;index:idx_campaign_displays_dates,priority:2;check:check_display_dates,date_fin_affichage IS NULL OR date_debut_affichage <= date_fin_affichage"`

	Impressions int `gorm:"column:nombre_affichages;not null"`
}

func (CampaignDisplay) TableName() string { return "campaignDisplay" }

// CampaignImage attaches an image to a campaign at a display position.
type CampaignImage struct {
	ID uint `gorm:"primaryKey"`

	CampaignID uint      `gorm:"column:id_campaign_id;not null;uniqueIndex:campaign_image_pair,priority:1"`
	Campaign   *Campaign `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`

	ImageID uint         `gorm:"column:id_image_id;not null;uniqueIndex:campaign_image_pair,priority:2"`
	Image   *media.Image `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`

	Order int `gorm:"column:ordre_affichage;not null"`
}

func (CampaignImage) TableName() string { return "campaignImage" }
