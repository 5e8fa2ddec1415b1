package media

import (
	"time"

	"partner-ads/internal/domain/users"
)

// PathPrefix is prepended to every stored image reference.
const PathPrefix = "media"

type Image struct {
	ID uint `gorm:"primaryKey"`

	// Path is the stored content reference, e.g. "media/3f2c....png".
	Path        string  `gorm:"column:image;type:text;not null"`
	Description *string `gorm:"type:text"`

	OwnerID *uint       `gorm:"column:id_utilisateur_partenaire_id;index"`
	Owner   *users.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`

	UploadedAt time.Time `gorm:"column:date_upload;autoCreateTime"`
}

func (Image) TableName() string { return "image" }
