package displays

import (
	"time"

	"partner-ads/internal/domain/users"
)

// Display is one physical screen or billboard owned by a partner.
type Display struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"column:display_name;type:text;not null"`
	Location *string `gorm:"column:localisation;type:text"`

	OwnerID *uint       `gorm:"column:id_utilisateur_partenaire_id;index"`
	Owner   *users.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`

	Active    bool      `gorm:"column:actif;not null"`
	CreatedAt time.Time `gorm:"column:date_creation"`
}

func (Display) TableName() string { return "display" }
