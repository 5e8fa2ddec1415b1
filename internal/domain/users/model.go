package users

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	LastName  string `gorm:"column:nom;size:100;not null"`
	FirstName string `gorm:"column:prenom;size:100;not null"`
	Email     string `gorm:"size:150;not null;uniqueIndex:idx_utilisateurs_email"`

	// Password holds a bcrypt hash. Rows imported from the legacy system may
	// still carry the clear value, see CheckPassword.
	Password *string `gorm:"column:mot_de_passe;size:255"`

	Role        Role              `gorm:"size:50;not null;index:idx_utilisateurs_role"`
	Permissions datatypes.JSONMap `gorm:"not null"`
	Active      bool              `gorm:"column:actif;not null"`

	Contact *string `gorm:"size:150"`
	Country *string `gorm:"column:pays;size:150"`
	City    *string `gorm:"column:ville;size:150"`
	Picture *string `gorm:"type:text"`
	Icon    *string `gorm:"column:icone;size:50"`

	LastLogin time.Time `gorm:"column:last_connexion;autoUpdateTime"`
	CreatedAt time.Time `gorm:"column:date_creation"`
}

func (User) TableName() string { return "utilisateurs" }
