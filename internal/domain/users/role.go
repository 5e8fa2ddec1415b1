package users

import "fmt"

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleCommercial    Role = "commercial"
	RolePartner       Role = "partenaire"
	RoleClient        Role = "client"
	RoleSalesDirector Role = "directeur_commercial"
	RoleSiteManager   Role = "responsable_site"
	RoleOwner         Role = "proprietaire"
)

// Roles lists every role in declaration order.
var Roles = []Role{
	RoleAdmin,
	RoleCommercial,
	RolePartner,
	RoleClient,
	RoleSalesDirector,
	RoleSiteManager,
	RoleOwner,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
