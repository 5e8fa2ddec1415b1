package users

import (
	du "partner-ads/internal/domain/users"
)

type CreateInput struct {
	LastName  string
	FirstName string
	Email     string
	// Password is hashed before storage. Empty leaves the account without one.
	Password    string
	Role        du.Role
	Permissions map[string]any
	Active      *bool

	Contact *string
	Country *string
	City    *string
	Picture *string
	Icon    *string
}

// Patch carries the supplied fields of an update. Nil means "keep".
type Patch struct {
	LastName    *string
	FirstName   *string
	Email       *string
	Password    *string
	Role        *du.Role
	Permissions map[string]any
	Active      *bool

	Contact *string
	Country *string
	City    *string
	Picture *string
	Icon    *string
}

func (in CreateInput) user() du.User {
	u := du.User{
		LastName:    in.LastName,
		FirstName:   in.FirstName,
		Email:       in.Email,
		Role:        in.Role,
		Permissions: in.Permissions,
		Active:      true,
		Contact:     in.Contact,
		Country:     in.Country,
		City:        in.City,
		Picture:     in.Picture,
		Icon:        in.Icon,
	}
	if u.Permissions == nil {
		u.Permissions = map[string]any{}
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	return u
}

// Apply copies the non-nil fields onto u. The password is handled by the
// service since it needs hashing.
func (p Patch) Apply(u *du.User) {
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Permissions != nil {
		u.Permissions = p.Permissions
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.Contact != nil {
		u.Contact = p.Contact
	}
	if p.Country != nil {
		u.Country = p.Country
	}
	if p.City != nil {
		u.City = p.City
	}
	if p.Picture != nil {
		u.Picture = p.Picture
	}
	if p.Icon != nil {
		u.Icon = p.Icon
	}
}

// LoginResult mirrors the login payload: failures are reported, not raised.
type LoginResult struct {
	OK      bool
	Message string
	User    *du.User
	Token   string
}

const (
	MsgLoginOK       = "Login réussi"
	MsgWrongPassword = "Mot de passe incorrect"
	MsgUnknownUser   = "Utilisateur non trouvé"
)
