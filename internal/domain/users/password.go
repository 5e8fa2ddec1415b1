package users

import (
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (u *User) SetPassword(raw string) error {
	hashed, err := HashPassword(raw)
	if err != nil {
		return err
	}
	u.Password = &hashed
	return nil
}

// CheckPassword accepts either the bcrypt hash or, for rows created before
// hashing was introduced, an exact match on the stored value.
func (u *User) CheckPassword(raw string) bool {
	if u.Password == nil || *u.Password == "" {
		return false
	}
	if *u.Password == raw {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(raw)) == nil
}
