package gql

import (
	"mime/multipart"
	"time"

	"partner-ads/internal/domain/campaigns"
	"partner-ads/internal/domain/users"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

var strict = bluemonday.StrictPolicy()

// args reads optional resolver arguments. A missing or null argument yields
// nil so it can feed patch structs directly.
type args map[string]interface{}

func (a args) str(name string) *string {
	s, ok := a[name].(string)
	if !ok {
		return nil
	}
	return &s
}

// text is str with markup stripped, for free-text fields.
func (a args) text(name string) *string {
	s := a.str(name)
	if s == nil {
		return nil
	}
	clean := strict.Sanitize(*s)
	return &clean
}

func (a args) textOr(name, fallback string) string {
	if s := a.text(name); s != nil {
		return *s
	}
	return fallback
}

func (a args) integer(name string) *int {
	n, ok := a[name].(int)
	if !ok {
		return nil
	}
	return &n
}

// id reads a record reference. Mutations reject negative references before
// resolving; for lookups a negative id simply matches nothing.
func (a args) id(name string) *uint {
	n := a.integer(name)
	if n == nil || *n < 0 {
		return nil
	}
	id := uint(*n)
	return &id
}

func (a args) mustID(name string) uint {
	if id := a.id(name); id != nil {
		return *id
	}
	return 0
}

func (a args) boolean(name string) *bool {
	b, ok := a[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

func (a args) date(name string) *time.Time {
	t, ok := a[name].(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func (a args) decimal(name string) *decimal.Decimal {
	d, ok := a[name].(decimal.Decimal)
	if !ok {
		return nil
	}
	return &d
}

func (a args) object(name string) map[string]interface{} {
	m, _ := a[name].(map[string]interface{})
	return m
}

func (a args) role(name string) *users.Role {
	r, ok := a[name].(users.Role)
	if !ok {
		return nil
	}
	return &r
}

func (a args) status(name string) *campaigns.Status {
	s, ok := a[name].(campaigns.Status)
	if !ok {
		return nil
	}
	return &s
}

func (a args) file(name string) *multipart.FileHeader {
	fh, _ := a[name].(*multipart.FileHeader)
	return fh
}
