package displays

import dd "partner-ads/internal/domain/displays"

type CreateInput struct {
	Name     string
	Location *string
	OwnerID  *uint
	// Active defaults to true.
	Active *bool
}

type Patch struct {
	Name     *string
	Location *string
	OwnerID  *uint
	Active   *bool
}

func (p Patch) Apply(d *dd.Display) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Location != nil {
		d.Location = p.Location
	}
	if p.OwnerID != nil {
		d.OwnerID = p.OwnerID
	}
	if p.Active != nil {
		d.Active = *p.Active
	}
}
