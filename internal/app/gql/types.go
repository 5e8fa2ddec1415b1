package gql

import (
	"context"

	dc "partner-ads/internal/domain/campaigns"
	dd "partner-ads/internal/domain/displays"
	dm "partner-ads/internal/domain/media"
	dr "partner-ads/internal/domain/revenues"
	du "partner-ads/internal/domain/users"

	"github.com/graphql-go/graphql"
)

func roleEnum() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, r := range du.Roles {
		values[string(r)] = &graphql.EnumValueConfig{Value: r}
	}
	return graphql.NewEnum(graphql.EnumConfig{Name: "UtilisateurRole", Values: values})
}

func statusEnum() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, s := range dc.Statuses {
		values[string(s)] = &graphql.EnumValueConfig{Value: s}
	}
	return graphql.NewEnum(graphql.EnumConfig{Name: "CampaignStatus", Values: values})
}

type types struct {
	role   *graphql.Enum
	status *graphql.Enum

	user            *graphql.Object
	image           *graphql.Object
	display         *graphql.Object
	campaign        *graphql.Object
	campaignDisplay *graphql.Object
	revenue         *graphql.Object
	campaignImage   *graphql.Object
}

func newTypes(svc Services) *types {
	t := &types{role: roleEnum(), status: statusEnum()}
	id := graphql.NewNonNull(graphql.ID)

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "UtilisateurType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":            field(id, func(u *du.User) interface{} { return u.ID }),
				"nom":           field(graphql.NewNonNull(graphql.String), func(u *du.User) interface{} { return u.LastName }),
				"prenom":        field(graphql.NewNonNull(graphql.String), func(u *du.User) interface{} { return u.FirstName }),
				"email":         field(graphql.NewNonNull(graphql.String), func(u *du.User) interface{} { return u.Email }),
				"role":          field(graphql.NewNonNull(t.role), func(u *du.User) interface{} { return u.Role }),
				"permissions":   field(JSONString, func(u *du.User) interface{} { return u.Permissions }),
				"actif":         field(graphql.NewNonNull(graphql.Boolean), func(u *du.User) interface{} { return u.Active }),
				"contact":       field(graphql.String, func(u *du.User) interface{} { return u.Contact }),
				"pays":          field(graphql.String, func(u *du.User) interface{} { return u.Country }),
				"ville":         field(graphql.String, func(u *du.User) interface{} { return u.City }),
				"picture":       field(graphql.String, func(u *du.User) interface{} { return u.Picture }),
				"icone":         field(graphql.String, func(u *du.User) interface{} { return u.Icon }),
				"lastConnexion": field(DateTime, func(u *du.User) interface{} { return u.LastLogin }),
				"dateCreation":  field(DateTime, func(u *du.User) interface{} { return u.CreatedAt }),
			}
		}),
	})

	t.image = graphql.NewObject(graphql.ObjectConfig{
		Name: "ImageType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          field(id, func(i *dm.Image) interface{} { return i.ID }),
				"image":       field(graphql.NewNonNull(graphql.String), func(i *dm.Image) interface{} { return i.Path }),
				"description": field(graphql.String, func(i *dm.Image) interface{} { return i.Description }),
				"idUtilisateurPartenaire": relation(t.user, func(ctx context.Context, i *dm.Image) (interface{}, error) {
					return lookup(ctx, i.OwnerID, svc.Users.Get)
				}),
				"dateUpload": field(DateTime, func(i *dm.Image) interface{} { return i.UploadedAt }),
			}
		}),
	})

	t.display = graphql.NewObject(graphql.ObjectConfig{
		Name: "DisplayType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":           field(id, func(d *dd.Display) interface{} { return d.ID }),
				"displayName":  field(graphql.NewNonNull(graphql.String), func(d *dd.Display) interface{} { return d.Name }),
				"localisation": field(graphql.String, func(d *dd.Display) interface{} { return d.Location }),
				"idUtilisateurPartenaire": relation(t.user, func(ctx context.Context, d *dd.Display) (interface{}, error) {
					return lookup(ctx, d.OwnerID, svc.Users.Get)
				}),
				"actif":        field(graphql.NewNonNull(graphql.Boolean), func(d *dd.Display) interface{} { return d.Active }),
				"dateCreation": field(DateTime, func(d *dd.Display) interface{} { return d.CreatedAt }),
			}
		}),
	})

	t.campaign = graphql.NewObject(graphql.ObjectConfig{
		Name: "CampaignType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":           field(id, func(c *dc.Campaign) interface{} { return c.ID }),
				"campaignName": field(graphql.NewNonNull(graphql.String), func(c *dc.Campaign) interface{} { return c.Name }),
				"status":       field(graphql.NewNonNull(t.status), func(c *dc.Campaign) interface{} { return c.Status }),
				"startDate":    field(Date, func(c *dc.Campaign) interface{} { return c.StartDate }),
				"endDate":      field(Date, func(c *dc.Campaign) interface{} { return c.EndDate }),
				"budget":       field(Decimal, func(c *dc.Campaign) interface{} { return c.Budget }),
				"description":  field(graphql.String, func(c *dc.Campaign) interface{} { return c.Description }),
				"idUtilisateurCreateur": relation(t.user, func(ctx context.Context, c *dc.Campaign) (interface{}, error) {
					return lookup(ctx, c.CreatorID, svc.Users.Get)
				}),
				"idImage": relation(t.image, func(ctx context.Context, c *dc.Campaign) (interface{}, error) {
					return lookup(ctx, c.ImageID, svc.Images.Get)
				}),
				"dateCreation": field(DateTime, func(c *dc.Campaign) interface{} { return c.CreatedAt }),
				"campaignimageSet": relation(graphql.NewList(graphql.NewNonNull(t.campaignImage)), func(ctx context.Context, c *dc.Campaign) (interface{}, error) {
					return svc.Campaigns.ImagesOf(ctx, c.ID)
				}),
				"campaigndisplaySet": relation(graphql.NewList(graphql.NewNonNull(t.campaignDisplay)), func(ctx context.Context, c *dc.Campaign) (interface{}, error) {
					return svc.Campaigns.DisplaysOf(ctx, c.ID)
				}),
			}
		}),
	})

	t.campaignDisplay = graphql.NewObject(graphql.ObjectConfig{
		Name: "CampaignDisplayType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": field(id, func(cd *dc.CampaignDisplay) interface{} { return cd.ID }),
				"idCampaign": relation(graphql.NewNonNull(t.campaign), func(ctx context.Context, cd *dc.CampaignDisplay) (interface{}, error) {
					return lookup(ctx, &cd.CampaignID, svc.Campaigns.Get)
				}),
				"idDisplay": relation(graphql.NewNonNull(t.display), func(ctx context.Context, cd *dc.CampaignDisplay) (interface{}, error) {
					return lookup(ctx, &cd.DisplayID, svc.Displays.Get)
				}),
				"dateDebutAffichage": field(Date, func(cd *dc.CampaignDisplay) interface{} { return cd.StartDate }),
				"dateFinAffichage":   field(Date, func(cd *dc.CampaignDisplay) interface{} { return cd.EndDate }),
				"nombreAffichages":   field(graphql.NewNonNull(graphql.Int), func(cd *dc.CampaignDisplay) interface{} { return cd.Impressions }),
			}
		}),
	})

	t.revenue = graphql.NewObject(graphql.ObjectConfig{
		Name: "RevenueType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          field(id, func(r *dr.Revenue) interface{} { return r.ID }),
				"revenue":     field(graphql.NewNonNull(Decimal), func(r *dr.Revenue) interface{} { return r.Amount }),
				"source":      field(graphql.String, func(r *dr.Revenue) interface{} { return r.Source }),
				"description": field(graphql.String, func(r *dr.Revenue) interface{} { return r.Description }),
				"dateRevenue": field(graphql.NewNonNull(Date), func(r *dr.Revenue) interface{} { return r.Date }),
				"idUtilisateurPartenaire": relation(t.user, func(ctx context.Context, r *dr.Revenue) (interface{}, error) {
					return lookup(ctx, r.PartnerID, svc.Users.Get)
				}),
				"idCampaign": relation(t.campaign, func(ctx context.Context, r *dr.Revenue) (interface{}, error) {
					return lookup(ctx, r.CampaignID, svc.Campaigns.Get)
				}),
				"idDisplay": relation(t.display, func(ctx context.Context, r *dr.Revenue) (interface{}, error) {
					return lookup(ctx, r.DisplayID, svc.Displays.Get)
				}),
			}
		}),
	})

	t.campaignImage = graphql.NewObject(graphql.ObjectConfig{
		Name: "CampaignImageType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": field(id, func(ci *dc.CampaignImage) interface{} { return ci.ID }),
				"idCampaign": relation(graphql.NewNonNull(t.campaign), func(ctx context.Context, ci *dc.CampaignImage) (interface{}, error) {
					return lookup(ctx, &ci.CampaignID, svc.Campaigns.Get)
				}),
				"idImage": relation(graphql.NewNonNull(t.image), func(ctx context.Context, ci *dc.CampaignImage) (interface{}, error) {
					return lookup(ctx, &ci.ImageID, svc.Images.Get)
				}),
				"ordreAffichage": field(graphql.NewNonNull(graphql.Int), func(ci *dc.CampaignImage) interface{} { return ci.Order }),
			}
		}),
	})

	return t
}
