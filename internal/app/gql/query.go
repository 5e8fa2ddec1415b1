package gql

import (
	"context"

	"github.com/graphql-go/graphql"
)

// listField resolves to every record of one entity.
func listField[T any](typ graphql.Output, list func(context.Context) ([]T, error)) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(typ)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return list(p.Context)
		},
	}
}

// byIDField resolves to one record, or null when the id is unknown.
func byIDField[T any](typ graphql.Output, get func(context.Context, uint) (*T, error)) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Args: idArg(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return lookup(p.Context, args(p.Args).id("id"), get)
		},
	}
}

func queryType(svc Services, t *types) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allUtilisateurs": listField(t.user, svc.Users.List),
			"utilisateurById": byIDField(t.user, svc.Users.Get),

			"allImages": listField(t.image, svc.Images.List),
			"imageById": byIDField(t.image, svc.Images.Get),

			"allDisplays": listField(t.display, svc.Displays.List),
			"displayById": byIDField(t.display, svc.Displays.Get),

			"allCampaigns": listField(t.campaign, svc.Campaigns.List),
			"campaignById": byIDField(t.campaign, svc.Campaigns.Get),

			"allCampaignDisplays": listField(t.campaignDisplay, svc.Campaigns.ListCampaignDisplays),
			"campaignDisplayById": byIDField(t.campaignDisplay, svc.Campaigns.GetCampaignDisplay),

			"allRevenues": listField(t.revenue, svc.Revenues.List),
			"revenueById": byIDField(t.revenue, svc.Revenues.Get),

			"allCampaignImages": listField(t.campaignImage, svc.Campaigns.ListCampaignImages),
			"campaignImageById": byIDField(t.campaignImage, svc.Campaigns.GetCampaignImage),

			"me": &graphql.Field{
				Type:        t.user,
				Description: "The user of the session token, null when anonymous.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					sess := SessionFrom(p.Context)
					if sess == nil || sess.Claims == nil {
						return nil, nil
					}
					return lookup(p.Context, &sess.Claims.UserID, svc.Users.Get)
				},
			},
		},
	})
}
