// Package gql builds the GraphQL schema over the domain services.
//
// Field and argument names follow the camelCase names existing clients
// already use (campaignName, idUtilisateurPartenaire, ...). Enum values are
// the stored lowercase strings.
package gql

import (
	"context"

	"partner-ads/internal/api/campaigns"
	"partner-ads/internal/api/displays"
	"partner-ads/internal/api/media"
	"partner-ads/internal/api/revenues"
	"partner-ads/internal/api/users"

	"github.com/graphql-go/graphql"
)

type Services struct {
	Users     *users.Service
	Images    *media.Service
	Displays  *displays.Service
	Campaigns *campaigns.Service
	Revenues  *revenues.Service
}

func NewSchema(svc Services) (graphql.Schema, error) {
	t := newTypes(svc)
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType(svc, t),
		Mutation: mutationType(svc, t),
	})
}

type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Execute runs one request against schema.
func Execute(ctx context.Context, schema graphql.Schema, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}
