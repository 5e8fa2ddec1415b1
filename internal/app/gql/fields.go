package gql

import (
	"context"
	"errors"

	"partner-ads/database"

	"github.com/graphql-go/graphql"
)

// sourceOf accepts both values and pointers since list resolvers hand out
// slices of values.
func sourceOf[T any](src interface{}) (*T, bool) {
	switch v := src.(type) {
	case *T:
		return v, v != nil
	case T:
		return &v, true
	}
	return nil, false
}

func field[T any](typ graphql.Output, get func(*T) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			src, ok := sourceOf[T](p.Source)
			if !ok {
				return nil, nil
			}
			return get(src), nil
		},
	}
}

func relation[T any](typ graphql.Output, load func(ctx context.Context, src *T) (interface{}, error)) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			src, ok := sourceOf[T](p.Source)
			if !ok {
				return nil, nil
			}
			return load(p.Context, src)
		},
	}
}

// lookup loads the record behind an optional foreign key. A dangling or
// missing key resolves to null.
func lookup[T any](ctx context.Context, id *uint, get func(context.Context, uint) (*T, error)) (interface{}, error) {
	if id == nil {
		return nil, nil
	}
	rec, err := get(ctx, *id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}
