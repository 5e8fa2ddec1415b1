package gql

import (
	"encoding/json"
	"mime/multipart"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a calendar day, YYYY-MM-DD on the wire.
var Date = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "Calendar date formatted as YYYY-MM-DD.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.Format(dateLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.Format(dateLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseDate(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		s, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseDate(s.Value)
	},
})

func parseDate(s string) interface{} {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return t
}

// DateTime is output only.
var DateTime = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "Timestamp in RFC 3339 format.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.Format(time.RFC3339Nano)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.Format(time.RFC3339Nano)
		}
		return nil
	},
	ParseValue:   func(interface{}) interface{} { return nil },
	ParseLiteral: func(ast.Value) interface{} { return nil },
})

// Decimal serializes money as a string to keep the exact digits.
var Decimal = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Fixed point number serialized as a string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.StringFixed(2)
		case decimal.NullDecimal:
			if !v.Valid {
				return nil
			}
			return v.Decimal.StringFixed(2)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil
			}
			return d
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		var raw string
		switch v := valueAST.(type) {
		case *ast.StringValue:
			raw = v.Value
		case *ast.FloatValue:
			raw = v.Value
		case *ast.IntValue:
			raw = v.Value
		default:
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil
		}
		return d
	},
})

// JSONString carries a JSON object encoded as a string.
var JSONString = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "JSONString",
	Description: "JSON object encoded as a string.",
	Serialize: func(value interface{}) interface{} {
		b, err := json.Marshal(value)
		if err != nil {
			return nil
		}
		return string(b)
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			return parseJSONObject(v)
		case map[string]interface{}:
			return v
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		s, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseJSONObject(s.Value)
	},
})

func parseJSONObject(s string) interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil || m == nil {
		return nil
	}
	return m
}

// Upload is a file part of a multipart GraphQL request. It can only be
// supplied through variables.
var Upload = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Upload",
	Description: "File sent as part of a multipart request.",
	Serialize:   func(interface{}) interface{} { return nil },
	ParseValue: func(value interface{}) interface{} {
		if fh, ok := value.(*multipart.FileHeader); ok && fh != nil {
			return fh
		}
		return nil
	},
	ParseLiteral: func(ast.Value) interface{} { return nil },
})
