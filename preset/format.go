package preset

import (
	"time"

	"github.com/graphql-go/graphql"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gqlkit/directives"
)

const defaultDateFormat = "Mon Jan 02 2006"

// Number formats numeric resolutions with digit grouping ("1,000,000").
func Number() *directives.Directive {
	printer := message.NewPrinter(language.English)
	return directives.MustNew(directives.DirectiveConfig{
		Name:        "number",
		Description: "Formats numeric values with digit grouping.",
		Locations:   []string{graphql.DirectiveLocationField},
		Resolve: func(p directives.ResolveParams) (interface{}, error) {
			value, err := p.Next()
			if err != nil {
				return nil, err
			}
			switch v := value.(type) {
			case int:
				return printer.Sprintf("%d", v), nil
			case int32:
				return printer.Sprintf("%d", v), nil
			case int64:
				return printer.Sprintf("%d", v), nil
			case float64:
				return printer.Sprintf("%.2f", v), nil
			}
			return value, nil
		},
	})
}

// Date formats the resolved time using a Go reference layout. Accepts time.Time
// values, RFC 3339 strings and integer unix seconds.
func Date() *directives.Directive {
	return directives.MustNew(directives.DirectiveConfig{
		Name:        "date",
		Description: "Formats the resolved time using a Go reference layout.",
		Locations:   []string{graphql.DirectiveLocationField},
		Args: graphql.FieldConfigArgument{
			"format": &graphql.ArgumentConfig{
				Type:         graphql.String,
				DefaultValue: defaultDateFormat,
				Description:  "Go reference layout to format with.",
			},
		},
		Resolve: func(p directives.ResolveParams) (interface{}, error) {
			value, err := p.Next()
			if err != nil {
				return nil, err
			}
			t, ok := timeValue(value)
			if !ok {
				return value, nil
			}
			return t.Format(stringArg(p.Args["format"], defaultDateFormat)), nil
		},
	})
}

func timeValue(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
	case int:
		return time.Unix(int64(v), 0).UTC(), true
	case int64:
		return time.Unix(v, 0).UTC(), true
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	}
	return time.Time{}, false
}
