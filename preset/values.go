package preset

import (
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/gqlkit/directives"
)

// Duplicate repeats the resolved string, joined by single spaces. A nil
// resolution stays nil and is never repeated.
func Duplicate() *directives.Directive {
	return directives.MustNew(directives.DirectiveConfig{
		Name:        "duplicate",
		Description: "Repeats the resolved string, joined by single spaces.",
		Locations:   []string{graphql.DirectiveLocationField},
		Args: graphql.FieldConfigArgument{
			"by": &graphql.ArgumentConfig{
				Type:         graphql.Int,
				DefaultValue: 2,
				Description:  "How many copies of the value to produce.",
			},
		},
		Resolve: func(p directives.ResolveParams) (interface{}, error) {
			value, err := p.Next()
			if err != nil || value == nil {
				return value, err
			}
			s, ok := value.(string)
			if !ok {
				return value, nil
			}
			by := intArg(p.Args["by"], 2)
			if by < 1 {
				return "", nil
			}
			copies := make([]string, by)
			for i := range copies {
				copies[i] = s
			}
			return strings.Join(copies, " "), nil
		},
	})
}

// Default substitutes a fallback for nil or empty-string resolutions.
func Default() *directives.Directive {
	return directives.MustNew(directives.DirectiveConfig{
		Name:        "default",
		Description: "Substitutes a fallback for nil or empty-string resolutions.",
		Locations:   []string{graphql.DirectiveLocationField},
		Args: graphql.FieldConfigArgument{
			"to": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The value to resolve to when the field comes back empty.",
			},
		},
		Resolve: func(p directives.ResolveParams) (interface{}, error) {
			value, err := p.Next()
			if err != nil {
				return nil, err
			}
			if value == nil || value == "" {
				if to, has := p.Args["to"]; has {
					return to, nil
				}
			}
			return value, nil
		},
	})
}
