// Package preset ships ready-made field directives for common value
// transformations. All of them pass nil resolutions through untouched and leave
// values of unexpected types as they are.
package preset

import (
	"github.com/graphql-go/graphql"

	"github.com/gqlkit/directives"
)

// transformString builds a FIELD directive that rewrites string resolutions and
// passes everything else through.
func transformString(name, description string, transform func(string) string) *directives.Directive {
	return directives.MustNew(directives.DirectiveConfig{
		Name:        name,
		Description: description,
		Locations:   []string{graphql.DirectiveLocationField},
		Resolve: func(p directives.ResolveParams) (interface{}, error) {
			value, err := p.Next()
			if err != nil {
				return nil, err
			}
			s, ok := value.(string)
			if !ok {
				return value, nil
			}
			return transform(s), nil
		},
	})
}

func intArg(value interface{}, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

func stringArg(value interface{}, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}
