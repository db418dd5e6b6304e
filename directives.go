// Package directives retrofits user-defined, value-transforming directives onto a
// graphql-go schema. Directives are declared once, registered in a Registry, and
// activated by rewriting every field resolver reachable from the schema roots so
// that it detects attached directive invocations and threads the original
// resolution through their transforms in order.
package directives

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
)

// ResolveNext produces the value the field would have resolved to without the
// current directive: the original resolver's output for the first directive in a
// pipeline, the previous directive's output for the rest. The result is settled
// once; calling it repeatedly does not re-run upstream work.
type ResolveNext func() (interface{}, error)

// ResolveParams is passed to a directive's transform on every field resolution it
// participates in. Source, Context and Info come through unchanged from the field
// resolution; Args holds this directive's resolved argument values.
type ResolveParams struct {
	Next    ResolveNext
	Source  interface{}
	Args    map[string]interface{}
	Context context.Context
	Info    graphql.ResolveInfo
}

// ResolveFn transforms a field's resolution. It should call p.Next (directly or
// indirectly) to obtain the upstream value, and may skip it only to discard the
// upstream computation entirely. Returning the error from p.Next propagates it;
// returning a value instead swallows it.
type ResolveFn func(p ResolveParams) (interface{}, error)

// DirectiveConfig describes a custom directive. Name, at least one location and
// Resolve are required; Args declares the directive's argument schema using the
// engine's own argument configuration.
type DirectiveConfig struct {
	Name        string
	Description string
	Locations   []string
	Args        graphql.FieldConfigArgument
	Resolve     ResolveFn
}

// Directive is a custom directive declaration. It embeds the engine's directive
// type, so it can also be listed in graphql.SchemaConfig.Directives to make the
// directive visible to query validation and introspection. Immutable once
// constructed; safe to share across schemas.
type Directive struct {
	*graphql.Directive

	// Resolve is the transform run at each field this directive is attached to.
	Resolve ResolveFn
}

func New(config DirectiveConfig) (*Directive, error) {
	if config.Name == "" {
		return nil, fmt.Errorf("directive must be named")
	}
	if len(config.Locations) == 0 {
		return nil, fmt.Errorf("directive @%s must declare at least one location", config.Name)
	}
	if config.Resolve == nil {
		return nil, fmt.Errorf("directive @%s must provide a resolve function", config.Name)
	}

	return &Directive{
		Directive: graphql.NewDirective(graphql.DirectiveConfig{
			Name:        config.Name,
			Description: config.Description,
			Locations:   config.Locations,
			Args:        config.Args,
		}),
		Resolve: config.Resolve,
	}, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(config DirectiveConfig) *Directive {
	d, err := New(config)
	if err != nil {
		panic(err)
	}
	return d
}
