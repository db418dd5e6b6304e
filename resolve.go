package directives

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// wrapResolver rewrites one field's resolver so that each resolution locates its
// directive pipeline and runs every transform in order. Transforms execute
// eagerly, one after the other; each step's Next returns the previous step's
// settled result, so a step runs exactly once per field resolution no matter how
// often downstream steps call Next. With an empty pipeline the original resolver
// runs untouched.
func (r *Registry) wrapResolver(static []*ast.Directive, resolve graphql.FieldResolveFn) graphql.FieldResolveFn {
	if resolve == nil {
		resolve = defaultResolve
	}

	return func(p graphql.ResolveParams) (interface{}, error) {
		steps := r.locate(static, fieldDirectives(p.Info))
		if len(steps) == 0 {
			return resolve(p)
		}

		next := ResolveNext(func() (interface{}, error) {
			return resolve(p)
		})
		for _, s := range steps {
			value, err := s.directive.Resolve(ResolveParams{
				Next:    next,
				Source:  p.Source,
				Args:    argumentValues(s.directive.Args, s.node, p.Info.VariableValues),
				Context: p.Context,
				Info:    p.Info,
			})
			next = settled(value, err)
		}
		return next()
	}
}

func settled(value interface{}, err error) ResolveNext {
	return func() (interface{}, error) {
		return value, err
	}
}

// fieldDirectives returns the directive nodes written on the current field
// selection in the query text.
func fieldDirectives(info graphql.ResolveInfo) []*ast.Directive {
	if len(info.FieldASTs) == 0 {
		return nil
	}
	return info.FieldASTs[0].Directives
}

// defaultResolve stands in when a field declares no resolver. For map sources a
// zero-argument callable property is invoked in place of its value; everything
// else keeps the engine's default property access.
func defaultResolve(p graphql.ResolveParams) (interface{}, error) {
	if source, ok := p.Source.(map[string]interface{}); ok {
		value := source[p.Info.FieldName]
		switch fn := value.(type) {
		case func() interface{}:
			return fn(), nil
		case func() (interface{}, error):
			return fn()
		}
		return value, nil
	}
	return graphql.DefaultResolveFn(p)
}
