package directives_test

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/directives"
)

func newSchema(t *testing.T, query, mutation *graphql.Object, customs ...*directives.Directive) graphql.Schema {
	t.Helper()
	dirs := []*graphql.Directive{graphql.IncludeDirective, graphql.SkipDirective}
	for _, d := range customs {
		dirs = append(dirs, d.Directive)
	}
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:      query,
		Mutation:   mutation,
		Directives: dirs,
		// graphql-go only collects types reachable from fields, not directive
		// arguments, so Int must be listed for variables typed Int to validate.
		Types: []graphql.Type{graphql.Int},
	})
	require.NoError(t, err)
	return schema
}

func queryType(fields graphql.Fields) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: fields})
}

func stringField(value interface{}) *graphql.Field {
	return &graphql.Field{
		Type: graphql.String,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return value, nil
		},
	}
}

// recording builds a passthrough directive that appends its "tag" argument to
// calls on every execution.
func recording(name string, calls *[]string) *directives.Directive {
	return directives.MustNew(directives.DirectiveConfig{
		Name:      name,
		Locations: []string{graphql.DirectiveLocationField},
		Args: graphql.FieldConfigArgument{
			"tag": &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p directives.ResolveParams) (interface{}, error) {
			value, err := p.Next()
			if err != nil {
				return nil, err
			}
			tag, _ := p.Args["tag"].(string)
			*calls = append(*calls, tag)
			return value, nil
		},
	})
}

func execute(t *testing.T, schema graphql.Schema, request string, vars map[string]interface{}) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  request,
		VariableValues: vars,
	})
}

func data(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()
	require.False(t, result.HasErrors(), "unexpected errors: %+v", result.Errors)
	m, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return m
}
