package directives

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/graphql-go/graphql/language/ast"
)

// builtins are resolved by the engine's query planner and never become part of a
// transform pipeline.
var builtins = map[string]bool{
	"skip":    true,
	"include": true,
}

// step pairs one directive declaration with the invocation node it was located
// from.
type step struct {
	directive *Directive
	node      *ast.Directive
}

// locate produces one field invocation's ordered pipeline: directives attached
// statically on the field first (in attachment order), then those written in the
// query text (in textual order). Built-in names are excluded, as are query-text
// names with no registered declaration; those belong to the engine.
func (r *Registry) locate(static, syntactic []*ast.Directive) []step {
	nodes := make([]*ast.Directive, 0, len(static)+len(syntactic))
	nodes = append(nodes, static...)
	nodes = append(nodes, syntactic...)

	var steps []step
	for _, node := range nodes {
		name := node.Name.Value
		if builtins[name] {
			continue
		}
		directive, has := r.directives[name]
		if !has {
			continue
		}
		steps = append(steps, step{directive: directive, node: node})
	}
	return steps
}

// synthesizeNode turns a static (schema-side) directive attachment into an
// invocation node equivalent to one the parser would have produced, so static and
// query-text attachments resolve through the same path.
func synthesizeNode(name string, args map[string]interface{}) *ast.Directive {
	names := make([]string, 0, len(args))
	for argName := range args {
		names = append(names, argName)
	}
	sort.Strings(names)

	arguments := make([]*ast.Argument, 0, len(args))
	for _, argName := range names {
		value := args[argName]
		if value == nil {
			continue
		}
		arguments = append(arguments, ast.NewArgument(&ast.Argument{
			Name:  ast.NewName(&ast.Name{Value: argName}),
			Value: literalAST(value),
		}))
	}

	return ast.NewDirective(&ast.Directive{
		Name:      ast.NewName(&ast.Name{Value: name}),
		Arguments: arguments,
	})
}

func literalAST(value interface{}) ast.Value {
	switch v := value.(type) {
	case string:
		return ast.NewStringValue(&ast.StringValue{Value: v})
	case bool:
		return ast.NewBooleanValue(&ast.BooleanValue{Value: v})
	case int:
		return ast.NewIntValue(&ast.IntValue{Value: strconv.Itoa(v)})
	case int32:
		return ast.NewIntValue(&ast.IntValue{Value: strconv.FormatInt(int64(v), 10)})
	case int64:
		return ast.NewIntValue(&ast.IntValue{Value: strconv.FormatInt(v, 10)})
	case float32:
		return ast.NewFloatValue(&ast.FloatValue{Value: strconv.FormatFloat(float64(v), 'f', -1, 32)})
	case float64:
		return ast.NewFloatValue(&ast.FloatValue{Value: strconv.FormatFloat(v, 'f', -1, 64)})
	case []interface{}:
		values := make([]ast.Value, 0, len(v))
		for _, item := range v {
			values = append(values, literalAST(item))
		}
		return ast.NewListValue(&ast.ListValue{Values: values})
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		fields := make([]*ast.ObjectField, 0, len(v))
		for _, name := range names {
			fields = append(fields, ast.NewObjectField(&ast.ObjectField{
				Name:  ast.NewName(&ast.Name{Value: name}),
				Value: literalAST(v[name]),
			}))
		}
		return ast.NewObjectValue(&ast.ObjectValue{Fields: fields})
	default:
		return ast.NewStringValue(&ast.StringValue{Value: fmt.Sprintf("%v", v)})
	}
}
