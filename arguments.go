package directives

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// argumentValues resolves one directive invocation's arguments against the
// directive's declared argument schema. Declared-but-absent arguments take their
// declared default or stay unset. Variable references are substituted from the
// query's (already coerced) variable values; literals are coerced through the
// declared type, recursing structurally into lists and input objects.
func argumentValues(argDefs []*graphql.Argument, node *ast.Directive, vars map[string]interface{}) map[string]interface{} {
	byName := make(map[string]ast.Value, len(node.Arguments))
	for _, arg := range node.Arguments {
		byName[arg.Name.Value] = arg.Value
	}

	values := map[string]interface{}{}
	for _, def := range argDefs {
		astValue, has := byName[def.Name()]
		if !has {
			if def.DefaultValue != nil {
				values[def.Name()] = def.DefaultValue
			}
			continue
		}
		values[def.Name()] = valueFromAST(def.Type, astValue, vars)
	}
	return values
}

func valueFromAST(ttype graphql.Type, astValue ast.Value, vars map[string]interface{}) interface{} {
	if variable, ok := astValue.(*ast.Variable); ok {
		return vars[variable.Name.Value]
	}

	switch t := ttype.(type) {
	case *graphql.NonNull:
		return valueFromAST(t.OfType, astValue, vars)
	case *graphql.List:
		list, ok := astValue.(*ast.ListValue)
		if !ok {
			// single literal in list position resolves as a list of one
			return []interface{}{valueFromAST(t.OfType, astValue, vars)}
		}
		items := make([]interface{}, 0, len(list.Values))
		for _, item := range list.Values {
			items = append(items, valueFromAST(t.OfType, item, vars))
		}
		return items
	case *graphql.InputObject:
		object, ok := astValue.(*ast.ObjectValue)
		if !ok {
			return astValue.GetValue()
		}
		fieldValues := make(map[string]ast.Value, len(object.Fields))
		for _, f := range object.Fields {
			fieldValues[f.Name.Value] = f.Value
		}
		value := map[string]interface{}{}
		for name, field := range t.Fields() {
			fieldAST, has := fieldValues[name]
			if !has {
				if field.DefaultValue != nil {
					value[name] = field.DefaultValue
				}
				continue
			}
			value[name] = valueFromAST(field.Type, fieldAST, vars)
		}
		return value
	case *graphql.Scalar:
		return t.ParseLiteral(astValue)
	case *graphql.Enum:
		return t.ParseLiteral(astValue)
	}

	return astValue.GetValue()
}
