package directives

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/jensneuse/abstractlogger"
)

// Registry holds directive declarations and static field attachments, and
// activates them on a schema.
type Registry struct {
	directives map[string]*Directive
	static     map[fieldRef][]*ast.Directive
	log        abstractlogger.Logger
}

type fieldRef struct {
	typeName  string
	fieldName string
}

type Option func(*Registry)

func WithLogger(log abstractlogger.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		directives: map[string]*Directive{},
		static:     map[fieldRef][]*ast.Directive{},
		log:        abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(d *Directive) error {
	if _, has := r.directives[d.Name]; has {
		return fmt.Errorf("directive @%s already registered", d.Name)
	}
	r.directives[d.Name] = d
	return nil
}

func (r *Registry) RegisterMany(dirs ...*Directive) error {
	for i, d := range dirs {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("while registering directives at index '%d': %w", i, err)
		}
	}
	return nil
}

// Attach declares a directive statically on one schema field, identified by type
// and field name. Static attachments run before any directive written on the same
// field in query text, in the order Attach was called. The directive must already
// be registered.
func (r *Registry) Attach(typeName, fieldName, directiveName string, args map[string]interface{}) error {
	if _, has := r.directives[directiveName]; !has {
		return fmt.Errorf("cannot attach unregistered directive @%s to %s.%s", directiveName, typeName, fieldName)
	}
	ref := fieldRef{typeName: typeName, fieldName: fieldName}
	r.static[ref] = append(r.static[ref], synthesizeNode(directiveName, args))
	return nil
}

// Apply activates the registry on a schema by replacing field resolvers in place:
// every field reachable from the query root, and the mutation root's own fields
// without descending into their return types. A nil root is skipped. Apply must
// run exactly once per schema instance, before the schema serves queries; a
// second application doubles every pipeline.
func (r *Registry) Apply(schema interface{}) error {
	var s *graphql.Schema
	switch v := schema.(type) {
	case *graphql.Schema:
		s = v
	case graphql.Schema:
		s = &v
	default:
		return fmt.Errorf("can only apply directives to a *graphql.Schema, got %T", schema)
	}
	if s == nil {
		return fmt.Errorf("can only apply directives to a *graphql.Schema, got nil")
	}

	visited := map[string]bool{}
	r.wrapObject(s.QueryType(), visited, true)
	r.wrapObject(s.MutationType(), visited, false)
	return nil
}

// wrapObject replaces every field resolver of object with its wrapped version,
// descending into object-typed field returns when recurse is set. The visited set
// keeps cyclic and self-referential type graphs from looping: a type name already
// seen is not re-descended into.
func (r *Registry) wrapObject(object *graphql.Object, visited map[string]bool, recurse bool) {
	if object == nil || visited[object.Name()] {
		return
	}
	visited[object.Name()] = true

	for fieldName, field := range object.Fields() {
		static := r.static[fieldRef{typeName: object.Name(), fieldName: fieldName}]
		field.Resolve = r.wrapResolver(static, field.Resolve)
		r.log.Debug("directives.Registry.Apply: wrapped field",
			abstractlogger.String("type", object.Name()),
			abstractlogger.String("field", fieldName),
		)

		if !recurse {
			continue
		}
		if inner, ok := namedType(field.Type).(*graphql.Object); ok {
			r.wrapObject(inner, visited, true)
		}
	}
}

// namedType strips list and non-null wrappers down to the underlying named type.
func namedType(t graphql.Type) graphql.Type {
	for {
		switch wrapper := t.(type) {
		case *graphql.List:
			t = wrapper.OfType
		case *graphql.NonNull:
			t = wrapper.OfType
		default:
			return t
		}
	}
}
