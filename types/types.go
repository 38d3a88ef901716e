/*
File    : viperc/types/types.go
Package : types
*/

// Package types implements the Viper type system: primitives, pointers,
// fixed-length arrays, and named structs with methods. Identity is by
// canonical construction — the Registry hands out a single *Type instance
// per structural key, so equality of types is pointer equality.
package types

import "fmt"

// Kind discriminates the tagged Type variant.
type Kind int

const (
	Primitive Kind = iota
	Pointer
	Array
	Struct
)

func (k Kind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	case Struct:
		return "struct"
	default:
		return "unknown"
	}
}

// Field is an ordered (Type, name) pair used for struct fields and
// function/method parameter lists.
type Field struct {
	Type *Type
	Name string
}

// MethodSignature is the slim, body-free descriptor a Struct type carries
// for its methods. The full method body (with its statements and scope)
// lives on the ast.ClassDefinition node, not here — keeping the type
// registry free of any dependency on the AST package.
type MethodSignature struct {
	Name       string
	ReturnType *Type // nil for a constructor or a method declared without one
	Params     []Field
}

// Type is the canonical, tagged representation of a Viper type. Callers
// never construct a Type directly; they go through a Registry so that two
// lookups with the same structural description return the same handle.
type Type struct {
	Kind Kind

	// Primitive
	Name string

	// Pointer
	Pointee *Type

	// Array
	Length  uint32
	Element *Type

	// Struct
	Fields   []Field
	Methods  []MethodSignature
	complete bool
}

// IsComplete reports whether a forward-declared struct has had its body
// filled in via Registry.SetStructBody. Primitives, pointers, and arrays
// are always complete.
func (t *Type) IsComplete() bool {
	return t.Kind != Struct || t.complete
}

// String renders the type the way Viper source spells it: "i32", "i32*",
// "i32[4]", "Name". Array/pointer suffixes nest left-to-right, matching the
// parser's suffix-loop order (see parser.parseType).
func (t *Type) String() string {
	switch t.Kind {
	case Primitive:
		return t.Name
	case Pointer:
		return t.Pointee.String() + "*"
	case Array:
		return fmt.Sprintf("%s[%d]", t.Element.String(), t.Length)
	case Struct:
		return t.Name
	default:
		return "<invalid type>"
	}
}

// Field looks up a struct field by name, returning (field, true) on a hit.
// Works through one level of pointer indirection, since `p.x` on a `P*` is
// valid Viper (member access auto-dereferences the pointer receiver).
func (t *Type) Field(name string) (Field, bool) {
	target := t
	if target.Kind == Pointer {
		target = target.Pointee
	}
	if target.Kind != Struct {
		return Field{}, false
	}
	for _, f := range target.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Method looks up a struct method by name, through one level of pointer
// indirection, same as Field.
func (t *Type) Method(name string) (MethodSignature, bool) {
	target := t
	if target.Kind == Pointer {
		target = target.Pointee
	}
	if target.Kind != Struct {
		return MethodSignature{}, false
	}
	for _, m := range target.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return MethodSignature{}, false
}

var builtinNames = []string{"i8", "i16", "i32", "i64", "bool", "void"}

type arrayKey struct {
	elem   *Type
	length uint32
}

// Registry is the process-wide (or, per compiler.Context, per-compilation-
// unit) type table. Pointer and array constructors memoize on their
// structural key; struct types are registered and looked up by name.
type Registry struct {
	byName   map[string]*Type
	pointers map[*Type]*Type
	arrays   map[arrayKey]*Type
}

// NewRegistry allocates an empty registry. Call Init before use; a fresh
// Registry with no Init call has no built-in primitives registered.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]*Type),
		pointers: make(map[*Type]*Type),
		arrays:   make(map[arrayKey]*Type),
	}
}

// Init seeds the built-in primitives (i8, i16, i32, i64, bool, void).
// Re-running Init on an already-initialized registry is a no-op: existing
// handles are left untouched rather than replaced, so previously issued
// *Type pointers stay valid.
func (r *Registry) Init() {
	for _, name := range builtinNames {
		if _, ok := r.byName[name]; ok {
			continue
		}
		r.byName[name] = &Type{Kind: Primitive, Name: name, complete: true}
	}
}

// Exists reports whether name is a registered type (built-in primitive or
// struct). This is what the lexer calls to decide whether an
// identifier-shaped lexeme should be classified as a Type token.
func (r *Registry) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Get returns the canonical Type for a registered name.
func (r *Registry) Get(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// CreatePointer returns the canonical pointer-to-pointee type, memoizing on
// the pointee's handle so repeated calls with the same pointee return the
// same *Type (invariant 5 — canonicalization).
func (r *Registry) CreatePointer(pointee *Type) *Type {
	if t, ok := r.pointers[pointee]; ok {
		return t
	}
	t := &Type{Kind: Pointer, Pointee: pointee, complete: true}
	r.pointers[pointee] = t
	return t
}

// CreateArray returns the canonical array-of-length type, memoizing on
// (element handle, length).
func (r *Registry) CreateArray(length uint32, elem *Type) *Type {
	key := arrayKey{elem: elem, length: length}
	if t, ok := r.arrays[key]; ok {
		return t
	}
	t := &Type{Kind: Array, Length: length, Element: elem, complete: true}
	r.arrays[key] = t
	return t
}

// RegisterStruct forward-declares a struct type with an (initially empty or
// partial) field list. Re-registering an already-registered name is a
// Type-registry error — struct names are unique for the lifetime of the
// registry.
func (r *Registry) RegisterStruct(name string, fields []Field) (*Type, error) {
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("duplicate struct name %q", name)
	}
	t := &Type{Kind: Struct, Name: name, Fields: fields, complete: len(fields) > 0}
	r.byName[name] = t
	return t, nil
}

// SetStructBody completes a forward-declared struct, filling in its field
// list. Required because a class method referencing `this` needs the
// struct's type handle before its body is parsed — RegisterStruct runs
// first with an empty field list, then SetStructBody runs once the member
// list has been fully parsed.
func (r *Registry) SetStructBody(t *Type, fields []Field) {
	t.Fields = fields
	t.complete = true
}

// SetStructMethods attaches the method signature table to a struct type,
// once the class body's methods have all been parsed.
func (r *Registry) SetStructMethods(t *Type, methods []MethodSignature) {
	t.Methods = methods
}
