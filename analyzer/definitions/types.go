// Package definitions holds the immutable records produced by Pass 1 (the
// definition index), the lattice of abstract types those records are
// expressed in, and the collection that stores and looks them up.
package definitions

import "strings"

// Kind tags a Type's variant. Type is a closed tagged union; Kind is the tag.
type Kind int

const (
	KString Kind = iota
	KInt
	KFloat
	KArray
	KMixed
	KBool
	KObject
	KVoid
	KFalse
	KTrue
	KNull
	KCallable
	KStatic
	KSelfRef
	KParentRef
	KIterable
	KNever
	KError
	KNullable
	KNamed
	KUnion
	KIntersection
)

// Type is an element of the lattice used by the inferencer and the
// compatibility relation. Named carries a canonical name; Nullable wraps a
// single inner type; Union and Intersection carry two or more members.
//
// Error is an internal sentinel: an ill-typed arithmetic expression produces
// it transiently so rule 6 can report on it, but it must never be written
// into a Collection or a context's locals map.
type Type struct {
	Kind    Kind
	Name    []byte // set only when Kind == KNamed
	Inner   *Type  // set only when Kind == KNullable
	Members []Type // set only when Kind == KUnion or KIntersection
}

var (
	String     = Type{Kind: KString}
	Int        = Type{Kind: KInt}
	Float      = Type{Kind: KFloat}
	Array      = Type{Kind: KArray}
	Mixed      = Type{Kind: KMixed}
	Bool       = Type{Kind: KBool}
	Object     = Type{Kind: KObject}
	Void       = Type{Kind: KVoid}
	False      = Type{Kind: KFalse}
	True       = Type{Kind: KTrue}
	Null       = Type{Kind: KNull}
	Callable   = Type{Kind: KCallable}
	StaticType = Type{Kind: KStatic}
	SelfRef    = Type{Kind: KSelfRef}
	ParentRef  = Type{Kind: KParentRef}
	Iterable   = Type{Kind: KIterable}
	Never      = Type{Kind: KNever}
	errorType  = Type{Kind: KError}
)

// ErrorType returns the internal "type-check already failed" sentinel. It
// must only be consumed by the arithmetic rule, never stored.
func ErrorType() Type { return errorType }

func NullableOf(inner Type) Type {
	return Type{Kind: KNullable, Inner: &inner}
}

func NamedType(canonicalName []byte) Type {
	return Type{Kind: KNamed, Name: canonicalName}
}

// UnionOf does not itself enforce the "≥2 members" invariant; callers (the
// type-annotation mapper and the match-arm inferencer) are expected to have
// already normalized to ≥2 distinct members.
func UnionOf(members ...Type) Type {
	return Type{Kind: KUnion, Members: members}
}

func IntersectionOf(members ...Type) Type {
	return Type{Kind: KIntersection, Members: members}
}

// Equal is structural equality, used by Compatible and by tests; it does
// not consult Compatible itself.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KNamed:
		return string(t.Name) == string(other.Name)
	case KNullable:
		return t.Inner.Equal(*other.Inner)
	case KUnion, KIntersection:
		if len(t.Members) != len(other.Members) {
			return false
		}
		for i := range t.Members {
			if !t.Members[i].Equal(other.Members[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Compatible implements compatible(formal, actual) from the lattice: can a
// value inferred as `actual` be passed where the receiver is declared.
func (formal Type) Compatible(actual Type) bool {
	if actual.Kind == KMixed {
		return true
	}

	switch formal.Kind {
	case KString, KInt, KFloat, KArray, KFalse, KTrue, KCallable, KIterable:
		return formal.Equal(actual)
	case KMixed:
		return true
	case KBool:
		return actual.Kind == KBool || actual.Kind == KTrue || actual.Kind == KFalse
	case KObject:
		return actual.Kind == KObject || actual.Kind == KNamed
	case KVoid:
		return actual.Kind == KVoid || actual.Kind == KNull
	case KNull:
		return actual.Kind == KNull || actual.Kind == KNullable
	case KStatic, KSelfRef, KParentRef:
		// Resolving these formals needs the enclosing class scope, which
		// this relation does not receive; callers must resolve Static/
		// SelfRef/ParentRef to a concrete Named(...) before calling
		// Compatible. Deferred, matching the lattice this is modeled on.
		panic("definitions: Compatible called with an unresolved Static/SelfRef/ParentRef formal")
	case KNullable:
		return actual.Kind == KNull || formal.Inner.Compatible(actual)
	case KNamed:
		return formal.Equal(actual)
	case KUnion:
		for _, member := range formal.Members {
			if member.Compatible(actual) {
				return true
			}
		}
		return false
	case KIntersection:
		for _, member := range formal.Members {
			if !member.Compatible(actual) {
				return false
			}
		}
		return true
	case KNever:
		return false
	case KError:
		panic("definitions: Compatible asked about the Error sentinel")
	default:
		return false
	}
}

// String renders a Type in the source language's own notation, as used in
// diagnostic messages (e.g. "Dumped type: float").
func (t Type) String() string {
	switch t.Kind {
	case KString:
		return "string"
	case KInt:
		return "int"
	case KFloat:
		return "float"
	case KArray:
		return "array"
	case KMixed:
		return "mixed"
	case KBool:
		return "bool"
	case KObject:
		return "object"
	case KVoid:
		return "void"
	case KFalse:
		return "false"
	case KTrue:
		return "true"
	case KNull:
		return "null"
	case KCallable:
		return "callable"
	case KStatic:
		return "static"
	case KSelfRef:
		return "self"
	case KParentRef:
		return "parent"
	case KIterable:
		return "iterable"
	case KNever:
		return "never"
	case KError:
		return "<internal:error>"
	case KNullable:
		return "?" + t.Inner.String()
	case KNamed:
		return string(t.Name)
	case KUnion:
		return joinTypes(t.Members, "|")
	case KIntersection:
		return joinTypes(t.Members, "&")
	default:
		return "mixed"
	}
}

func joinTypes(members []Type, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.String()
	}
	return strings.Join(parts, sep)
}
