package definitions

// FunctionDefinition is a top-level (namespaced, non-method) function.
type FunctionDefinition struct {
	CanonicalName []byte
	Parameters    []Parameter
	ReturnType    *Type
}

// MethodDefinition is a function declared inside a class, interface, or
// trait body.
type MethodDefinition struct {
	Name       []byte // just the method name, e.g. "doThing"
	Parameters []Parameter
	ReturnType *Type
	Visibility Visibility
	Modifiers  ModifierSet
}

func (m *MethodDefinition) IsStatic() bool   { return m.Modifiers.Has(Static) }
func (m *MethodDefinition) IsAbstract() bool { return m.Modifiers.Has(Abstract) }
func (m *MethodDefinition) IsFinal() bool    { return m.Modifiers.Has(Final) }
