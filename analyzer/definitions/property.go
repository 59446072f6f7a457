package definitions

// PropertyDefinition is a class or trait property declaration.
type PropertyDefinition struct {
	Name         []byte // includes the leading sigil, e.g. "$count"
	DeclaredType *Type
	Visibility   Visibility
	Modifiers    ModifierSet
}

func (p *PropertyDefinition) IsStatic() bool   { return p.Modifiers.Has(Static) }
func (p *PropertyDefinition) IsReadonly() bool { return p.Modifiers.Has(Readonly) }

// ConstantDefinition is a class, interface, or trait constant.
type ConstantDefinition struct {
	Name       []byte
	Visibility Visibility
}
