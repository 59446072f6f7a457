package definitions

// ClassDefinition is a fully-qualified class declaration: its own members
// plus the canonical names of its supertype, interfaces, and used traits.
type ClassDefinition struct {
	CanonicalName []byte
	Modifiers     ModifierSet
	Extends       []byte // empty when the class has no supertype
	Implements    [][]byte
	Uses          [][]byte // trait canonical names
	Constants     []ConstantDefinition
	Properties    []PropertyDefinition
	Methods       []MethodDefinition
}

func (c *ClassDefinition) IsAbstract() bool { return c.Modifiers.Has(Abstract) }
func (c *ClassDefinition) IsFinal() bool    { return c.Modifiers.Has(Final) }
func (c *ClassDefinition) HasExtends() bool { return len(c.Extends) > 0 }

func (c *ClassDefinition) ownMethod(name []byte) *MethodDefinition {
	for i := range c.Methods {
		if string(c.Methods[i].Name) == string(name) {
			return &c.Methods[i]
		}
	}
	return nil
}

// GetMethod searches the class's own methods first, then walks its used
// traits recursively. It never crosses the extends edge — see
// GetInheritedMethod for that.
func (c *ClassDefinition) GetMethod(name []byte, index *Collection) *MethodDefinition {
	if m := c.ownMethod(name); m != nil {
		return m
	}
	for _, traitName := range c.Uses {
		trait := index.GetTraitByCanonical(traitName)
		if trait == nil {
			continue
		}
		if m := trait.GetMethod(name, index); m != nil {
			return m
		}
	}
	return nil
}

// GetInheritedMethod walks only the extends chain (never the class itself,
// never trait uses), returning the owning class's canonical name alongside
// the method at the first match.
func (c *ClassDefinition) GetInheritedMethod(name []byte, index *Collection) ([]byte, *MethodDefinition) {
	current := c
	for current.HasExtends() {
		parent := index.GetClassByCanonical(current.Extends)
		if parent == nil {
			return nil, nil
		}
		if m := parent.ownMethod(name); m != nil {
			return parent.CanonicalName, m
		}
		for _, traitName := range parent.Uses {
			trait := index.GetTraitByCanonical(traitName)
			if trait == nil {
				continue
			}
			if m := trait.GetMethod(name, index); m != nil {
				return parent.CanonicalName, m
			}
		}
		current = parent
	}
	return nil, nil
}

// HasCallStatic reports whether __callStatic exists on the class itself or
// anywhere up the extends chain.
func (c *ClassDefinition) HasCallStatic(index *Collection) bool {
	if c.GetMethod([]byte("__callStatic"), index) != nil {
		return true
	}
	_, m := c.GetInheritedMethod([]byte("__callStatic"), index)
	return m != nil
}

// HasCall reports whether __call exists on the class itself or anywhere up
// the extends chain.
func (c *ClassDefinition) HasCall(index *Collection) bool {
	if c.GetMethod([]byte("__call"), index) != nil {
		return true
	}
	_, m := c.GetInheritedMethod([]byte("__call"), index)
	return m != nil
}

// IsSubclassOf reports whether candidate appears somewhere in c's extends
// chain (used by rule 3 to decide whether a caller's class scope has an
// inheritance link to the method's defining class).
func (c *ClassDefinition) IsSubclassOf(candidate []byte, index *Collection) bool {
	current := c
	for current.HasExtends() {
		if string(current.Extends) == string(candidate) {
			return true
		}
		parent := index.GetClassByCanonical(current.Extends)
		if parent == nil {
			return false
		}
		current = parent
	}
	return false
}
