package definitions

// TraitDefinition mirrors ClassDefinition minus extends/implements, and may
// itself use further traits.
type TraitDefinition struct {
	CanonicalName []byte
	Uses          [][]byte
	Constants     []ConstantDefinition
	Properties    []PropertyDefinition
	Methods       []MethodDefinition
}

func (t *TraitDefinition) ownMethod(name []byte) *MethodDefinition {
	for i := range t.Methods {
		if string(t.Methods[i].Name) == string(name) {
			return &t.Methods[i]
		}
	}
	return nil
}

// GetMethod recurses through transitively used traits.
func (t *TraitDefinition) GetMethod(name []byte, index *Collection) *MethodDefinition {
	if m := t.ownMethod(name); m != nil {
		return m
	}
	for _, usedName := range t.Uses {
		used := index.GetTraitByCanonical(usedName)
		if used == nil {
			continue
		}
		if m := used.GetMethod(name, index); m != nil {
			return m
		}
	}
	return nil
}
