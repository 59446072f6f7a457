package definitions

// InterfaceDefinition carries only constants and method signatures — no
// bodies, no visibility (PHP interface methods are implicitly public).
type InterfaceDefinition struct {
	CanonicalName []byte
	Extends       [][]byte // interfaces may extend multiple parent interfaces
	Constants     []ConstantDefinition
	Methods       []MethodDefinition
}

func (i *InterfaceDefinition) GetMethod(name []byte) *MethodDefinition {
	for idx := range i.Methods {
		if string(i.Methods[idx].Name) == string(name) {
			return &i.Methods[idx]
		}
	}
	return nil
}
