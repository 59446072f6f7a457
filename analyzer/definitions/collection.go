package definitions

// Scope is the minimal view of an analysis context that name resolution
// needs: turn a raw name into its canonical form. analyzer.Context
// implements this; definitions never imports the analyzer package, so the
// interface is declared here and satisfied by duck typing.
type Scope interface {
	ResolveName(raw []byte) []byte
}

// Collection is the definition index: five insertion-ordered collections of
// declarations, each keyed externally by canonical name. It is built once by
// Pass 1 and is read-only afterwards.
type Collection struct {
	functions  []FunctionDefinition
	classes    []ClassDefinition
	interfaces []InterfaceDefinition
	traits     []TraitDefinition
	enums      []EnumDefinition

	functionIndex  map[string]*FunctionDefinition
	classIndex     map[string]*ClassDefinition
	interfaceIndex map[string]*InterfaceDefinition
	traitIndex     map[string]*TraitDefinition
	enumIndex      map[string]*EnumDefinition

	// nameHashes guards against a highwayhash collision between two
	// distinct canonical names; see NameHash. It is one map shared by all
	// five kinds and a defensive check, not a duplicate-declaration
	// detector: the same name registered under two kinds (a function and a
	// class) is not a collision, while two different names with equal
	// hashes are, whichever kinds they belong to.
	nameHashes map[uint64]string
}

func NewCollection() *Collection {
	return &Collection{
		functionIndex:  make(map[string]*FunctionDefinition),
		classIndex:     make(map[string]*ClassDefinition),
		interfaceIndex: make(map[string]*InterfaceDefinition),
		traitIndex:     make(map[string]*TraitDefinition),
		enumIndex:      make(map[string]*EnumDefinition),
		nameHashes:     make(map[uint64]string),
	}
}

// checkHash panics if name hashes identically to a previously seen,
// different canonical name — highwayhash is effectively collision-free at
// this scale, so this only ever fires as a sign the hash function itself
// was misused, never on ordinary input.
func (c *Collection) checkHash(name []byte) {
	h := NameHash(name)
	key := string(name)
	if prior, ok := c.nameHashes[h]; ok && prior != key {
		panic("definitions: highwayhash collision between canonical names " + prior + " and " + key)
	}
	c.nameHashes[h] = key
}

// AddFunction records a function definition. Duplicate canonical names are
// not detected or rejected (open question, deliberately left unresolved);
// the first insertion wins every subsequent lookup.
func (c *Collection) AddFunction(def FunctionDefinition) {
	c.checkHash(def.CanonicalName)
	c.functions = append(c.functions, def)
	key := string(def.CanonicalName)
	if _, exists := c.functionIndex[key]; !exists {
		c.functionIndex[key] = &c.functions[len(c.functions)-1]
	}
}

func (c *Collection) AddClass(def ClassDefinition) {
	c.checkHash(def.CanonicalName)
	c.classes = append(c.classes, def)
	key := string(def.CanonicalName)
	if _, exists := c.classIndex[key]; !exists {
		c.classIndex[key] = &c.classes[len(c.classes)-1]
	}
}

func (c *Collection) AddInterface(def InterfaceDefinition) {
	c.checkHash(def.CanonicalName)
	c.interfaces = append(c.interfaces, def)
	key := string(def.CanonicalName)
	if _, exists := c.interfaceIndex[key]; !exists {
		c.interfaceIndex[key] = &c.interfaces[len(c.interfaces)-1]
	}
}

func (c *Collection) AddTrait(def TraitDefinition) {
	c.checkHash(def.CanonicalName)
	c.traits = append(c.traits, def)
	key := string(def.CanonicalName)
	if _, exists := c.traitIndex[key]; !exists {
		c.traitIndex[key] = &c.traits[len(c.traits)-1]
	}
}

func (c *Collection) AddEnum(def EnumDefinition) {
	c.checkHash(def.CanonicalName)
	c.enums = append(c.enums, def)
	key := string(def.CanonicalName)
	if _, exists := c.enumIndex[key]; !exists {
		c.enumIndex[key] = &c.enums[len(c.enums)-1]
	}
}

func (c *Collection) GetFunctionByCanonical(name []byte) *FunctionDefinition {
	return c.functionIndex[string(name)]
}

func (c *Collection) GetClassByCanonical(name []byte) *ClassDefinition {
	return c.classIndex[string(name)]
}

func (c *Collection) GetInterfaceByCanonical(name []byte) *InterfaceDefinition {
	return c.interfaceIndex[string(name)]
}

func (c *Collection) GetTraitByCanonical(name []byte) *TraitDefinition {
	return c.traitIndex[string(name)]
}

func (c *Collection) GetEnumByCanonical(name []byte) *EnumDefinition {
	return c.enumIndex[string(name)]
}

func globalFallback(raw []byte) []byte {
	out := make([]byte, 0, len(raw)+1)
	out = append(out, '\\')
	out = append(out, raw...)
	return out
}

// GetFunction tries the context-resolved name first, then the global-root
// fallback `\name`. Returns the first match or nil.
func (c *Collection) GetFunction(raw []byte, scope Scope) *FunctionDefinition {
	if def := c.GetFunctionByCanonical(scope.ResolveName(raw)); def != nil {
		return def
	}
	return c.GetFunctionByCanonical(globalFallback(raw))
}

func (c *Collection) GetClass(raw []byte, scope Scope) *ClassDefinition {
	if def := c.GetClassByCanonical(scope.ResolveName(raw)); def != nil {
		return def
	}
	return c.GetClassByCanonical(globalFallback(raw))
}

func (c *Collection) GetInterface(raw []byte, scope Scope) *InterfaceDefinition {
	if def := c.GetInterfaceByCanonical(scope.ResolveName(raw)); def != nil {
		return def
	}
	return c.GetInterfaceByCanonical(globalFallback(raw))
}

func (c *Collection) GetTrait(raw []byte, scope Scope) *TraitDefinition {
	if def := c.GetTraitByCanonical(scope.ResolveName(raw)); def != nil {
		return def
	}
	return c.GetTraitByCanonical(globalFallback(raw))
}

func (c *Collection) GetEnum(raw []byte, scope Scope) *EnumDefinition {
	if def := c.GetEnumByCanonical(scope.ResolveName(raw)); def != nil {
		return def
	}
	return c.GetEnumByCanonical(globalFallback(raw))
}
