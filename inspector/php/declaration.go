package php

import (
	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// Collect runs Pass 1 over root: a flat, order-preserving walk that records
// every function, class, interface, trait, and enum declaration into a
// fresh Collection. It shares the namespace/import resolution analyzer.
// Context already implements, since Pass 1 and Pass 2 must canonicalize
// names identically.
func Collect(root analyzer.Node) *definitions.Collection {
	index := definitions.NewCollection()
	CollectInto(root, index)
	return index
}

// CollectInto runs Pass 1 over root the same way Collect does, but appends
// into an existing index rather than a fresh one — the shape the CLI driver
// needs to build one project-wide index across every discovered file before
// Pass 2 starts; the index is global across a project, not scoped to a
// single file.
func CollectInto(root analyzer.Node, index *definitions.Collection) {
	ctx := analyzer.NewContext()
	collect(root, ctx, index)
}

func collect(node analyzer.Node, ctx *analyzer.Context, index *definitions.Collection) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "namespace_definition":
		if name := node.ChildByField("name"); name != nil {
			ctx.SetNamespace(analyzer.PrependSeparator(name.Content()))
		}
	case "namespace_use_declaration":
		for _, imp := range analyzer.CollectImports(node) {
			ctx.AddImport(imp)
		}
	case "function_definition":
		index.AddFunction(collectFunction(node, ctx))
	case "class_declaration":
		index.AddClass(collectClass(node, ctx, index))
	case "interface_declaration":
		index.AddInterface(collectInterface(node, ctx))
	case "trait_declaration":
		index.AddTrait(collectTrait(node, ctx))
	case "enum_declaration":
		index.AddEnum(collectEnum(node, ctx))
	}

	for _, child := range node.Children() {
		collect(child, ctx, index)
	}
}

func qualify(ctx *analyzer.Context, name []byte) []byte {
	out := make([]byte, 0, len(ctx.Namespace())+1+len(name))
	out = append(out, ctx.Namespace()...)
	out = append(out, '\\')
	out = append(out, name...)
	return out
}

func collectFunction(node analyzer.Node, ctx *analyzer.Context) definitions.FunctionDefinition {
	nameNode := node.ChildByField("name")
	var name []byte
	if nameNode != nil {
		name = qualify(ctx, nameNode.Content())
	}

	return definitions.FunctionDefinition{
		CanonicalName: name,
		Parameters:    collectParameters(node.ChildByField("parameters"), ctx),
		ReturnType:    mapOptionalType(node.ChildByField("return_type"), ctx),
	}
}

func collectParameters(paramsNode analyzer.Node, ctx *analyzer.Context) []definitions.Parameter {
	if paramsNode == nil {
		return nil
	}

	var out []definitions.Parameter
	for _, p := range paramsNode.Children() {
		nameNode := p.ChildByField("name")
		if nameNode == nil {
			continue
		}
		out = append(out, definitions.Parameter{
			Name:         nameNode.Content(),
			DeclaredType: mapOptionalType(p.ChildByField("type"), ctx),
			Optional:     p.ChildByField("default") != nil,
			Spread:       p.Kind() == "variadic_parameter",
		})
	}
	return out
}

func mapOptionalType(node analyzer.Node, ctx *analyzer.Context) *definitions.Type {
	if node == nil {
		return nil
	}
	t := analyzer.MapType(node, ctx)
	return &t
}

func collectModifiers(modifiersNode analyzer.Node) (definitions.Visibility, definitions.ModifierSet) {
	visibility := definitions.Public
	var mods definitions.ModifierSet
	if modifiersNode == nil {
		return visibility, mods
	}

	for _, m := range modifiersNode.Children() {
		switch m.Kind() {
		case "visibility_modifier":
			switch string(m.Content()) {
			case "protected":
				visibility = definitions.Protected
			case "private":
				visibility = definitions.Private
			default:
				visibility = definitions.Public
			}
		case "static_modifier":
			mods = append(mods, definitions.Static)
		case "abstract_modifier":
			mods = append(mods, definitions.Abstract)
		case "final_modifier":
			mods = append(mods, definitions.Final)
		case "readonly_modifier":
			mods = append(mods, definitions.Readonly)
		}
	}
	return visibility, mods
}

func collectMethod(node analyzer.Node, ctx *analyzer.Context) definitions.MethodDefinition {
	nameNode := node.ChildByField("name")
	var name []byte
	if nameNode != nil {
		name = nameNode.Content()
	}

	visibility, mods := collectModifiers(node.ChildByField("modifiers"))

	return definitions.MethodDefinition{
		Name:       name,
		Parameters: collectParameters(node.ChildByField("parameters"), ctx),
		ReturnType: mapOptionalType(node.ChildByField("return_type"), ctx),
		Visibility: visibility,
		Modifiers:  mods,
	}
}

func collectConstants(bodyNode analyzer.Node) []definitions.ConstantDefinition {
	if bodyNode == nil {
		return nil
	}
	var out []definitions.ConstantDefinition
	for _, member := range bodyNode.Children() {
		if member.Kind() != "const_declaration" {
			continue
		}
		visibility, _ := collectModifiers(member.ChildByField("modifiers"))
		for _, element := range member.Children() {
			if element.Kind() != "const_element" {
				continue
			}
			nameNode := element.ChildByField("name")
			if nameNode == nil {
				continue
			}
			out = append(out, definitions.ConstantDefinition{Name: nameNode.Content(), Visibility: visibility})
		}
	}
	return out
}

func collectProperties(bodyNode analyzer.Node, ctx *analyzer.Context) []definitions.PropertyDefinition {
	if bodyNode == nil {
		return nil
	}
	var out []definitions.PropertyDefinition
	for _, member := range bodyNode.Children() {
		if member.Kind() != "property_declaration" {
			continue
		}
		visibility, mods := collectModifiers(member.ChildByField("modifiers"))
		declaredType := mapOptionalType(member.ChildByField("type"), ctx)
		for _, element := range member.Children() {
			if element.Kind() != "property_element" {
				continue
			}
			nameNode := element.ChildByField("name")
			if nameNode == nil {
				continue
			}
			out = append(out, definitions.PropertyDefinition{
				Name:       nameNode.Content(),
				DeclaredType: declaredType,
				Visibility: visibility,
				Modifiers:  mods,
			})
		}
	}
	return out
}

// constructorMethod synthesizes a MethodDefinition for __construct from a
// class body, so call sites that `new` the class get argument checking.
// Promoted constructor properties are not added to Properties — the
// inferencer never reads instance properties, so this only matters once
// property-fetch expressions gain an inferencer case (see the open
// questions on method-call/property-fetch inference).
func constructorMethod(bodyNode analyzer.Node, ctx *analyzer.Context) (definitions.MethodDefinition, bool) {
	if bodyNode == nil {
		return definitions.MethodDefinition{}, false
	}
	for _, member := range bodyNode.Children() {
		if member.Kind() != "method_declaration" {
			continue
		}
		nameNode := member.ChildByField("name")
		if nameNode == nil || string(nameNode.Content()) != "__construct" {
			continue
		}
		return collectMethod(member, ctx), true
	}
	return definitions.MethodDefinition{}, false
}

func collectMethods(bodyNode analyzer.Node, ctx *analyzer.Context) []definitions.MethodDefinition {
	if bodyNode == nil {
		return nil
	}
	var out []definitions.MethodDefinition
	for _, member := range bodyNode.Children() {
		if member.Kind() != "method_declaration" {
			continue
		}
		out = append(out, collectMethod(member, ctx))
	}
	return out
}

func collectUses(bodyNode analyzer.Node, ctx *analyzer.Context) [][]byte {
	if bodyNode == nil {
		return nil
	}
	var out [][]byte
	for _, member := range bodyNode.Children() {
		if member.Kind() != "use_declaration" {
			continue
		}
		for _, traitName := range member.Children() {
			if traitName.Kind() != "name" && traitName.Kind() != "qualified_name" {
				continue
			}
			out = append(out, ctx.ResolveName(traitName.Content()))
		}
	}
	return out
}

func collectClass(node analyzer.Node, ctx *analyzer.Context, index *definitions.Collection) definitions.ClassDefinition {
	nameNode := node.ChildByField("name")
	var name []byte
	if nameNode != nil {
		name = qualify(ctx, nameNode.Content())
	}

	_, mods := collectModifiers(node.ChildByField("modifiers"))

	var extends []byte
	if base := node.ChildByField("base_clause"); base != nil {
		if n := firstName(base); n != nil {
			extends = ctx.ResolveName(n.Content())
		}
	}

	var implements [][]byte
	if ifaces := node.ChildByField("interfaces"); ifaces != nil {
		for _, n := range ifaces.Children() {
			if n.Kind() == "name" || n.Kind() == "qualified_name" {
				implements = append(implements, ctx.ResolveName(n.Content()))
			}
		}
	}

	body := node.ChildByField("body")
	methods := collectMethods(body, ctx)
	if ctor, ok := constructorMethod(body, ctx); ok {
		methods = append(methods, ctor)
	}

	return definitions.ClassDefinition{
		CanonicalName: name,
		Modifiers:     mods,
		Extends:       extends,
		Implements:    implements,
		Uses:          collectUses(body, ctx),
		Constants:     collectConstants(body),
		Properties:    collectProperties(body, ctx),
		Methods:       methods,
	}
}

func collectInterface(node analyzer.Node, ctx *analyzer.Context) definitions.InterfaceDefinition {
	nameNode := node.ChildByField("name")
	var name []byte
	if nameNode != nil {
		name = qualify(ctx, nameNode.Content())
	}

	var extends [][]byte
	if base := node.ChildByField("base_clause"); base != nil {
		for _, n := range base.Children() {
			if n.Kind() == "name" || n.Kind() == "qualified_name" {
				extends = append(extends, ctx.ResolveName(n.Content()))
			}
		}
	}

	body := node.ChildByField("body")
	return definitions.InterfaceDefinition{
		CanonicalName: name,
		Extends:       extends,
		Constants:     collectConstants(body),
		Methods:       collectMethods(body, ctx),
	}
}

func collectTrait(node analyzer.Node, ctx *analyzer.Context) definitions.TraitDefinition {
	nameNode := node.ChildByField("name")
	var name []byte
	if nameNode != nil {
		name = qualify(ctx, nameNode.Content())
	}

	body := node.ChildByField("body")
	return definitions.TraitDefinition{
		CanonicalName: name,
		Uses:          collectUses(body, ctx),
		Constants:     collectConstants(body),
		Properties:    collectProperties(body, ctx),
		Methods:       collectMethods(body, ctx),
	}
}

func collectEnum(node analyzer.Node, ctx *analyzer.Context) definitions.EnumDefinition {
	nameNode := node.ChildByField("name")
	var name []byte
	if nameNode != nil {
		name = qualify(ctx, nameNode.Content())
	}

	backing := definitions.BackingNone
	if t := node.ChildByField("backing_type"); t != nil {
		switch string(t.Content()) {
		case "int":
			backing = definitions.BackingInt
		case "string":
			backing = definitions.BackingString
		}
	}

	var implements [][]byte
	if ifaces := node.ChildByField("interfaces"); ifaces != nil {
		for _, n := range ifaces.Children() {
			if n.Kind() == "name" || n.Kind() == "qualified_name" {
				implements = append(implements, ctx.ResolveName(n.Content()))
			}
		}
	}

	body := node.ChildByField("body")
	var cases [][]byte
	if body != nil {
		for _, member := range body.Children() {
			if member.Kind() != "enum_case" {
				continue
			}
			if n := member.ChildByField("name"); n != nil {
				cases = append(cases, n.Content())
			}
		}
	}

	return definitions.EnumDefinition{
		CanonicalName: name,
		BackedType:    backing,
		Implements:    implements,
		Cases:         cases,
		Constants:     collectConstants(body),
		Methods:       collectMethods(body, ctx),
	}
}

func firstName(node analyzer.Node) analyzer.Node {
	for _, child := range node.Children() {
		if child.Kind() == "name" || child.Kind() == "qualified_name" {
			return child
		}
	}
	return nil
}
