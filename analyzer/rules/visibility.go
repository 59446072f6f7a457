package rules

import (
	"bytes"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// visibilityAllowed decides whether a call site inside ctx may reach method,
// which is declared on definingClass. Public is always reachable; private
// requires the caller's own class scope to be definingClass exactly;
// protected additionally allows either side of an extends link.
func visibilityAllowed(method *definitions.MethodDefinition, definingClass *definitions.ClassDefinition, ctx *analyzer.Context, index *definitions.Collection) bool {
	if method.Visibility == definitions.Public || definingClass == nil {
		return method.Visibility == definitions.Public
	}
	if !ctx.IsInClass() {
		return false
	}
	caller := index.GetClass(ctx.ClassScope(), ctx)
	if caller == nil {
		return false
	}
	if method.Visibility == definitions.Private {
		return bytes.Equal(caller.CanonicalName, definingClass.CanonicalName)
	}
	// Protected.
	if bytes.Equal(caller.CanonicalName, definingClass.CanonicalName) {
		return true
	}
	if caller.IsSubclassOf(definingClass.CanonicalName, index) {
		return true
	}
	return definingClass.IsSubclassOf(caller.CanonicalName, index)
}

// resolveScope resolves a static-call target (Target::, self::, static::,
// parent::) to a canonical class name. Reports and returns false when the
// target can't be resolved (used outside a class, or no parent exists).
func resolveScope(scopeNode analyzer.Node, ctx *analyzer.Context, index *definitions.Collection, sink *analyzer.Sink, line int) ([]byte, bool) {
	if scopeNode.Kind() != "name" && scopeNode.Kind() != "qualified_name" {
		return nil, false
	}

	switch string(scopeNode.Content()) {
	case "self", "static":
		if !ctx.IsInClass() {
			sink.Errorf(line, "Cannot use `%s` outside of a class context", scopeNode.Content())
			return nil, false
		}
		return ctx.ResolveName(ctx.ClassScope()), true
	case "parent":
		if !ctx.IsInClass() {
			sink.Errorf(line, "Cannot use `parent` outside of a class context")
			return nil, false
		}
		current := index.GetClass(ctx.ClassScope(), ctx)
		if current == nil || !current.HasExtends() {
			sink.Errorf(line, "Cannot use `parent` in a class with no parent")
			return nil, false
		}
		return current.Extends, true
	default:
		return ctx.ResolveName(scopeNode.Content()), true
	}
}
