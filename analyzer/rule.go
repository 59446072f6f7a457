package analyzer

import "github.com/pxp-lang/statan/analyzer/definitions"

// Rule is the rule engine's open-ended capability: a cheap node-kind gate
// plus the check itself. New rules only need to be registered with an
// Engine — the walker never changes.
type Rule interface {
	ShouldRun(node Node) bool
	Run(node Node, index *definitions.Collection, sink *Sink, ctx *Context)
}
