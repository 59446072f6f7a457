// Package rules holds the concrete checks the engine runs during Pass 2.
package rules

import "github.com/pxp-lang/statan/analyzer"

// All returns the ten built-in rules in a fixed, deterministic order — the
// order diagnostics are produced in at any single node.
func All() []analyzer.Rule {
	return []analyzer.Rule{
		ValidFunctionRule{},
		ValidClassRule{},
		ValidStaticCallRule{},
		ValidThisCallRule{},
		ValidAssignmentRule{},
		ValidArithmeticOperationRule{},
		AbstractMethodInNonAbstractClassRule{},
		CallPrivateThroughStaticRule{},
		FunctionDefinitionRule{},
		DumpTypeRule{},
	}
}
