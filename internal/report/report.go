// Package report renders a Sink's diagnostics as a Line | Message table.
// Table rendering stays out of the analysis core entirely — this package
// is the only place the driver layer formats output for a terminal.
package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/pxp-lang/statan/analyzer"
)

// Print writes one table per sink that produced at least one diagnostic,
// preceded by the file name, in the order the diagnostics were produced
// (tree pre-order × rule registration order — sinks already hold that
// order, Print does not resort them). Sinks with zero diagnostics are
// silent.
func Print(w io.Writer, sinks []*analyzer.Sink) {
	for _, sink := range sinks {
		diagnostics := sink.Diagnostics()
		if len(diagnostics) == 0 {
			continue
		}

		io.WriteString(w, sink.File()+"\n")

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Line", "Message"})
		table.SetAutoWrapText(false)
		table.SetRowLine(false)

		for _, d := range diagnostics {
			table.Append([]string{lineLabel(d), d.Message})
		}
		table.Render()
	}
}

func lineLabel(d analyzer.Diagnostic) string {
	line := strconv.Itoa(d.Line)
	switch d.Severity {
	case analyzer.Error:
		return line + " [error]"
	case analyzer.Warning:
		return line + " [warning]"
	default:
		return line + " [note]"
	}
}
