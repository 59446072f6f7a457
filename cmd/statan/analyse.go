package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
	"github.com/pxp-lang/statan/analyzer/rules"
	"github.com/pxp-lang/statan/inspector/php"
	"github.com/pxp-lang/statan/inspector/repository"
	"github.com/pxp-lang/statan/internal/cliutil"
	"github.com/pxp-lang/statan/internal/discover"
	"github.com/pxp-lang/statan/internal/report"
)

func newAnalyseCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "analyse <path>",
		Short: "analyse a PHP project or file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyse(args[0], quiet)
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the progress spinner")
	return cmd
}

// runAnalyse is the CLI driver: discover files, build the definition index
// in Pass 1 across every discovered file, then run the rule engine in Pass
// 2 per file, and print the diagnostic table. Exit code stays 0 whenever
// discovery and parsing succeed, regardless of whether diagnostics were
// produced; nonzero only on catastrophic I/O failure (the root path itself
// can't be read).
func runAnalyse(root string, quiet bool) error {
	log := cliutil.NewLogger()
	ctx := context.Background()

	if proj, err := repository.New().DetectProject(root); err == nil && proj != nil {
		log.Info().Str("project", proj.Name).Str("type", proj.Type).Msg("detected project")
	}

	walker := discover.New(".php")
	spin := cliutil.Spinner("Discovering PHP files ")
	if !quiet {
		spin.Start()
	}
	files, err := walker.Files(ctx, root)
	if !quiet {
		spin.Stop()
	}
	if err != nil {
		return errors.Wrapf(err, "discover files under %s", root)
	}
	log.Info().Int("files", len(files)).Msg("discovered source files")

	inspector := php.NewInspector()
	cache := cliutil.LoadHashCache(root)
	defer cache.Save()

	// parsed files keep their AST around between Pass 1 (build the index
	// across every file) and Pass 2 (walk each file against the completed
	// index); a failed parse instead gets a ready-made failure sink so Pass
	// 2 can skip it while keeping files in discovery order.
	type parsed struct {
		file string
		root analyzer.Node
		fail *analyzer.Sink
	}
	all := make([]parsed, 0, len(files))
	index := definitions.NewCollection()

	for _, file := range files {
		fileRoot, src, err := inspector.ParseFile(file)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("parse failed, skipping")
			sink := analyzer.NewSink(file)
			sink.Errorf(0, "failed to parse: %s", err)
			all = append(all, parsed{file: file, fail: sink})
			continue
		}

		if hash, hashErr := php.ContentHash(src); hashErr == nil && !cache.Unchanged(file, hash) {
			log.Debug().Str("file", file).Msg("parsed")
		}

		php.CollectInto(fileRoot, index)
		all = append(all, parsed{file: file, root: fileRoot})
	}

	engine := analyzer.NewEngine(rules.All()...)
	sinks := make([]*analyzer.Sink, 0, len(all))
	for _, p := range all {
		if p.fail != nil {
			sinks = append(sinks, p.fail)
			continue
		}
		sinks = append(sinks, engine.Analyze(p.root, p.file, index))
	}

	report.Print(os.Stdout, sinks)
	return nil
}
