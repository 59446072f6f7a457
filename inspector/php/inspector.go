package php

import (
	"context"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/viant/afs"

	"github.com/pxp-lang/statan/analyzer"
)

// Inspector parses PHP source into the syntax tree the analyzer walks.
type Inspector struct {
	fs afs.Service
}

func NewInspector() *Inspector { return &Inspector{fs: afs.New()} }

// ParseSource parses src and returns its root node.
func (i *Inspector) ParseSource(src []byte) (analyzer.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(php.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "parse php source")
	}

	return wrap(tree.RootNode(), src), nil
}

// ParseFile reads filename through the shared afs abstraction (the same one
// internal/discover uses to enumerate it) and parses its contents.
func (i *Inspector) ParseFile(filename string) (analyzer.Node, []byte, error) {
	src, err := i.fs.DownloadWithURL(context.Background(), filename)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read %s", filename)
	}
	root, err := i.ParseSource(src)
	if err != nil {
		return nil, src, errors.Wrapf(err, "parse %s", filename)
	}
	return root, src, nil
}
