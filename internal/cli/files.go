package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/pace"
	"github.com/katalvlaran/twexact/td"
)

func readGraphFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := pace.ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func readDecompositionFile(path string) (*td.Decomposition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := pace.ReadDecomposition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// writeOutput renders with fn into path, or into w when path is empty.
func writeOutput(w io.Writer, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(w)
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
