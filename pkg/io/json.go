package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
)

type document struct {
	Name  string   `json:"name,omitempty"`
	Edges [][2]int `json:"edges"`
}

// ReadJSON decodes a JSON genome from r.
//
// ReadJSON returns an error if the JSON is malformed or an edge references a
// negative node id. Self-loops and duplicate edges are dropped. ReadJSON does
// not close r.
func ReadJSON(r io.Reader) (*genome.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode genome")
	}
	for i, e := range doc.Edges {
		if err := errors.ValidateEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return genome.FromPairs(doc.Edges)
}

// ImportJSON reads a JSON genome file at path.
func ImportJSON(path string) (*genome.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes g as indented JSON. The name is omitted when empty.
func WriteJSON(g *genome.Graph, name string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Name: name, Edges: g.Pairs()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *genome.Graph, name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, name, f)
}
