package levels

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ingyamilmolinar/quadrants/core/model"
)

//go:embed puzzles.toml
var builtin []byte

type puzzleDoc struct {
	Name      string  `toml:"name"`
	Density   int     `toml:"density"`
	Vertices  []int   `toml:"vertices"`
	Edges     [][]int `toml:"edges"`
	Neighbors [][]int `toml:"neighbors"`
}

type setDoc struct {
	Puzzles []puzzleDoc `toml:"puzzle"`
}

// Builtin returns the puzzle set compiled into the binary.
func Builtin() ([]model.Definition, error) {
	return Parse(builtin)
}

// Load reads a puzzle set file, or the built-in set when path is empty.
func Load(path string) ([]model.Definition, error) {
	if path == "" {
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML puzzle set and validates every definition. Unknown
// keys are rejected so a misspelled field can't silently drop an edge.
func Parse(data []byte) ([]model.Definition, error) {
	var doc setDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("levels: decode: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("levels: unknown key %q", keys[0].String())
	}
	if len(doc.Puzzles) == 0 {
		return nil, ErrEmptySet
	}

	defs := make([]model.Definition, 0, len(doc.Puzzles))
	for i, p := range doc.Puzzles {
		def, err := p.definition()
		if err != nil {
			return nil, fmt.Errorf("levels: puzzle %d: %w", i+1, err)
		}
		if err := model.Validate(def); err != nil {
			return nil, fmt.Errorf("levels: puzzle %d: %w", i+1, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (p puzzleDoc) definition() (model.Definition, error) {
	def := model.Definition{
		Name:      p.Name,
		Density:   p.Density,
		VertexIDs: make([]model.VertexID, len(p.Vertices)),
		Edges:     make([][2]model.VertexID, len(p.Edges)),
		Neighbors: make([][]model.VertexID, len(p.Neighbors)),
	}
	for i, id := range p.Vertices {
		def.VertexIDs[i] = model.VertexID(id)
	}
	for i, e := range p.Edges {
		if len(e) != 2 {
			return def, fmt.Errorf("%w: edge %d has %d endpoints", model.ErrEdgeMismatch, i, len(e))
		}
		def.Edges[i] = [2]model.VertexID{model.VertexID(e[0]), model.VertexID(e[1])}
	}
	for i, nbrs := range p.Neighbors {
		def.Neighbors[i] = make([]model.VertexID, len(nbrs))
		for j, id := range nbrs {
			def.Neighbors[i][j] = model.VertexID(id)
		}
	}
	return def, nil
}
