package wfcconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hollow-tiles/wfc/direction"
	"github.com/hollow-tiles/wfc/tiled"
)

// TileDocument is one tile entry of a TiledDocument: a bitmap plus its
// per-side connectivity labels, symmetry, sampling weight, and an
// optional restriction on which missing symmetries to instantiate.
type TileDocument struct {
	Bitmap            [][]string `yaml:"bitmap"`
	North             SideSpec   `yaml:"north"`
	East              SideSpec   `yaml:"east"`
	South             SideSpec   `yaml:"south"`
	West              SideSpec   `yaml:"west"`
	Symmetry          string     `yaml:"symmetry"`
	Weight            float64    `yaml:"weight"`
	AllowedSymmetries []string   `yaml:"allowed_symmetries"`
}

// IncompatibleDocument is one explicit abutment exclusion, per
// TileSet.DeclareIncompatible.
type IncompatibleDocument struct {
	TileA int `yaml:"tile_a"`
	TileB int `yaml:"tile_b"`
	Label int `yaml:"label"`
}

// TiledDocument is the YAML shape loaded by LoadTiled: a list of tiles,
// optional explicit incompatibilities, and the Tiled model's output
// options.
type TiledDocument struct {
	Tiles          []TileDocument         `yaml:"tiles"`
	Incompatible   []IncompatibleDocument `yaml:"incompatible"`
	OutputWrapping string                 `yaml:"output_wrapping"`
	OutputSize     [2]int                 `yaml:"output_size"`
	Seed           uint64                 `yaml:"seed"`
}

// LoadTiled reads filename and parses it into a TileSet and
// tiled.Options, applying tiled.DefaultOptions for any zero-valued
// field the document omits.
func LoadTiled(filename string) (*tiled.TileSet, tiled.Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, tiled.Options{}, fmt.Errorf("wfcconfig: failed to read tiled config: %w", err)
	}
	return ParseTiled(data)
}

// ParseTiled parses a YAML document already read into memory.
func ParseTiled(data []byte) (*tiled.TileSet, tiled.Options, error) {
	var doc TiledDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, tiled.Options{}, fmt.Errorf("wfcconfig: failed to parse tiled config: %w", err)
	}
	return doc.build()
}

func (doc TiledDocument) build() (*tiled.TileSet, tiled.Options, error) {
	if len(doc.Tiles) == 0 {
		return nil, tiled.Options{}, tiled.ErrNoTiles
	}

	ts := tiled.NewTileSet()
	for _, td := range doc.Tiles {
		if _, err := td.addTo(ts); err != nil {
			return nil, tiled.Options{}, err
		}
	}
	for _, inc := range doc.Incompatible {
		if err := ts.DeclareIncompatible(tiled.TileID(inc.TileA), tiled.TileID(inc.TileB), inc.Label); err != nil {
			return nil, tiled.Options{}, err
		}
	}

	opts := tiled.DefaultOptions()
	var err error
	if opts.OutputWrapping, err = parseWrapping(doc.OutputWrapping); err != nil {
		return nil, tiled.Options{}, err
	}
	if doc.OutputSize[0] > 0 {
		opts.OutputWidth = doc.OutputSize[0]
	}
	if doc.OutputSize[1] > 0 {
		opts.OutputHeight = doc.OutputSize[1]
	}
	if doc.Seed != 0 {
		opts.MasterSeed = doc.Seed
	}

	return ts, opts, nil
}

func (td TileDocument) addTo(ts *tiled.TileSet) (tiled.TileID, error) {
	base, err := buildBitmap(td.Bitmap, func(r, g, b byte) tiled.Cell {
		return tiled.Cell{R: r, G: g, B: b}
	})
	if err != nil {
		return 0, err
	}

	var conn tiled.Connectivity
	conn.Set(direction.North, tiled.SideLabel{Native: td.North.Native, Reversed: td.North.Reversed})
	conn.Set(direction.East, tiled.SideLabel{Native: td.East.Native, Reversed: td.East.Reversed})
	conn.Set(direction.South, tiled.SideLabel{Native: td.South.Native, Reversed: td.South.Reversed})
	conn.Set(direction.West, tiled.SideLabel{Native: td.West.Native, Reversed: td.West.Reversed})

	symmetry, err := parseTileSymmetryLetter(td.Symmetry, nil)
	if err != nil {
		return 0, err
	}

	weight := td.Weight
	if weight <= 0 {
		weight = 1
	}

	if len(td.AllowedSymmetries) == 0 {
		return ts.Add(base, conn, symmetry, weight)
	}
	allowed, err := parseSymmetrySet(td.AllowedSymmetries)
	if err != nil {
		return 0, err
	}
	return ts.Add(base, conn, symmetry, weight, allowed)
}
