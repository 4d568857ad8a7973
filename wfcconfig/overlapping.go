package wfcconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/overlapping"
)

// OverlappingDocument is the YAML shape loaded by LoadOverlapping: an
// inline exemplar bitmap plus every option overlapping.Options
// recognizes (spec.md section 6).
type OverlappingDocument struct {
	Exemplar         [][]string `yaml:"exemplar"`
	PatternSize      int        `yaml:"pattern_size"`
	Stride           [2]int     `yaml:"stride"`
	InputWrapping    string     `yaml:"input_wrapping"`
	OutputWrapping   string     `yaml:"output_wrapping"`
	Symmetries       []string   `yaml:"symmetries"`
	EqualFrequencies bool       `yaml:"equal_frequencies"`
	OutputSize       [2]int     `yaml:"output_size"`
	Seed             uint64     `yaml:"seed"`
}

// LoadOverlapping reads filename and parses it into an exemplar grid and
// overlapping.Options, applying overlapping.DefaultOptions for any
// zero-valued field the document omits. Mirrors config.Load's
// read-then-unmarshal shape.
func LoadOverlapping(filename string) (*grid.Grid[overlapping.Cell], overlapping.Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, overlapping.Options{}, fmt.Errorf("wfcconfig: failed to read overlapping config: %w", err)
	}
	return ParseOverlapping(data)
}

// ParseOverlapping parses a YAML document already read into memory.
func ParseOverlapping(data []byte) (*grid.Grid[overlapping.Cell], overlapping.Options, error) {
	var doc OverlappingDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, overlapping.Options{}, fmt.Errorf("wfcconfig: failed to parse overlapping config: %w", err)
	}
	return doc.build()
}

func (doc OverlappingDocument) build() (*grid.Grid[overlapping.Cell], overlapping.Options, error) {
	exemplar, err := buildBitmap(doc.Exemplar, func(r, g, b byte) overlapping.Cell {
		return overlapping.Cell{R: r, G: g, B: b}
	})
	if err != nil {
		return nil, overlapping.Options{}, err
	}

	opts := overlapping.DefaultOptions()
	if doc.PatternSize > 0 {
		opts.PatternSize = doc.PatternSize
	}
	if doc.Stride[0] > 0 {
		opts.StrideX = doc.Stride[0]
	}
	if doc.Stride[1] > 0 {
		opts.StrideY = doc.Stride[1]
	}
	if opts.InputWrapping, err = parseWrapping(doc.InputWrapping); err != nil {
		return nil, overlapping.Options{}, err
	}
	if opts.OutputWrapping, err = parseWrapping(doc.OutputWrapping); err != nil {
		return nil, overlapping.Options{}, err
	}
	if opts.Symmetries, err = parseSymmetrySet(doc.Symmetries); err != nil {
		return nil, overlapping.Options{}, err
	}
	opts.EqualFrequencies = doc.EqualFrequencies
	if doc.OutputSize[0] > 0 {
		opts.OutputWidth = doc.OutputSize[0]
	}
	if doc.OutputSize[1] > 0 {
		opts.OutputHeight = doc.OutputSize[1]
	}
	if doc.Seed != 0 {
		opts.MasterSeed = doc.Seed
	}

	return exemplar, opts, nil
}
