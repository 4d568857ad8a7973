package wfcconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SideSpec is a tile side's connectivity label as written in YAML:
// either a bare integer (the same label read from both directions) or
// a {native, reversed} mapping for an asymmetric side.
type SideSpec struct {
	Native, Reversed int
}

type sideSpecMapping struct {
	Native   int `yaml:"native"`
	Reversed int `yaml:"reversed"`
}

func (s *SideSpec) UnmarshalYAML(value *yaml.Node) error {
	var bare int
	if err := value.Decode(&bare); err == nil {
		s.Native, s.Reversed = bare, bare
		return nil
	}
	var m sideSpecMapping
	if err := value.Decode(&m); err != nil {
		return fmt.Errorf("wfcconfig: side spec must be an integer or {native, reversed}: %w", err)
	}
	s.Native, s.Reversed = m.Native, m.Reversed
	return nil
}
