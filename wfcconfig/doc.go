// Package wfcconfig loads overlapping.Options, tiled.Options and a
// tiled.TileSet from a YAML document, the way
// s53zo-GoCluster/config/config.go loads its cluster configuration: a
// plain gopkg.in/yaml.v3-tagged struct, os.ReadFile plus
// yaml.Unmarshal, and wrapped errors at the point of failure.
package wfcconfig
