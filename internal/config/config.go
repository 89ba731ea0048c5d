// Package config loads on-disk defaults for the francac/francai CLI drivers,
// grounded on github.com/dekarrin/tunaq's internal/tqw TOML-based options
// file (that package itself is dropped -- see DESIGN.md -- but its
// BurntSushi/toml usage pattern is kept here).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Options is the set of display options a CLI driver loads from disk before
// applying any command-line flag overrides.
type Options struct {
	AttrNames bool `toml:"attr_names"`
	NodeNames bool `toml:"node_names"`
	ShowCoord bool `toml:"show_coord"`
}

// DefaultOptions are used whenever no config file is present.
func DefaultOptions() Options {
	return Options{AttrNames: true, NodeNames: false, ShowCoord: false}
}

// Load reads Options from a TOML file at path. A missing file is not an
// error; it yields DefaultOptions so a fresh checkout works with no setup.
func Load(path string) (Options, error) {
	opts := DefaultOptions()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}

	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
