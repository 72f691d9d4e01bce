// Package schemedef loads scheme definitions from external resources and
// registers them with a msisdn.Registry.
//
// Three formats are supported, all mapping a scheme name to its
// specification string:
//
//   - properties: one "name=CC=...;NDC=...;SN=..." definition per line
//   - YAML: a mapping of name to specification
//   - JSON: an object of name to specification
//
// Loading an absent file yields no schemes rather than an error, so a
// process may start with an empty registry and be populated later.
package schemedef

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nulleins/msisdn"
)

// LoadFile reads path and dispatches on its extension: .yaml/.yml and .json
// get the structured loaders, anything else the properties loader. A missing
// file returns (nil, nil).
func LoadFile(path string) ([]*msisdn.Scheme, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schemedef: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".json":
		return LoadJSON(data)
	default:
		return LoadProperties(bytes.NewReader(data))
	}
}

// RegisterFile loads path and registers every scheme it defines with reg.
func RegisterFile(reg *msisdn.Registry, path string) error {
	schemes, err := LoadFile(path)
	if err != nil {
		return err
	}
	reg.RegisterAll(schemes...)
	return nil
}

// fromMap parses name->specification entries in name order, so load results
// are deterministic regardless of map iteration.
func fromMap(defs map[string]string) ([]*msisdn.Scheme, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	schemes := make([]*msisdn.Scheme, 0, len(names))
	for _, name := range names {
		s, err := msisdn.ParseScheme(name, defs[name])
		if err != nil {
			return nil, fmt.Errorf("schemedef: scheme %q: %w", name, err)
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}
