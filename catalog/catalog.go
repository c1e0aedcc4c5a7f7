// Package catalog loads thread catalogs into a palette.Palette.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmuldo/threadmatch/palette"
	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultCatalog []byte

// Entry is a single catalog record as stored on disk.
type Entry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
}

// Default returns the built-in catalog.
func Default() palette.Palette {
	p, e := ReadJSON(bytes.NewReader(defaultCatalog))
	if e != nil {
		panic(fmt.Sprintf("catalog: bad built-in catalog: %v", e))
	}
	return p
}

// Load reads a catalog file, picking the format from its extension.
func Load(path string) (palette.Palette, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	var p palette.Palette
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		p, e = ReadJSON(f)
	case ".yaml", ".yml":
		p, e = ReadYAML(f)
	case ".csv":
		p, e = ReadCSV(f)
	default:
		return nil, fmt.Errorf("catalog %s: unsupported format %q", path, ext)
	}
	if e != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, e)
	}
	return p, nil
}

// ReadJSON reads a JSON array of entries.
func ReadJSON(r io.Reader) (palette.Palette, error) {
	var entries []Entry
	if e := json.NewDecoder(r).Decode(&entries); e != nil {
		return nil, e
	}
	return Build(entries)
}

// ReadYAML reads a YAML sequence of entries.
func ReadYAML(r io.Reader) (palette.Palette, error) {
	var entries []Entry
	if e := yaml.NewDecoder(r).Decode(&entries); e != nil && e != io.EOF {
		return nil, e
	}
	return Build(entries)
}

// ReadCSV reads rows with an id,name,hex header. Columns may be in any order
// and name may be omitted.
func ReadCSV(r io.Reader) (palette.Palette, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, e := cr.Read()
	if e == io.EOF {
		return palette.Palette{}, nil
	}
	if e != nil {
		return nil, e
	}
	col := map[string]int{"name": -1}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, k := range []string{"id", "hex"} {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("missing %q column", k)
		}
	}

	var entries []Entry
	for {
		rec, e := cr.Read()
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, e
		}
		ent := Entry{ID: rec[col["id"]], Hex: rec[col["hex"]]}
		if i := col["name"]; i >= 0 {
			ent.Name = rec[i]
		}
		entries = append(entries, ent)
	}
	return Build(entries)
}

// Build converts entries to a validated palette, keeping their order.
func Build(entries []Entry) (palette.Palette, error) {
	threads := make([]palette.Thread, 0, len(entries))
	for i, ent := range entries {
		rgb, ok := palette.ParseHex(ent.Hex)
		if !ok {
			return nil, fmt.Errorf("entry %d (%s): invalid hex color %q", i, ent.ID, ent.Hex)
		}
		threads = append(threads, palette.NewThread(strings.TrimSpace(ent.ID), ent.Name, rgb))
	}
	return palette.New(threads...)
}
