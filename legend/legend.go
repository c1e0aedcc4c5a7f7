// Package legend builds the thread legend of a pattern: which thread stands in
// for which source colors, and how many stitches each covers.
package legend

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/threadmatch/image"
	"github.com/mmuldo/threadmatch/palette"
)

// Symbols are handed out to entries in order. Entries past the end get "?".
const Symbols = "X+O*#@%&=/\\~<>^vSZHNWMKTY"

// DefaultTemplate renders a plain text legend.
const DefaultTemplate = `{{ name }} ({{ method }}{% if unique %}, unique{% endif %}, {{ total }} stitches)
{% for e in entries %}{{ e.symbol }}  {{ e.id }}  {{ e.name }}  #{{ e.hex }}  {{ e.count }}  {{ e.percent|floatformat:1 }}%
{% endfor %}`

// Legend is the result of matching an image's colors to a palette.
type Legend struct {
	Name    string  `json:"name"`
	Source  string  `json:"source,omitempty"`
	Method  string  `json:"method"`
	Unique  bool    `json:"unique"`
	Entries []Entry `json:"entries"`
}

// Entry is one thread in a legend.
type Entry struct {
	Symbol string         `json:"symbol"`
	Thread palette.Thread `json:"thread"`
	Colors []palette.RGB  `json:"colors"`
	Count  int            `json:"count"`
}

type byCount []Entry

func (es byCount) Len() int { return len(es) }
func (es byCount) Less(i, j int) bool {
	if es[i].Count != es[j].Count {
		return es[i].Count > es[j].Count
	}
	return es[i].Thread.ID < es[j].Thread.ID
}
func (es byCount) Swap(i, j int) { es[i], es[j] = es[j], es[i] }

// Build groups ranked source colors by the thread each was matched to.
// matches[i] must be the thread for ranked[i].
func Build(ranked image.ColorCountList, matches []palette.Thread) (*Legend, error) {
	if len(ranked) != len(matches) {
		return nil, fmt.Errorf("%d colors but %d matches", len(ranked), len(matches))
	}

	idx := make(map[string]int)
	var es []Entry
	for i, cc := range ranked {
		t := matches[i]
		j, ok := idx[t.ID]
		if !ok {
			j = len(es)
			idx[t.ID] = j
			es = append(es, Entry{Thread: t})
		}
		es[j].Colors = append(es[j].Colors, cc.Color)
		es[j].Count += cc.Count
	}

	sort.Sort(byCount(es))
	for i := range es {
		es[i].Symbol = symbol(i)
	}

	return &Legend{Entries: es}, nil
}

func symbol(i int) string {
	if i < len(Symbols) {
		return Symbols[i : i+1]
	}
	return "?"
}

// Total is the number of stitches across all entries.
func (l *Legend) Total() int {
	n := 0
	for _, e := range l.Entries {
		n += e.Count
	}
	return n
}

// Threads returns the thread of every entry, in legend order.
func (l *Legend) Threads() palette.Palette {
	p := make(palette.Palette, len(l.Entries))
	for i, e := range l.Entries {
		p[i] = e.Thread
	}
	return p
}

// WriteSwatches prints each entry in its thread color using 24-bit ANSI codes.
func (l *Legend) WriteSwatches(w io.Writer) error {
	for _, en := range l.Entries {
		c := en.Thread.RGB
		_, e := fmt.Fprintf(w, "\033[38;2;%d;%d;%dm %s %s = %s\033[0m %s (%d)\n",
			c.R, c.G, c.B, en.Symbol, en.Thread.ID, c, en.Thread.Name, en.Count)
		if e != nil {
			return e
		}
	}
	return nil
}

// Save writes the legend to path as JSON, creating parent directories.
func (l *Legend) Save(path string) error {
	if e := os.MkdirAll(filepath.Dir(path), 0o755); e != nil {
		return e
	}
	b, e := json.MarshalIndent(l, "", "  ")
	if e != nil {
		return e
	}
	return ioutil.WriteFile(path, b, 0o644)
}

// Read loads a legend written by Save.
func Read(path string) (*Legend, error) {
	b, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, e
	}
	l := new(Legend)
	if e := json.Unmarshal(b, l); e != nil {
		return nil, fmt.Errorf("legend %s: %w", path, e)
	}
	return l, nil
}

// Render executes a pongo2 template against the legend.
func (l *Legend) Render(tpl string) (string, error) {
	t, e := pongo2.FromString(tpl)
	if e != nil {
		return "", e
	}
	return t.Execute(l.context())
}

// RenderFile is Render with the template read from path.
func (l *Legend) RenderFile(path string) (string, error) {
	t, e := pongo2.FromFile(path)
	if e != nil {
		return "", e
	}
	return t.Execute(l.context())
}

func (l *Legend) context() pongo2.Context {
	total := l.Total()
	entries := make([]pongo2.Context, len(l.Entries))
	for i, e := range l.Entries {
		colors := make([]string, len(e.Colors))
		for j, c := range e.Colors {
			colors[j] = c.Hex()
		}
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(e.Count) / float64(total)
		}
		entries[i] = pongo2.Context{
			"symbol":  e.Symbol,
			"id":      e.Thread.ID,
			"name":    e.Thread.Name,
			"hex":     e.Thread.RGB.Hex(),
			"r":       e.Thread.RGB.R,
			"g":       e.Thread.RGB.G,
			"b":       e.Thread.RGB.B,
			"count":   e.Count,
			"percent": pct,
			"colors":  colors,
		}
	}
	return pongo2.Context{
		"name":    l.Name,
		"source":  l.Source,
		"method":  l.Method,
		"unique":  l.Unique,
		"total":   total,
		"entries": entries,
	}
}
