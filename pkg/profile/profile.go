// Package profile counts how often each instruction is executed, and
// renders the result as a bar chart.
package profile

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Entry is the tally for a single mnemonic.
type Entry struct {
	Name   string
	Count  uint64
	Cycles uint64
}

// Profile tallies executed instructions by mnemonic. It is not safe
// for concurrent use.
type Profile struct {
	entries map[string]*Entry

	Instructions uint64
	Cycles       uint64
}

// New returns an empty Profile.
func New() *Profile {
	return &Profile{entries: make(map[string]*Entry)}
}

// Record counts one execution of name, taking cycles clock cycles.
func (p *Profile) Record(name string, cycles uint8) {
	e, ok := p.entries[name]
	if !ok {
		e = &Entry{Name: name}
		p.entries[name] = e
	}
	e.Count++
	e.Cycles += uint64(cycles)

	p.Instructions++
	p.Cycles += uint64(cycles)
}

// Top returns the n most executed mnemonics, most executed first.
// Ties are ordered by name. n <= 0 returns every entry.
func (p *Profile) Top(n int) []Entry {
	entries := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})

	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Plot returns a bar chart of the n most executed mnemonics.
func (p *Profile) Plot(n int) (*plot.Plot, error) {
	top := p.Top(n)
	if len(top) == 0 {
		return nil, fmt.Errorf("profile: nothing recorded")
	}

	values := make(plotter.Values, len(top))
	names := make([]string, len(top))
	for i, e := range top {
		values[i] = float64(e.Count)
		names[i] = e.Name
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Instructions (%d executed, %d cycles)", p.Instructions, p.Cycles)
	pl.Y.Label.Text = "Executions"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)

	pl.Add(bars)
	pl.NominalX(names...)
	pl.X.Tick.Label.Rotation = 1.2
	pl.X.Tick.Label.XAlign = -1.0

	return pl, nil
}

// Render draws the chart of the n most executed mnemonics to w in
// the given format ("png", "svg", "pdf", ...).
func (p *Profile) Render(w io.Writer, n int, format string) error {
	pl, err := p.Plot(n)
	if err != nil {
		return err
	}

	width := vg.Points(float64(40 + 20*len(p.Top(n))))
	if width < 6*vg.Inch {
		width = 6 * vg.Inch
	}
	wt, err := pl.WriterTo(width, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save draws the chart to path, inferring the format from its extension.
func (p *Profile) Save(path string, n int) error {
	pl, err := p.Plot(n)
	if err != nil {
		return err
	}
	return pl.Save(8*vg.Inch, 4*vg.Inch, path)
}
