// Package key prints the legend of entry sections.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pages/pkg/section"
)

// Legend describes one kind of section.
type Legend struct {
	Marker  *section.Marker
	Example string
	AddedBy string
}

// DefaultLegend covers the built-in sections in entry order.
func DefaultLegend() []Legend {
	return []Legend{
		{Marker: section.Morning, Example: "#MorningPages, started at 0730", AddedBy: "first run of the day"},
		{Marker: section.Tarot, Example: "Tarot: The Fool, Air", AddedBy: "--tarot"},
		{Marker: section.Stoic, Example: "- Daily Stoic Prompt, 1/02:", AddedBy: "--stoic-prompt"},
		{Marker: section.Evening, Example: "#EveningPages, started at 2130", AddedBy: "runs after the evening starts"},
	}
}

// Key prints the section legend.
type Key struct {
	// ShowPattern adds the pattern each section is recognized by.
	ShowPattern bool
	Out         io.Writer
}

// Do renders the legend table.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Section"), bold.Sprint("Starts with"), bold.Sprint("Added by")}
	if k.ShowPattern {
		header = append(header, bold.Sprint("Pattern"))
	}
	tbl.AddRow(header...)
	for _, l := range DefaultLegend() {
		row := []interface{}{l.Marker.Name, l.Example, l.AddedBy}
		if k.ShowPattern {
			row = append(row, l.Marker.Pattern)
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
