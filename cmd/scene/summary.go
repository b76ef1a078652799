package main

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	scene "github.com/grindlemire/go-scene"
)

// printSummary writes one line per page, coloured when w is a terminal.
func printSummary(w io.Writer, pages []*page) {
	out := termenv.NewOutput(w)
	title := out.String("page        frames  validations  errors  pending  nodes  last tick").Bold()
	fmt.Fprintln(w, title)

	for _, p := range pages {
		st := p.sys.Stats()
		nodes := 0
		for _, b := range p.bases {
			nodes += b.NodeCount()
		}
		line := fmt.Sprintf("%-10s  %6d  %11d  %6d  %7d  %5d  %9s",
			p.name, st.Frame, st.Validations, st.Errors, st.Pending, nodes, st.LastTick.Round(time.Microsecond))
		fmt.Fprintln(w, out.String(line).Foreground(statusColor(out, st)))
	}
}

// statusColor is green for a settled page, yellow for one with work still
// queued and red for one that reported errors.
func statusColor(out *termenv.Output, st scene.Stats) termenv.Color {
	switch {
	case st.Errors > 0:
		return out.Color("1")
	case st.Pending > 0:
		return out.Color("3")
	default:
		return out.Color("2")
	}
}
