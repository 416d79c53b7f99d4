package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"seqalign/core/align"
)

// Options control the ASCII rendering.
type Options struct {
	// Columns per block. If <=0, use default (60).
	Width int

	// Width of the left position counter. If <=0, use default (10).
	CounterWidth int

	// Color paints residues by column kind with ANSI escapes.
	Color bool
}

// DefaultOptions match the record viewer layout: 60 columns, 10-wide counter.
var DefaultOptions = Options{
	Width:        60,
	CounterWidth: 10,
}

func (o Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return DefaultOptions.Width
}

func (o Options) counterWidth() int {
	if o.CounterWidth > 0 {
		return o.CounterWidth
	}
	return DefaultOptions.CounterWidth
}

// Colors are forced to plain ANSI; whether to color at all is the caller's call.
var (
	ansi = func() *lipgloss.Renderer {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI)
		return r
	}()
	matchStyle = ansi.NewStyle().Foreground(lipgloss.Color("2"))
	subStyle   = ansi.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	gapStyle   = ansi.NewStyle().Foreground(lipgloss.Color("3"))
)

func styleFor(op align.Move) lipgloss.Style {
	switch op {
	case align.Match:
		return matchStyle
	case align.Substitution:
		return subStyle
	default:
		return gapStyle
	}
}

// paint colors s[from:to] run by run, where ops gives each column's kind.
func paint(s string, ops []align.Move, from, to int) string {
	var b strings.Builder
	for k := from; k < to; {
		end := k + 1
		for end < to && ops[end] == ops[k] {
			end++
		}
		b.WriteString(styleFor(ops[k]).Render(s[k:end]))
		k = end
	}
	return b.String()
}

// RenderAlignment chunks the three alignment strings into blocks of
// opt.Width columns. Each block is
//
//	␣<start>␣<top chunk, padded to width>␣<end>
//	␣<blank counter>␣<track chunk>
//	␣<blank counter>␣<bottom chunk>
//
// where start is the 0-based column offset of the block and end is the offset
// just past it. Blocks are separated by a blank line.
func RenderAlignment(al align.Alignment, opt Options) string {
	n := len(al.Top)
	if n == 0 {
		return ""
	}
	w, cw := opt.width(), opt.counterWidth()
	colored := opt.Color && len(al.Ops) == n
	blank := strings.Repeat(" ", cw)

	var b strings.Builder
	for start := 0; start < n; start += w {
		to := start + w
		if to > n {
			to = n
		}
		top, bot := al.Top[start:to], al.Bottom[start:to]
		pad := strings.Repeat(" ", w-(to-start))
		if colored {
			top = paint(al.Top, al.Ops, start, to)
			bot = paint(al.Bottom, al.Ops, start, to)
		}
		if start > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, " %*d %s%s %d\n", cw, start, top, pad, to)
		fmt.Fprintf(&b, " %s %s\n", blank, al.Track[start:to])
		fmt.Fprintf(&b, " %s %s\n", blank, bot)
	}
	return b.String()
}

// RenderSummary is the one-line description printed above a block set.
func RenderSummary(queryID, targetID string, targetLen int, al align.Alignment) string {
	s := al.Stats()
	return fmt.Sprintf("# %s vs %s  length=%dbp  distance=%d  identity=%.1f%%  (match=%d sub=%d ins=%d del=%d)\n",
		queryID, targetID, targetLen, al.Distance, 100*al.Identity(),
		s.Matches, s.Substitutions, s.Insertions, s.Deletions,
	)
}
