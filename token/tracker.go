package token

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// ExcerptContext is the number of lines shown before the offending line.
const ExcerptContext = 4

type Line struct {
	Row  int
	Text string
}

// Tracker is a line index of a source document.
type Tracker struct {
	lines []Line
	caret func(a ...any) string
}

func NewTracker(src []byte) *Tracker {
	t := &Tracker{}
	row := 1
	for {
		ln, rest, found := bytes.Cut(src, []byte{'\n'})
		ln = bytes.TrimSuffix(ln, []byte{'\r'})
		t.lines = append(t.lines, Line{Row: row, Text: string(ln)})
		if !found {
			break
		}
		src = rest
		row++
	}
	return t
}

// WithColor makes the caret line render in bold red.
func (t *Tracker) WithColor(v bool) *Tracker {
	if v {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		t.caret = c.SprintFunc()
	} else {
		t.caret = nil
	}
	return t
}

func (t *Tracker) Lines() []Line {
	return t.lines
}

func (t *Tracker) Line(row int) (Line, bool) {
	if row < 1 || row > len(t.lines) {
		return Line{}, false
	}
	return t.lines[row-1], true
}

// Excerpt renders up to ExcerptContext lines before row, the line at
// row and a caret under col.
func (t *Tracker) Excerpt(row, col int) string {
	if row < 1 {
		row = 1
	}
	if row > len(t.lines) {
		row = len(t.lines)
	}
	first := max(1, row-ExcerptContext)
	w := len(strconv.Itoa(row))
	b := &strings.Builder{}
	for r := first; r <= row; r++ {
		fmt.Fprintf(b, "%*d | %s\n", w, r, t.lines[r-1].Text)
	}
	b.WriteString(strings.Repeat(" ", w))
	b.WriteString(" | ")
	b.WriteString(caretPad(t.lines[row-1].Text, col))
	if t.caret != nil {
		b.WriteString(t.caret("^"))
	} else {
		b.WriteByte('^')
	}
	b.WriteByte('\n')
	return b.String()
}

// caretPad returns the padding that places a caret under the col'th rune
// of ln, honouring tabs and wide characters.
func caretPad(ln string, col int) string {
	b := &strings.Builder{}
	i := 1
	for _, r := range ln {
		if i >= col {
			break
		}
		i++
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	if i < col {
		b.WriteString(strings.Repeat(" ", col-i))
	}
	return b.String()
}

type positioned interface {
	Position() Pos
}

// Report writes err to w followed by the source excerpt when err
// carries a position.
func (t *Tracker) Report(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if _, werr := fmt.Fprintf(w, "%s\n", err); werr != nil {
		return werr
	}
	var p positioned
	if !errors.As(err, &p) {
		return nil
	}
	pos := p.Position()
	_, werr := io.WriteString(w, t.Excerpt(pos.Row, pos.Col))
	return werr
}
