package token

import "fmt"

// Pos is a location in a source document.  Row and Col are 1-based and
// Col counts runes; Offset is the byte offset.
type Pos struct {
	Offset int
	Row    int
	Col    int
}

func (p Pos) LineCol() (int, int) {
	return p.Row, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Row, p.Col)
}
