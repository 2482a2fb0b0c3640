// Package dotpath compiles path commands such as "a.b.0.c" which address
// nested locations of a document.
//
// A command is a sequence of segments separated by '.'.  Each segment
// consists of one or more of the characters [A-Za-z0-9_] and names either
// an object key or an array position.
package dotpath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCommand = errors.New("invalid path command")

// CommandError reports the byte offset of the first invalid character of
// a command.
type CommandError struct {
	Command string
	Offset  int
	Msg     string
}

func (e *CommandError) Unwrap() error {
	return ErrCommand
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s", ErrCommand, e.Command, e.Offset, e.Msg)
}

// Path is one segment of a compiled command.
type Path struct {
	Seg  string
	Next *Path
}

// Compile parses cmd into a linked list of segments.
func Compile(cmd string) (*Path, error) {
	if cmd == "" {
		return nil, &CommandError{Command: cmd, Msg: "empty command"}
	}
	var head, tail *Path
	start := 0
	for i := 0; i <= len(cmd); i++ {
		if i < len(cmd) && segChar(cmd[i]) {
			continue
		}
		if i < len(cmd) && cmd[i] != '.' {
			return nil, &CommandError{Command: cmd, Offset: i, Msg: fmt.Sprintf("invalid character %q", cmd[i])}
		}
		if i == start {
			return nil, &CommandError{Command: cmd, Offset: i, Msg: "empty segment"}
		}
		p := &Path{Seg: cmd[start:i]}
		if head == nil {
			head = p
		} else {
			tail.Next = p
		}
		tail = p
		start = i + 1
	}
	return head, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(cmd string) *Path {
	p, err := Compile(cmd)
	if err != nil {
		panic(err)
	}
	return p
}

func segChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return c == '_'
}

func (p *Path) String() string {
	return strings.Join(p.Segments(), ".")
}

func (p *Path) Segments() []string {
	var res []string
	for x := p; x != nil; x = x.Next {
		res = append(res, x.Seg)
	}
	return res
}

func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the final segment of p.
func (p *Path) Last() *Path {
	if p == nil {
		return nil
	}
	for p.Next != nil {
		p = p.Next
	}
	return p
}
