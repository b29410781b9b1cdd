package jbind

import (
	"bytes"
	"fmt"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%v-%v", loc.First, loc.Last)
}

// Locate returns the line and column of offset pos in data. Offsets past the
// end of data are clamped to the end.
func Locate(data []byte, pos int) LineCol {
	pos = min(max(pos, 0), len(data))
	head := data[:pos]
	line := bytes.Count(head, []byte{'\n'})
	col := pos - (bytes.LastIndexByte(head, '\n') + 1)
	return LineCol{Line: line + 1, Column: col}
}

// LocateSpan returns the complete location of span in data.
func LocateSpan(data []byte, span Span) Location {
	return Location{
		Span:  span,
		First: Locate(data, span.Pos),
		Last:  Locate(data, span.End),
	}
}
