package decl

import "fmt"

// Location identifies a point in the source the AST was parsed from.
type Location struct {
	Pos  int // Byte offset from the beginning of the input
	Line int // 1-based
	Col  int // 1-based, rune based
}

// Loc is a shorthand for building a Location from a line and column.
func Loc(line, col int) Location {
	return Location{Line: line, Col: col}
}

func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) LineColStr() string {
	if !l.IsValid() {
		return "<unknown>"
	}
	return fmt.Sprintf("Line %d, Col %d", l.Line, l.Col)
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}
