package ontology

import (
	"fmt"

	"github.com/pkg/errors"
)

// Pos is a line/column position in parser input, 1-based.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// ParseError reports a syntax error in functional-syntax input, at the
// position the scanner had reached when it gave up.
type ParseError struct {
	Pos     Pos
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

func newParseError(pos Pos, format string, args ...any) error {
	return errors.WithStack(&ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}
