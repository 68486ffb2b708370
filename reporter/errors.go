package reporter

import (
	"errors"
	"fmt"

	"github.com/linkgrammar/tokenizer/source"
)

// ErrInvalidSource is a sentinel error returned by the sentence driver when
// syntax errors were encountered but the configured Reporter always
// returned nil for them.
var ErrInvalidSource = errors.New("tokenize: invalid sentence input")

// ErrorWithPos is an error about the sentence being tokenized that includes
// the position in the input that caused it.
//
// The value of Error() contains both the position and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Pos
	Unwrap() error
}

func Error(pos source.Pos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

func Errorf(pos source.Pos, format string, args ...interface{}) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// errorWithSourcePos is an error about the sentence being tokenized that
// includes information about the location that caused the error.
//
// Calling code that wants to examine an error's location should look for
// the ErrorWithPos interface rather than this concrete type, since other
// kinds of errors can implement it too.
type errorWithSourcePos struct {
	underlying error
	pos        source.Pos
}

func (e errorWithSourcePos) Error() string {
	sourcePos := e.GetPosition()
	return fmt.Sprintf("%s: %v", sourcePos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// the sentence that caused the error.
func (e errorWithSourcePos) GetPosition() source.Pos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
