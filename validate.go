package mdtabs

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input")
)

const (
	// Inputs shorter than this are only rejected for NUL bytes.
	minBinarySample = 64
	// Percentage of control characters above which input counts as binary.
	maxControlPct = 2
)

// InputError locates the first byte that makes an input unusable.
type InputError struct {
	Err    error
	Line   int
	Offset int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v at line %d (byte %d)", e.Err, e.Line, e.Offset)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidateInput reports whether src can be parsed as Markdown. It fails with
// an *InputError wrapping ErrInvalidUTF8 or ErrBinaryInput.
func ValidateInput(src []byte) error {
	line, runes, control, firstControl := 1, 0, 0, -1
	for off := 0; off < len(src); {
		r, size := utf8.DecodeRune(src[off:])
		switch {
		case r == utf8.RuneError && size <= 1:
			return &InputError{Err: ErrInvalidUTF8, Line: line, Offset: off}
		case r == 0:
			return &InputError{Err: ErrBinaryInput, Line: line, Offset: off}
		case r == '\n':
			line++
		case isControlRune(r):
			if firstControl < 0 {
				firstControl = off
			}
			control++
		}
		runes++
		off += size
	}
	if runes >= minBinarySample && control*100 >= runes*maxControlPct {
		return &InputError{Err: ErrBinaryInput, Line: lineAt(src, firstControl), Offset: firstControl}
	}
	return nil
}

// Prepare validates src and returns the Markdown to tokenize: line endings
// are normalized to \n so marker and fence lines match, and leading front
// matter is removed.
func Prepare(src []byte) ([]byte, error) {
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	if bytes.IndexByte(src, '\r') >= 0 {
		src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	}
	return StripFrontMatter(src), nil
}

func isControlRune(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r':
		return false
	}
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

func lineAt(src []byte, off int) int {
	return bytes.Count(src[:off], []byte("\n")) + 1
}
