package ilerr

import (
	"fmt"

	"github.com/cottand/inet/frontend/ast"
)

// WordFailure is the context frame added for each word whose composition failed.
// Frames nest when a failing word was inlined from a definition.
type WordFailure struct {
	ast.Range
	// Word is the failing word, as written in the source
	Word string
	// Text is the source text Range points into
	Text  string
	cause error
}

// WrapWord returns err with a WordFailure frame for word.
func WrapWord(err error, word ast.Word, text string) error {
	if err == nil {
		return nil
	}
	return &WordFailure{
		Range: ast.RangeOf(word),
		Word:  ast.FormatWord(word),
		Text:  text,
		cause: err,
	}
}

func (e *WordFailure) Error() string {
	return fmt.Sprintf("failed to compose word '%s': %v", e.Word, e.cause)
}

// Cause allows github.com/pkg/errors.Cause to reach the classified error.
func (e *WordFailure) Cause() error { return e.cause }

func (e *WordFailure) Unwrap() error { return e.cause }
