package parser

import (
	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/ilerr"
)

func syntaxError(at ast.Range, msg string) error {
	return ilerr.New(ilerr.NewParse{
		Positioner:    at,
		ParserMessage: msg,
	})
}
