package parser

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cottand/inet/frontend/ast"
)

const namePattern = `[A-Za-z_][A-Za-z0-9_?-]*`

// inetLexer tokenizes modules. Rules are tried in order, so the
// punctuated words come before plain names.
var inetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Dashline", Pattern: `--`},
	{Name: "PortReconnect", Pattern: `-\(` + namePattern + `\)-` + namePattern},
	{Name: "PortPush", Pattern: `\(` + namePattern + `\)-` + namePattern},
	{Name: "Rearrange", Pattern: `\(` + namePattern + `\)\[`},
	{Name: "Close", Pattern: `\]`},
	{Name: "PortName", Pattern: namePattern + `!?:`},
	{Name: "Builtin", Pattern: `@` + namePattern},
	{Name: "Local", Pattern: `\$` + namePattern},
	{Name: "Symbol", Pattern: `'` + namePattern},
	{Name: "Label", Pattern: `:` + namePattern + `!?`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Name", Pattern: namePattern},
	// anything else is reported by splitStatements and dropped by the grammar
	{Name: "Invalid", Pattern: `.`},
})

var (
	symbols      = inetLexer.Symbols()
	nameType     = symbols["Name"]
	dashlineType = symbols["Dashline"]
	invalidType  = symbols["Invalid"]
	elidedTypes  = map[lexer.TokenType]bool{symbols["Whitespace"]: true, symbols["Comment"]: true}
)

var statementKeywords = map[string]bool{
	"type":   true,
	"node":   true,
	"rule":   true,
	"claim":  true,
	"define": true,
	"show":   true,
	"run":    true,
}

// chunk is the source of one statement: from its keyword up to the keyword of the next one.
type chunk struct {
	start, end int
	// keyword is empty for tokens that precede the first statement
	keyword string
	first   lexer.Token
	// lastEnd is the offset right after the last token of the chunk
	lastEnd int
}

// splitStatements cuts data into one chunk per statement, so that a statement
// that fails to parse does not take the ones after it down with it.
// Malformed tokens are reported but do not end their chunk.
func splitStatements(data string) ([]chunk, []error) {
	var (
		chunks []chunk
		errs   []error
		prev   lexer.Token
	)
	lex, err := inetLexer.Lex("", strings.NewReader(data))
	if err != nil {
		return nil, []error{syntaxError(ast.Range{}, err.Error())}
	}
	for {
		t, err := lex.Next()
		if err != nil {
			errs = append(errs, syntaxError(ast.Range{PosStart: token.Pos(len(data)), PosEnd: token.Pos(len(data))}, err.Error()))
			break
		}
		if t.EOF() {
			break
		}
		if elidedTypes[t.Type] {
			continue
		}
		if prev.Type == dashlineType && t.Pos.Offset == prev.Pos.Offset+len(prev.Value) && t.Value != "]" {
			errs = append(errs, syntaxError(tokenRange(prev), "expected whitespace after '--'"))
		}
		prev = t

		if t.Type == invalidType {
			errs = append(errs, syntaxError(tokenRange(t), fmt.Sprintf("unexpected character %q", t.Value)))
			continue
		}
		switch {
		case t.Type == nameType && statementKeywords[t.Value]:
			chunks = append(chunks, chunk{start: t.Pos.Offset, keyword: t.Value, first: t})
		case len(chunks) == 0:
			chunks = append(chunks, chunk{start: t.Pos.Offset, first: t})
		}
		chunks[len(chunks)-1].lastEnd = t.Pos.Offset + len(t.Value)
	}

	for i := range chunks {
		if i+1 < len(chunks) {
			chunks[i].end = chunks[i+1].start
		} else {
			chunks[i].end = len(data)
		}
	}
	return chunks, errs
}

func tokenRange(t lexer.Token) ast.Range {
	return ast.Range{PosStart: token.Pos(t.Pos.Offset), PosEnd: token.Pos(t.Pos.Offset + len(t.Value))}
}
