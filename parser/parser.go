package parser

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/internal/log"
)

var logger = log.DefaultLogger.With("section", "parser")

// ParseToAST parses the statements of a module.
//
// A statement that fails to parse is reported and skipped up to the keyword
// of the next statement, so the returned file holds every statement that did parse.
func ParseToAST(data string) (ast.File, *ilerr.Errors) {
	var errs *ilerr.Errors
	chunks, lexErrors := splitStatements(data)
	if len(lexErrors) > 0 {
		errs = errs.With(lexErrors...)
	}

	file := ast.File{Range: ast.Range{PosStart: 0, PosEnd: token.Pos(len(data))}}
	for _, c := range chunks {
		stmt, err := parseChunk(data, c)
		if err != nil {
			errs = errs.With(err)
			continue
		}
		file.Stmts = append(file.Stmts, stmt)
	}
	logger.Debug("parsed module", "statements", len(file.Stmts), "errors", errs)
	return file, errs
}

func parseChunk(data string, c chunk) (ast.Stmt, error) {
	if c.keyword == "" {
		return nil, syntaxError(tokenRange(c.first), fmt.Sprintf("expected a statement, found '%s'", c.first.Value))
	}
	syntax, err := stmtParser.ParseString("", data[c.start:c.end])
	if err != nil {
		return nil, chunkError(c, err)
	}
	return syntax.toStmt(c.start)
}

// chunkError positions err in the whole module. Running out of tokens means
// the statement was never closed.
func chunkError(c chunk, err error) error {
	var parseErr participle.Error
	if !errors.As(err, &parseErr) {
		return syntaxError(ast.Range{PosStart: token.Pos(c.start), PosEnd: token.Pos(c.lastEnd)}, err.Error())
	}
	at := c.start + parseErr.Position().Offset
	if at >= c.lastEnd {
		return syntaxError(ast.Range{PosStart: token.Pos(c.end), PosEnd: token.Pos(c.end)}, fmt.Sprintf("expected 'end' to close %s", c.keyword))
	}
	return syntaxError(ast.Range{PosStart: token.Pos(at), PosEnd: token.Pos(at + 1)}, parseErr.Message())
}

// span is the range of text starting at offset.
func span(offset int, text string) ast.Range {
	return ast.Range{PosStart: token.Pos(offset), PosEnd: token.Pos(offset + len(text))}
}

func (e *endSyntax) end(base int) token.Pos {
	return token.Pos(base + e.Pos.Offset + len(e.Keyword))
}

func (s *stmtSyntax) toStmt(base int) (ast.Stmt, error) {
	switch {
	case s.Type != nil:
		stmt := &ast.TypeStmt{
			Range: ast.Range{PosStart: token.Pos(base + s.Type.Pos.Offset), PosEnd: s.Type.End.end(base)},
			Name:  s.Type.Name,
		}
		if s.Type.Arity != "" {
			arity, err := strconv.Atoi(s.Type.Arity)
			if err != nil {
				return nil, syntaxError(stmt.Range, "invalid arity "+s.Type.Arity)
			}
			stmt.Arity = arity
		}
		return stmt, nil

	case s.Node != nil:
		stmt := &ast.NodeStmt{
			Range:  ast.Range{PosStart: token.Pos(base + s.Node.Pos.Offset), PosEnd: s.Node.End.end(base)},
			Name:   s.Node.Name,
			Output: portDecls(s.Node.First, base),
		}
		if s.Node.Dash {
			stmt.Input, stmt.Output = stmt.Output, portDecls(s.Node.Second, base)
		}
		return stmt, nil

	case s.Rule != nil:
		return &ast.RuleStmt{
			Range:  ast.Range{PosStart: token.Pos(base + s.Rule.Pos.Offset), PosEnd: s.Rule.End.end(base)},
			First:  s.Rule.First,
			Second: s.Rule.Second,
			Words:  words(s.Rule.Words, base),
		}, nil

	case s.Claim != nil:
		stmt := &ast.ClaimStmt{
			Range:  ast.Range{PosStart: token.Pos(base + s.Claim.Pos.Offset), PosEnd: s.Claim.End.end(base)},
			Name:   s.Claim.Name,
			Output: words(s.Claim.First, base),
		}
		if s.Claim.Dash {
			stmt.Input, stmt.Output = stmt.Output, words(s.Claim.Second, base)
		}
		return stmt, nil

	case s.Define != nil:
		return &ast.DefineStmt{
			Range: ast.Range{PosStart: token.Pos(base + s.Define.Pos.Offset), PosEnd: s.Define.End.end(base)},
			Name:  s.Define.Name,
			Words: words(s.Define.Words, base),
		}, nil

	case s.Show != nil:
		return &ast.ShowStmt{
			Range: ast.Range{PosStart: token.Pos(base + s.Show.Pos.Offset), PosEnd: s.Show.End.end(base)},
			Words: words(s.Show.Words, base),
		}, nil

	case s.Run != nil:
		return &ast.RunStmt{
			Range: ast.Range{PosStart: token.Pos(base + s.Run.Pos.Offset), PosEnd: s.Run.End.end(base)},
			Words: words(s.Run.Words, base),
		}, nil

	default:
		return nil, fmt.Errorf("empty statement at offset %d", base)
	}
}

func portDecls(ports []*portSyntax, base int) []ast.PortDecl {
	decls := make([]ast.PortDecl, 0, len(ports))
	for _, port := range ports {
		name := strings.TrimSuffix(port.Name, ":")
		decl := ast.PortDecl{
			Range:       span(base+port.Pos.Offset, port.Name),
			Name:        strings.TrimSuffix(name, "!"),
			IsPrincipal: strings.HasSuffix(name, "!"),
			T:           words(port.Words, base),
		}
		if len(decl.T) > 0 {
			decl.Range = ast.RangeBetween(decl.Range, decl.T[len(decl.T)-1])
		}
		decls = append(decls, decl)
	}
	return decls
}

func words(syntax []*wordSyntax, base int) []ast.Word {
	converted := make([]ast.Word, 0, len(syntax))
	for _, w := range syntax {
		converted = append(converted, w.toWord(base+w.Pos.Offset))
	}
	return converted
}

// toWord converts w, which starts at offset in the module.
func (w *wordSyntax) toWord(offset int) ast.Word {
	switch {
	case w.Call != nil:
		return &ast.Call{Range: span(offset, *w.Call), Name: *w.Call}
	case w.Builtin != nil:
		return &ast.Builtin{Range: span(offset, *w.Builtin), Name: (*w.Builtin)[1:]}
	case w.Local != nil:
		return &ast.Local{Range: span(offset, *w.Local), Name: (*w.Local)[1:]}
	case w.Symbol != nil:
		return &ast.GenerateSymbol{Range: span(offset, *w.Symbol), Name: (*w.Symbol)[1:]}
	case w.Label != nil:
		label := (*w.Label)[1:]
		return &ast.Label{
			Range:       span(offset, *w.Label),
			Label:       strings.TrimSuffix(label, "!"),
			IsImportant: strings.HasSuffix(label, "!"),
		}
	case w.Push != nil:
		node, port := splitPortWord(strings.TrimPrefix(*w.Push, "("))
		return &ast.PortPush{Range: span(offset, *w.Push), NodeName: node, PortName: port}
	case w.Reconnect != nil:
		node, port := splitPortWord(strings.TrimPrefix(*w.Reconnect, "-("))
		return &ast.PortReconnect{Range: span(offset, *w.Reconnect), NodeName: node, PortName: port}
	default:
		r := w.Rearrange
		return &ast.NodeRearrange{
			Range:  ast.Range{PosStart: token.Pos(offset), PosEnd: token.Pos(offset - w.Pos.Offset + r.Close.Pos.Offset + len(r.Close.Value))},
			Name:   strings.TrimSuffix(strings.TrimPrefix(r.Open, "("), ")["),
			Input:  r.Input,
			Output: r.Output,
		}
	}
}

// splitPortWord splits 'node)-port', what is left of a port word after its opening parenthesis.
func splitPortWord(text string) (node, port string) {
	node, port, _ = strings.Cut(text, ")-")
	return node, port
}
