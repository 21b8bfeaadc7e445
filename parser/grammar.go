package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// stmtParser parses the chunk of a single statement.
var stmtParser = participle.MustBuild[stmtSyntax](
	participle.Lexer(inetLexer),
	participle.Elide("Whitespace", "Comment", "Invalid"),
)

type stmtSyntax struct {
	Type   *typeSyntax   `parser:"  @@"`
	Node   *nodeSyntax   `parser:"| @@"`
	Rule   *ruleSyntax   `parser:"| @@"`
	Claim  *claimSyntax  `parser:"| @@"`
	Define *defineSyntax `parser:"| @@"`
	Show   *showSyntax   `parser:"| @@"`
	Run    *runSyntax    `parser:"| @@"`
}

// endSyntax is the closing keyword of a statement, kept for its position.
type endSyntax struct {
	Pos     lexer.Position
	Keyword string `parser:"@\"end\""`
}

type typeSyntax struct {
	Pos   lexer.Position
	Name  string     `parser:"\"type\" @Name"`
	Arity string     `parser:"@Number?"`
	End   *endSyntax `parser:"@@"`
}

type nodeSyntax struct {
	Pos    lexer.Position
	Name   string        `parser:"\"node\" @Name"`
	First  []*portSyntax `parser:"@@*"`
	Dash   bool          `parser:"( @Dashline"`
	Second []*portSyntax `parser:"  @@* )?"`
	End    *endSyntax    `parser:"@@"`
}

type portSyntax struct {
	Pos   lexer.Position
	Name  string        `parser:"@PortName"`
	Words []*wordSyntax `parser:"@@*"`
}

type ruleSyntax struct {
	Pos    lexer.Position
	First  string        `parser:"\"rule\" @Name"`
	Second string        `parser:"@Name"`
	Words  []*wordSyntax `parser:"@@*"`
	End    *endSyntax    `parser:"@@"`
}

type claimSyntax struct {
	Pos    lexer.Position
	Name   string        `parser:"\"claim\" @Name"`
	First  []*wordSyntax `parser:"@@*"`
	Dash   bool          `parser:"( @Dashline"`
	Second []*wordSyntax `parser:"  @@* )?"`
	End    *endSyntax    `parser:"@@"`
}

type defineSyntax struct {
	Pos   lexer.Position
	Name  string        `parser:"\"define\" @Name"`
	Words []*wordSyntax `parser:"@@*"`
	End   *endSyntax    `parser:"@@"`
}

type showSyntax struct {
	Pos   lexer.Position
	Words []*wordSyntax `parser:"\"show\" @@*"`
	End   *endSyntax    `parser:"@@"`
}

type runSyntax struct {
	Pos   lexer.Position
	Words []*wordSyntax `parser:"\"run\" @@*"`
	End   *endSyntax    `parser:"@@"`
}

// wordSyntax holds the raw text of exactly one word, or a rearrangement.
type wordSyntax struct {
	Pos       lexer.Position
	Call      *string          `parser:"  (?! \"end\") @Name"`
	Builtin   *string          `parser:"| @Builtin"`
	Local     *string          `parser:"| @Local"`
	Symbol    *string          `parser:"| @Symbol"`
	Label     *string          `parser:"| @Label"`
	Push      *string          `parser:"| @PortPush"`
	Reconnect *string          `parser:"| @PortReconnect"`
	Rearrange *rearrangeSyntax `parser:"| @@"`
}

type rearrangeSyntax struct {
	Open   string       `parser:"@Rearrange"`
	Input  []string     `parser:"@Name*"`
	Output []string     `parser:"Dashline @Name*"`
	Close  *closeSyntax `parser:"@@"`
}

type closeSyntax struct {
	Pos   lexer.Position
	Value string `parser:"@\"]\""`
}
