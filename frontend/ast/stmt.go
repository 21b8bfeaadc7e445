package ast

// Stmt is a top-level statement of a module.
type Stmt interface {
	Positioner
	stmtNode()
}

// File is a parsed module.
type File struct {
	Range
	Stmts []Stmt
}

// TypeStmt declares a type constructor taking Arity type arguments.
type TypeStmt struct {
	Range
	Name  string
	Arity int
}

// PortDecl declares one port of a node, with the words producing its type.
type PortDecl struct {
	Range
	Name        string
	IsPrincipal bool
	T           []Word
}

// NodeStmt declares an agent: ports before '--' receive values, ports after it offer them.
type NodeStmt struct {
	Range
	Name   string
	Input  []PortDecl
	Output []PortDecl
}

// RuleStmt declares how an active pair of First and Second nodes is rewritten.
type RuleStmt struct {
	Range
	First  string
	Second string
	Words  []Word
}

// ClaimStmt declares the signature a later DefineStmt of the same name must satisfy.
type ClaimStmt struct {
	Range
	Name   string
	Input  []Word
	Output []Word
}

// DefineStmt defines a named word sequence.
type DefineStmt struct {
	Range
	Name  string
	Words []Word
}

// ShowStmt composes words and prints the resulting values.
type ShowStmt struct {
	Range
	Words []Word
}

// RunStmt composes words, reduces the net to normal form and prints the resulting values.
type RunStmt struct {
	Range
	Words []Word
}

func (*TypeStmt) stmtNode()   {}
func (*NodeStmt) stmtNode()   {}
func (*RuleStmt) stmtNode()   {}
func (*ClaimStmt) stmtNode()  {}
func (*DefineStmt) stmtNode() {}
func (*ShowStmt) stmtNode()   {}
func (*RunStmt) stmtNode()    {}

// StmtKind returns the keyword introducing s.
func StmtKind(s Stmt) string {
	switch s.(type) {
	case *TypeStmt:
		return "type"
	case *NodeStmt:
		return "node"
	case *RuleStmt:
		return "rule"
	case *ClaimStmt:
		return "claim"
	case *DefineStmt:
		return "define"
	case *ShowStmt:
		return "show"
	case *RunStmt:
		return "run"
	default:
		return "unknown"
	}
}
