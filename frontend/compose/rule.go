package compose

import (
	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/graph"
)

// RuleKey identifies the unordered pair of node names a rule applies to.
type RuleKey struct {
	A, B string
}

func NewRuleKey(first, second string) RuleKey {
	if second < first {
		first, second = second, first
	}
	return RuleKey{A: first, B: second}
}

// Rule rewrites an active pair of a First and a Second node. Its words run with
// the two nodes as the current nodes, and must reconnect every auxiliary port
// of both nodes before they are removed.
type Rule struct {
	ast.Range
	First  string
	Second string
	Words  []ast.Word
}

func (r *Rule) Key() RuleKey { return NewRuleKey(r.First, r.Second) }

func (r *Rule) String() string { return r.First + " " + r.Second }

// current orders a and b the way the rule declares its nodes.
func (r *Rule) current(a, b *graph.Node) *Current {
	if a.Name == r.First {
		return &Current{First: a, Second: b}
	}
	return &Current{First: b, Second: a}
}
