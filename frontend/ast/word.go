package ast

import (
	"fmt"
	"strings"
)

// Word is a single instruction of the compose engine.
//
// A sequence of words builds a net and a stack of values when composed,
// and the same sequence is type checked by composing it in checking mode.
type Word interface {
	Positioner
	wordNode()
}

// Call pushes a local (consuming its binding) or inlines a definition.
type Call struct {
	Range
	Name string
}

// Builtin inlines a definition from the builtin table.
type Builtin struct {
	Range
	Name string
}

// Local pops the top value and binds it to Name.
type Local struct {
	Range
	Name string
}

// PortPush disconnects a port of one of the two nodes of the active pair
// and pushes the port it used to be connected to.
type PortPush struct {
	Range
	NodeName string
	PortName string
}

// PortReconnect disconnects a port of one of the two nodes of the active pair
// and connects the port on top of the stack to the freed peer.
type PortReconnect struct {
	Range
	NodeName string
	PortName string
}

// GenerateSymbol pushes a fresh Symbol.
type GenerateSymbol struct {
	Range
	Name string
}

// Label wraps the top value with a presentational label.
type Label struct {
	Range
	Label       string
	IsImportant bool
}

// NodeRearrange instantiates a node, connecting the Input ports from the stack
// and pushing the Output ports, in the given orders.
type NodeRearrange struct {
	Range
	Name   string
	Input  []string
	Output []string
}

func (*Call) wordNode()           {}
func (*Builtin) wordNode()        {}
func (*Local) wordNode()          {}
func (*PortPush) wordNode()       {}
func (*PortReconnect) wordNode()  {}
func (*GenerateSymbol) wordNode() {}
func (*Label) wordNode()          {}
func (*NodeRearrange) wordNode()  {}

// FormatWord renders w in the syntax it was parsed from.
func FormatWord(w Word) string {
	switch w := w.(type) {
	case *Call:
		return w.Name
	case *Builtin:
		return "@" + w.Name
	case *Local:
		return "$" + w.Name
	case *PortPush:
		return fmt.Sprintf("(%s)-%s", w.NodeName, w.PortName)
	case *PortReconnect:
		return fmt.Sprintf("-(%s)-%s", w.NodeName, w.PortName)
	case *GenerateSymbol:
		return "'" + w.Name
	case *Label:
		if w.IsImportant {
			return ":" + w.Label + "!"
		}
		return ":" + w.Label
	case *NodeRearrange:
		return fmt.Sprintf("(%s)[%s]", w.Name, formatSides(w.Input, w.Output))
	default:
		return fmt.Sprintf("<unknown word %T>", w)
	}
}

// FormatWords renders words separated by spaces.
func FormatWords(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, FormatWord(w))
	}
	return strings.Join(parts, " ")
}

func formatSides(input, output []string) string {
	sb := &strings.Builder{}
	for _, name := range input {
		sb.WriteString(name)
		sb.WriteString(" ")
	}
	sb.WriteString("--")
	for _, name := range output {
		sb.WriteString(" ")
		sb.WriteString(name)
	}
	return sb.String()
}
