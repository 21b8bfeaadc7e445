package ilerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/inet/frontend/ast"
	"github.com/pkg/errors"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
var enableDebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse

	// wiring
	AlreadyConnected
	SignMismatch
	NoConnection
	PortNotFound
	NodeNotFound
	UnsplicedPort

	// stack discipline
	EmptyStack
	TopNotPort
	ExtraOrMissingArity
	NotAType

	// name resolution
	UndefinedName
	UndefinedBuiltin
	AlreadyDefined
	MissingClaim
	PrincipalCount

	// types
	TypeMismatch
	OccursCheckFailure

	// linearity
	UnusedLocal

	// reduction
	NoRuleFor
	StepLimitExceeded
)

var codeNames = map[ErrCode]string{
	None:                "None",
	Parse:               "Parse",
	AlreadyConnected:    "AlreadyConnected",
	SignMismatch:        "SignMismatch",
	NoConnection:        "NoConnection",
	PortNotFound:        "PortNotFound",
	NodeNotFound:        "NodeNotFound",
	UnsplicedPort:       "UnsplicedPort",
	EmptyStack:          "EmptyStack",
	TopNotPort:          "TopNotPort",
	ExtraOrMissingArity: "ExtraOrMissingArity",
	NotAType:            "NotAType",
	UndefinedName:       "UndefinedName",
	UndefinedBuiltin:    "UndefinedBuiltin",
	AlreadyDefined:      "AlreadyDefined",
	MissingClaim:        "MissingClaim",
	PrincipalCount:      "PrincipalCount",
	TypeMismatch:        "TypeMismatch",
	OccursCheckFailure:  "OccursCheckFailure",
	UnusedLocal:         "UnusedLocal",
	NoRuleFor:           "NoRuleFor",
	StepLimitExceeded:   "StepLimitExceeded",
}

func (c ErrCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrCode(%d)", int(c))
}

// InetError is a classified failure. Every error produced by the frontend
// is, or wraps, an InetError.
type InetError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) InetError
	getStack() []byte
}

// New records the stack of the caller on err.
func New[E InetError](err E) InetError {
	return err.withStack(debug.Stack())
}

// KindOf returns the code of the innermost InetError in err's chain,
// or None if there is none.
func KindOf(err error) ErrCode {
	var classified InetError
	if errors.As(errors.Cause(err), &classified) {
		return classified.Code()
	}
	if errors.As(err, &classified) {
		return classified.Code()
	}
	return None
}

// Is reports whether err is classified as code.
func Is(err error, code ErrCode) bool {
	return err != nil && KindOf(err) == code
}

func FormatWithCode(err error) string {
	var e InetError
	if !errors.As(errors.Cause(err), &e) {
		return fmt.Sprintf("(E%03d) %s", None, err.Error())
	}
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), err.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), err.Error())
}

type NewParse struct {
	ast.Positioner
	ParserMessage string
	stack         []byte
}

func (e NewParse) Error() string    { return e.ParserMessage }
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewAlreadyConnected struct {
	First  string
	Second string
	// Which is the port that was already connected
	Which string
	stack []byte
}

func (e NewAlreadyConnected) Error() string {
	return fmt.Sprintf("cannot connect %s to %s: port %s is already connected", e.First, e.Second, e.Which)
}
func (e NewAlreadyConnected) Code() ErrCode    { return AlreadyConnected }
func (e NewAlreadyConnected) getStack() []byte { return e.stack }
func (e NewAlreadyConnected) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewSignMismatch struct {
	First  string
	Second string
	Sign   string
	stack  []byte
}

func (e NewSignMismatch) Error() string {
	return fmt.Sprintf("cannot connect %s to %s: both ports are %s ports", e.First, e.Second, e.Sign)
}
func (e NewSignMismatch) Code() ErrCode    { return SignMismatch }
func (e NewSignMismatch) getStack() []byte { return e.stack }
func (e NewSignMismatch) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewNoConnection struct {
	Port  string
	stack []byte
}

func (e NewNoConnection) Error() string {
	return fmt.Sprintf("port %s has no connection", e.Port)
}
func (e NewNoConnection) Code() ErrCode    { return NoConnection }
func (e NewNoConnection) getStack() []byte { return e.stack }
func (e NewNoConnection) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewPortNotFound struct {
	NodeName string
	PortName string
	stack    []byte
}

func (e NewPortNotFound) Error() string {
	return fmt.Sprintf("node '%s' has no port '%s'", e.NodeName, e.PortName)
}
func (e NewPortNotFound) Code() ErrCode    { return PortNotFound }
func (e NewPortNotFound) getStack() []byte { return e.stack }
func (e NewPortNotFound) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewNodeNotFound struct {
	ID    int
	stack []byte
}

func (e NewNodeNotFound) Error() string {
	return fmt.Sprintf("node #%d is not present in the net", e.ID)
}
func (e NewNodeNotFound) Code() ErrCode    { return NodeNotFound }
func (e NewNodeNotFound) getStack() []byte { return e.stack }
func (e NewNodeNotFound) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewUnsplicedPort struct {
	Port  string
	Rule  string
	stack []byte
}

func (e NewUnsplicedPort) Error() string {
	return fmt.Sprintf("rule %s left port %s connected", e.Rule, e.Port)
}
func (e NewUnsplicedPort) Code() ErrCode    { return UnsplicedPort }
func (e NewUnsplicedPort) getStack() []byte { return e.stack }
func (e NewUnsplicedPort) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewEmptyStack struct {
	// Expected describes what was to be popped
	Expected string
	stack    []byte
}

func (e NewEmptyStack) Error() string {
	return fmt.Sprintf("expected %s on the top of the stack, but the stack is empty", e.Expected)
}
func (e NewEmptyStack) Code() ErrCode    { return EmptyStack }
func (e NewEmptyStack) getStack() []byte { return e.stack }
func (e NewEmptyStack) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewTopNotPort struct {
	Found string
	stack []byte
}

func (e NewTopNotPort) Error() string {
	return fmt.Sprintf("expected a port on the top of the stack, but found %s", e.Found)
}
func (e NewTopNotPort) Code() ErrCode    { return TopNotPort }
func (e NewTopNotPort) getStack() []byte { return e.stack }
func (e NewTopNotPort) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewExtraOrMissingArity struct {
	Message string
	Stack   []string
	stack   []byte
}

func (e NewExtraOrMissingArity) Error() string {
	if len(e.Stack) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s\n  stack: [%s]\n  maybe this is due to extra input arity, or lack of output arity",
		e.Message, strings.Join(e.Stack, ", "))
}
func (e NewExtraOrMissingArity) Code() ErrCode    { return ExtraOrMissingArity }
func (e NewExtraOrMissingArity) getStack() []byte { return e.stack }
func (e NewExtraOrMissingArity) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewNotAType struct {
	Found string
	stack []byte
}

func (e NewNotAType) Error() string {
	return fmt.Sprintf("expected a type, but found %s", e.Found)
}
func (e NewNotAType) Code() ErrCode    { return NotAType }
func (e NewNotAType) getStack() []byte { return e.stack }
func (e NewNotAType) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewUndefinedName struct {
	Name string
	// As is what Name was expected to be defined as, if anything in particular
	As    string
	stack []byte
}

func (e NewUndefinedName) Error() string {
	if e.As != "" {
		return fmt.Sprintf("'%s' is not defined as %s", e.Name, e.As)
	}
	return fmt.Sprintf("'%s' is not defined", e.Name)
}
func (e NewUndefinedName) Code() ErrCode    { return UndefinedName }
func (e NewUndefinedName) getStack() []byte { return e.stack }
func (e NewUndefinedName) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewUndefinedBuiltin struct {
	Name  string
	stack []byte
}

func (e NewUndefinedBuiltin) Error() string {
	return fmt.Sprintf("builtin '@%s' is not defined", e.Name)
}
func (e NewUndefinedBuiltin) Code() ErrCode    { return UndefinedBuiltin }
func (e NewUndefinedBuiltin) getStack() []byte { return e.stack }
func (e NewUndefinedBuiltin) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewAlreadyDefined struct {
	Name  string
	stack []byte
}

func (e NewAlreadyDefined) Error() string {
	return fmt.Sprintf("'%s' is already defined", e.Name)
}
func (e NewAlreadyDefined) Code() ErrCode    { return AlreadyDefined }
func (e NewAlreadyDefined) getStack() []byte { return e.stack }
func (e NewAlreadyDefined) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewMissingClaim struct {
	Name  string
	stack []byte
}

func (e NewMissingClaim) Error() string {
	return fmt.Sprintf("'%s' is defined without a preceding claim", e.Name)
}
func (e NewMissingClaim) Code() ErrCode    { return MissingClaim }
func (e NewMissingClaim) getStack() []byte { return e.stack }
func (e NewMissingClaim) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewPrincipalCount struct {
	Node  string
	Count int
	stack []byte
}

func (e NewPrincipalCount) Error() string {
	return fmt.Sprintf("node '%s' must have exactly one principal port, but has %d", e.Node, e.Count)
}
func (e NewPrincipalCount) Code() ErrCode    { return PrincipalCount }
func (e NewPrincipalCount) getStack() []byte { return e.stack }
func (e NewPrincipalCount) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	First  string
	Second string
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected type '%s', but found a different type '%s'", e.First, e.Second)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewOccursCheckFailure struct {
	Var   string
	Type  string
	stack []byte
}

func (e NewOccursCheckFailure) Error() string {
	return fmt.Sprintf("type variable '%s' occurs in '%s', which would make an infinite type", e.Var, e.Type)
}
func (e NewOccursCheckFailure) Code() ErrCode    { return OccursCheckFailure }
func (e NewOccursCheckFailure) getStack() []byte { return e.stack }
func (e NewOccursCheckFailure) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewUnusedLocal struct {
	Names []string
	stack []byte
}

func (e NewUnusedLocal) Error() string {
	return fmt.Sprintf("unused local: %s (every local must be used exactly once)", strings.Join(e.Names, ", "))
}
func (e NewUnusedLocal) Code() ErrCode    { return UnusedLocal }
func (e NewUnusedLocal) getStack() []byte { return e.stack }
func (e NewUnusedLocal) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewNoRuleFor struct {
	First  string
	Second string
	stack  []byte
}

func (e NewNoRuleFor) Error() string {
	return fmt.Sprintf("no rule for active pair (%s, %s)", e.First, e.Second)
}
func (e NewNoRuleFor) Code() ErrCode    { return NoRuleFor }
func (e NewNoRuleFor) getStack() []byte { return e.stack }
func (e NewNoRuleFor) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}

type NewStepLimitExceeded struct {
	Limit int
	stack []byte
}

func (e NewStepLimitExceeded) Error() string {
	return fmt.Sprintf("reduction did not reach normal form within %d steps", e.Limit)
}
func (e NewStepLimitExceeded) Code() ErrCode    { return StepLimitExceeded }
func (e NewStepLimitExceeded) getStack() []byte { return e.stack }
func (e NewStepLimitExceeded) withStack(stack []byte) InetError {
	e.stack = stack
	return e
}
