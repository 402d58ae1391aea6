package fuzz

import "strings"

// A postfixToken is one element of a parsed rule program: either an
// operand (a clause) or an operator (AND / OR). The parser guarantees
// the token sequence is runnable, so exec never underflows the stack.
type postfixToken interface {
	exec(stack *valueStack, and Norm, or CoNorm)
	String() string
}

type operandToken struct {
	clause *Clause
}

var _ postfixToken = &operandToken{}

func (t *operandToken) exec(stack *valueStack, _ Norm, _ CoNorm) {
	stack.push(t.clause.Evaluate())
}

func (t *operandToken) String() string {
	return t.clause.String()
}

type operator int

const (
	opAnd operator = iota
	opOr
)

type operatorToken struct {
	op operator
}

var _ postfixToken = &operatorToken{}

func (t *operatorToken) exec(stack *valueStack, and Norm, or CoNorm) {
	// Last pushed is the right operand.
	y := stack.pop()
	x := stack.pop()
	if t.op == opAnd {
		stack.push(and.Evaluate(x, y))
	} else {
		stack.push(or.Evaluate(x, y))
	}
}

func (t *operatorToken) String() string {
	if t.op == opAnd {
		return "AND"
	}
	return "OR"
}

// A program is an antecedent in postfix order.
type program []postfixToken

func (p program) String() string {
	strs := make([]string, len(p))
	for idx, tok := range p {
		strs[idx] = tok.String()
	}
	return strings.Join(strs, ", ")
}
