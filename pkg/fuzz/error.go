package fuzz

import "fmt"

// Parse failures are reported at rule construction time as one of the
// typed errors below; a failed construction never yields a usable Rule.

type MissingIf struct{}

func (e *MissingIf) Error() string {
	return "rule must start with IF"
}

type MissingThen struct{}

func (e *MissingThen) Error() string {
	return "rule must contain THEN"
}

type UnknownVariable struct {
	Name string
}

func (e *UnknownVariable) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.Name)
}

type UnknownLabel struct {
	Variable string
	Label    string
}

func (e *UnknownLabel) Error() string {
	return fmt.Sprintf("variable %s has no label %s", e.Variable, e.Label)
}

type UnbalancedParenthesis struct{}

func (e *UnbalancedParenthesis) Error() string {
	return "unbalanced parenthesis"
}

type ConsequentMustBeVariable struct{}

func (e *ConsequentMustBeVariable) Error() string {
	return "consequent must be a single `variable is label` clause"
}

type ConsequentMustBeSingleClause struct{}

func (e *ConsequentMustBeSingleClause) Error() string {
	return "consequent must consist of exactly one clause"
}

type EmptyAntecedent struct{}

func (e *EmptyAntecedent) Error() string {
	return "rule has no antecedent"
}

type MissingConsequent struct{}

func (e *MissingConsequent) Error() string {
	return "rule has no consequent"
}

type UnexpectedToken struct {
	Token    string
	Expected string
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %q; expected %s", e.Token, e.Expected)
}

type VariableAlreadyExists struct {
	Name string
}

func (e *VariableAlreadyExists) Error() string {
	return fmt.Sprintf("variable already exists: %s", e.Name)
}
