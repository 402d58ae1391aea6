package fuzzql

import "fmt"

type parseError struct {
	error
}

func (e *parseError) Error() string {
	return "parse error: " + e.error.Error()
}

type validationError struct {
	error
}

func (e *validationError) Error() string {
	return "validation error: " + e.error.Error()
}

type noSuchRule struct {
	Name string
}

func (e *noSuchRule) Error() string {
	return fmt.Sprintf("no such rule: %s", e.Name)
}

type ruleAlreadyExists struct {
	Name string
}

func (e *ruleAlreadyExists) Error() string {
	return fmt.Sprintf("rule already exists: %s", e.Name)
}

type badRange struct {
	Min float64
	Max float64
}

func (e *badRange) Error() string {
	return fmt.Sprintf("range minimum %v must be below maximum %v", e.Min, e.Max)
}

type noSuchShape struct {
	Shape string
}

func (e *noSuchShape) Error() string {
	return fmt.Sprintf("no such membership shape: %s", e.Shape)
}

type wrongNumShapeParams struct {
	Shape  string
	Wanted int
	Got    int
}

func (e *wrongNumShapeParams) Error() string {
	return fmt.Sprintf("shape %s takes %d params; given %d", e.Shape, e.Wanted, e.Got)
}

type unorderedShapeParams struct {
	Shape string
}

func (e *unorderedShapeParams) Error() string {
	return fmt.Sprintf("shape %s params must be nondecreasing", e.Shape)
}

type duplicateLabel struct {
	Variable string
	Label    string
}

func (e *duplicateLabel) Error() string {
	return fmt.Sprintf("variable %s defines label %s twice", e.Variable, e.Label)
}

type inputOutOfRange struct {
	Variable string
	Min      float64
	Max      float64
	Value    float64
}

func (e *inputOutOfRange) Error() string {
	return fmt.Sprintf("input %v out of range [%v, %v] for variable %s", e.Value, e.Min, e.Max, e.Variable)
}

type badNumber struct {
	Value string
}

func (e *badNumber) Error() string {
	return fmt.Sprintf("malformed number: %s", e.Value)
}
