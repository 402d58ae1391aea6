// Package fuzz implements linguistic variables and a small language for
// fuzzy inference rules of the form
//
//   IF <variable> is <label> [AND|OR <variable> is <label> ...] THEN <variable> is <label>
//
// A rule's antecedent is compiled once, at construction, into a postfix
// program; evaluating the rule runs the program against pluggable
// AND/OR operators, re-reading variable inputs each time.
package fuzz

// A Rule pairs a compiled antecedent with its consequent clause. It is
// immutable after construction; the variable database and the operators
// are borrowed, not owned.
type Rule struct {
	name    string
	text    string
	program program
	output  *Clause
	and     Norm
	or      CoNorm
}

// NewRule parses ruleText against the given variables, binding the
// default operators (Minimum for AND, Maximum for OR).
func NewRule(vars VariableLookup, name string, ruleText string) (*Rule, error) {
	return NewRuleWithNorms(vars, name, ruleText, Minimum, Maximum)
}

// NewRuleWithNorms is NewRule with custom AND/OR operators.
func NewRuleWithNorms(
	vars VariableLookup, name string, ruleText string, and Norm, or CoNorm,
) (*Rule, error) {
	prog, output, err := parseRule(ruleText, vars)
	if err != nil {
		return nil, err
	}
	return &Rule{
		name:    name,
		text:    ruleText,
		program: prog,
		output:  output,
		and:     and,
		or:      or,
	}, nil
}

func (r *Rule) Name() string {
	return r.name
}

func (r *Rule) Text() string {
	return r.text
}

// FiringStrength evaluates the antecedent against the variables'
// current inputs. The result is in [0, 1].
func (r *Rule) FiringStrength() float64 {
	return r.program.evaluate(r.and, r.or)
}

// Output returns the consequent clause, for downstream aggregation.
func (r *Rule) Output() *Clause {
	return r.output
}

// PostfixString renders the compiled program, tokens joined by ", ".
func (r *Rule) PostfixString() string {
	return r.program.String()
}
