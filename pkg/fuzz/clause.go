package fuzz

// A Clause is the atomic operand of a rule: the pairing
// `<variable> is <label>`. It holds no state of its own; every
// evaluation re-reads the variable's live input.
type Clause struct {
	variable *Variable
	label    *Label
}

func (c *Clause) Variable() *Variable {
	return c.variable
}

func (c *Clause) Label() *Label {
	return c.label
}

// Evaluate returns the membership degree of the clause's label at the
// variable's current input.
func (c *Clause) Evaluate() float64 {
	return c.variable.Membership(c.label)
}

// Equal reports whether both clauses pair the same variable with the
// same label.
func (c *Clause) Equal(other *Clause) bool {
	return c.variable == other.variable && c.label == other.label
}

func (c *Clause) String() string {
	return c.variable.Name() + " is " + c.label.Name()
}
