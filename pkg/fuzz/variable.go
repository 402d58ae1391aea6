package fuzz

// A Label is a named membership function attached to a Variable.
type Label struct {
	name string
	fn   MembershipFunc
}

func (l *Label) Name() string {
	return l.name
}

// A Variable is a linguistic variable: a named quantity with a bounded
// numeric domain, a set of labeled membership functions, and a mutable
// current input.
type Variable struct {
	name       string
	min        float64
	max        float64
	labels     map[string]*Label
	labelOrder []string
	input      float64
}

func NewVariable(name string, min float64, max float64) *Variable {
	return &Variable{
		name:   name,
		min:    min,
		max:    max,
		labels: map[string]*Label{},
		input:  min,
	}
}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) Min() float64 {
	return v.min
}

func (v *Variable) Max() float64 {
	return v.max
}

// AddLabel attaches a membership function under the given name,
// replacing any previous label with that name.
func (v *Variable) AddLabel(name string, fn MembershipFunc) *Label {
	label := &Label{name: name, fn: fn}
	if _, ok := v.labels[name]; !ok {
		v.labelOrder = append(v.labelOrder, name)
	}
	v.labels[name] = label
	return label
}

// Label resolves a label by name. Resolution is case-sensitive.
func (v *Variable) Label(name string) (*Label, error) {
	label, ok := v.labels[name]
	if !ok {
		return nil, &UnknownLabel{Variable: v.name, Label: name}
	}
	return label, nil
}

// Labels returns the labels in the order they were added.
func (v *Variable) Labels() []*Label {
	labels := make([]*Label, len(v.labelOrder))
	for idx, name := range v.labelOrder {
		labels[idx] = v.labels[name]
	}
	return labels
}

// SetInput updates the variable's current input, clamping it to the
// domain so membership functions only ever see in-domain points.
func (v *Variable) SetInput(x float64) {
	if x < v.min {
		x = v.min
	}
	if x > v.max {
		x = v.max
	}
	v.input = x
}

func (v *Variable) Input() float64 {
	return v.input
}

// Membership evaluates the given label at the variable's current input.
func (v *Variable) Membership(label *Label) float64 {
	return label.fn.Degree(v.input)
}

// A VariableLookup resolves variable names for the rule parser.
// Resolution is case-sensitive.
type VariableLookup interface {
	Lookup(name string) (*Variable, error)
}

// A Database is an in-memory registry of variables by name.
type Database struct {
	vars  map[string]*Variable
	order []string
}

var _ VariableLookup = &Database{}

func NewDatabase() *Database {
	return &Database{
		vars: map[string]*Variable{},
	}
}

func (db *Database) Add(v *Variable) error {
	if _, ok := db.vars[v.name]; ok {
		return &VariableAlreadyExists{Name: v.name}
	}
	db.vars[v.name] = v
	db.order = append(db.order, v.name)
	return nil
}

func (db *Database) Lookup(name string) (*Variable, error) {
	v, ok := db.vars[name]
	if !ok {
		return nil, &UnknownVariable{Name: name}
	}
	return v, nil
}

// Variables returns the variables in the order they were added.
func (db *Database) Variables() []*Variable {
	vars := make([]*Variable, len(db.order))
	for idx, name := range db.order {
		vars[idx] = db.vars[name]
	}
	return vars
}
