package fuzz

// A MembershipFunc maps a point in a variable's domain to a truth
// degree in [0, 1].
type MembershipFunc interface {
	Degree(x float64) float64
}

type triangle struct {
	a, b, c float64
}

// Triangle returns a triangular membership function: zero outside
// [a, c], peaking at b.
func Triangle(a, b, c float64) MembershipFunc {
	return &triangle{a: a, b: b, c: c}
}

func (t *triangle) Degree(x float64) float64 {
	if x < t.a || x > t.c {
		return 0
	}
	if x < t.b {
		return rise(x, t.a, t.b)
	}
	if x == t.b {
		return 1
	}
	return fall(x, t.b, t.c)
}

type trapezoid struct {
	a, b, c, d float64
}

// Trapezoid returns a trapezoidal membership function: zero outside
// [a, d], one on [b, c].
func Trapezoid(a, b, c, d float64) MembershipFunc {
	return &trapezoid{a: a, b: b, c: c, d: d}
}

func (t *trapezoid) Degree(x float64) float64 {
	if x < t.a || x > t.d {
		return 0
	}
	if x < t.b {
		return rise(x, t.a, t.b)
	}
	if x <= t.c {
		return 1
	}
	return fall(x, t.c, t.d)
}

type rising struct {
	a, b float64
}

// Rising returns a ramp from zero at a to one at b.
func Rising(a, b float64) MembershipFunc {
	return &rising{a: a, b: b}
}

func (r *rising) Degree(x float64) float64 {
	if x <= r.a {
		return 0
	}
	if x >= r.b {
		return 1
	}
	return rise(x, r.a, r.b)
}

type falling struct {
	a, b float64
}

// Falling returns a ramp from one at a to zero at b.
func Falling(a, b float64) MembershipFunc {
	return &falling{a: a, b: b}
}

func (f *falling) Degree(x float64) float64 {
	if x <= f.a {
		return 1
	}
	if x >= f.b {
		return 0
	}
	return fall(x, f.a, f.b)
}

// rise interpolates on the edge from (a, 0) to (b, 1).
// A zero-width edge is a step.
func rise(x, a, b float64) float64 {
	if b == a {
		return 1
	}
	return (x - a) / (b - a)
}

// fall interpolates on the edge from (a, 1) to (b, 0).
func fall(x, a, b float64) float64 {
	if b == a {
		return 1
	}
	return (b - x) / (b - a)
}
