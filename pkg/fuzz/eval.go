package fuzz

type valueStack []float64

func (s *valueStack) push(v float64) {
	*s = append(*s, v)
}

func (s *valueStack) pop() float64 {
	if len(*s) == 0 {
		// Only reachable with a malformed program, which the parser
		// never produces.
		panic("fuzz: value stack underflow")
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

// evaluate runs the program against the given operators and returns the
// single value left on the stack: the antecedent's truth degree.
func (p program) evaluate(and Norm, or CoNorm) float64 {
	stack := make(valueStack, 0, len(p))
	for _, tok := range p {
		tok.exec(&stack, and, or)
	}
	return stack.pop()
}
