package fuzz

import "strings"

// Keywords are fixed, case-insensitive ASCII tokens. Variable and label
// names keep their original case for lookup.

// Precedence for the operator stack. Parentheses fall through to zero
// so the strict `>` comparison never pops past an opening paren.
var precedence = map[string]int{
	"or":  1,
	"and": 2,
}

// parser state: what the next meaningful token has to be.
type parserState int

const (
	expectVariable parserState = iota
	expectIs
	expectLabel
	expectOperator
)

// tokenize pads parentheses with whitespace and splits on whitespace.
func tokenize(text string) []string {
	padded := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(text)
	return strings.Fields(padded)
}

// parseRule converts rule text of the form
//
//   IF <antecedent> THEN <variable> is <label>
//
// into a postfix program for the antecedent plus the consequent clause,
// via shunting-yard. Variable and label names are resolved eagerly
// against the given lookup, so a successfully parsed rule can always be
// evaluated.
func parseRule(text string, vars VariableLookup) (program, *Clause, error) {
	toks := tokenize(text)

	if len(toks) == 0 || strings.ToLower(toks[0]) != "if" {
		return nil, nil, &MissingIf{}
	}
	hasThen := false
	depth := 0
	for _, tok := range toks[1:] {
		switch strings.ToLower(tok) {
		case "then":
			hasThen = true
		case "(":
			depth++
		case ")":
			depth--
			if depth < 0 {
				return nil, nil, &UnbalancedParenthesis{}
			}
		}
	}
	if !hasThen {
		return nil, nil, &MissingThen{}
	}
	if depth != 0 {
		return nil, nil, &UnbalancedParenthesis{}
	}

	state := expectVariable
	inConsequent := false
	var opStack []string
	var out program
	var pendingVar *Variable
	var output *Clause

	for _, tok := range toks[1:] {
		switch lowered := strings.ToLower(tok); lowered {
		case "if":
			return nil, nil, &UnexpectedToken{Token: tok, Expected: "IF only at the start of a rule"}

		case "then":
			if inConsequent {
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "only one THEN per rule"}
			}
			if len(out) == 0 && state == expectVariable {
				return nil, nil, &EmptyAntecedent{}
			}
			if state != expectOperator {
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "a complete clause before THEN"}
			}
			inConsequent = true
			state = expectVariable

		case "and", "or":
			if inConsequent {
				return nil, nil, &ConsequentMustBeVariable{}
			}
			if state != expectOperator {
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "a variable name"}
			}
			for len(opStack) > 0 && precedence[opStack[len(opStack)-1]] > precedence[lowered] {
				out = append(out, operatorFor(opStack[len(opStack)-1]))
				opStack = opStack[:len(opStack)-1]
			}
			opStack = append(opStack, lowered)
			state = expectVariable

		case "(":
			if inConsequent {
				return nil, nil, &ConsequentMustBeVariable{}
			}
			if state != expectVariable {
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "an operator"}
			}
			opStack = append(opStack, lowered)

		case ")":
			if inConsequent {
				return nil, nil, &ConsequentMustBeVariable{}
			}
			if state != expectOperator {
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "a complete clause before `)`"}
			}
			matched := false
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if top == "(" {
					matched = true
					break
				}
				out = append(out, operatorFor(top))
			}
			if !matched {
				return nil, nil, &UnbalancedParenthesis{}
			}

		case "is":
			if state != expectIs {
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "a variable name before `is`"}
			}
			state = expectLabel

		default:
			switch state {
			case expectVariable:
				v, err := vars.Lookup(tok)
				if err != nil {
					return nil, nil, &UnknownVariable{Name: tok}
				}
				pendingVar = v
				state = expectIs
			case expectIs:
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "`is`"}
			case expectLabel:
				label, err := pendingVar.Label(tok)
				if err != nil {
					return nil, nil, &UnknownLabel{Variable: pendingVar.Name(), Label: tok}
				}
				clause := &Clause{variable: pendingVar, label: label}
				if inConsequent {
					output = clause
				} else {
					// Operands bypass the operator stack.
					out = append(out, &operandToken{clause: clause})
				}
				pendingVar = nil
				state = expectOperator
			case expectOperator:
				if inConsequent {
					// A name here starts a second `is` clause after THEN.
					return nil, nil, &ConsequentMustBeSingleClause{}
				}
				return nil, nil, &UnexpectedToken{Token: tok, Expected: "AND, OR, or THEN"}
			}
		}
	}

	if output == nil {
		return nil, nil, &MissingConsequent{}
	}
	if len(out) == 0 {
		return nil, nil, &EmptyAntecedent{}
	}

	// Flush remaining operators in stack order.
	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		if top == "(" {
			return nil, nil, &UnbalancedParenthesis{}
		}
		out = append(out, operatorFor(top))
	}

	return out, output, nil
}

func operatorFor(keyword string) *operatorToken {
	if keyword == "and" {
		return &operatorToken{op: opAnd}
	}
	return &operatorToken{op: opOr}
}
