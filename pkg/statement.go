package fuzzql

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var (
	stmtLexer = lexer.Unquote(
		lexer.Upper(
			lexer.Must(
				lexer.Regexp(`(\s+)`+
					`|(?P<Keyword>(?i)CREATEVARIABLE|CREATERULE|SHOWVARIABLES|SHOWRULES|RANGE|LABELS|AS|SET|INFER)`+
					`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)`+
					`|(?P<Number>[-+]?\d*\.?\d+([eE][-+]?\d+)?)`+
					`|(?P<String>'[^']*'|"[^"]*")`+
					`|(?P<Operators>[,()=])`,
				),
			),
			"Keyword",
		),
		"String",
	)
	stmtParser = participle.MustBuild(&Statement{}, stmtLexer)
)

type Statement struct {
	CreateVariable *CreateVariable `  @@`
	CreateRule     *CreateRule     `| @@`
	Set            *Set            `| @@`
	Infer          *Infer          `| @@`
	ShowVariables  *ShowVariables  `| @@`
	ShowRules      *ShowRules      `| @@`
}

type CreateVariable struct {
	Name   string      `"CREATEVARIABLE" @Ident`
	Min    string      `"RANGE" "(" @Number`
	Max    string      `"," @Number ")"`
	Labels []*LabelDef `"LABELS" "(" @@ { "," @@ } ")"`
}

// A LabelDef is a named membership function shape. Shapes lex as
// idents, not keywords; they're validated against the known shape
// names before execution.
type LabelDef struct {
	Name   string   `@Ident`
	Shape  string   `@Ident`
	Params []string `"(" @Number { "," @Number } ")"`
}

// CreateRule carries the rule text as a quoted string; the rule
// language has its own parser in pkg/fuzz.
type CreateRule struct {
	Name string `"CREATERULE" @Ident`
	Text string `"AS" @String`
}

type Set struct {
	Variable string `"SET" @Ident`
	Value    string `"=" @Number`
}

// Infer with no rule name evaluates every rule.
type Infer struct {
	Rule string `"INFER" [ @Ident ]`
}

type ShowVariables struct {
	Show bool `@"SHOWVARIABLES"`
}

type ShowRules struct {
	Show bool `@"SHOWRULES"`
}

// Parse parses a fuzzql statement.
func Parse(stmt string) (*Statement, error) {
	result := &Statement{}
	err := stmtParser.ParseString(stmt, result)
	return result, err
}
