package fuzzql

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vilterp/fuzzql/pkg/fuzz"
)

func (conn *connection) executeCreateVariable(create *CreateVariable, channel *channel) error {
	engine := conn.engine

	min, err := parseNumber(create.Min)
	if err != nil {
		return err
	}
	max, err := parseNumber(create.Max)
	if err != nil {
		return err
	}
	def := &variableDef{
		Name:  create.Name,
		Min:   min,
		Max:   max,
		Input: min,
	}
	for _, label := range create.Labels {
		params, err := parseNumbers(label.Params)
		if err != nil {
			return err
		}
		def.Labels = append(def.Labels, labelDef{
			Name:   label.Name,
			Shape:  label.Shape,
			Params: params,
		})
	}

	variable, err := variableFromDef(def)
	if err != nil {
		return err
	}

	engine.mu.Lock()
	addErr := engine.vars.Add(variable)
	if addErr == nil {
		engine.defs[variable.Name()] = def
	}
	engine.mu.Unlock()
	if addErr != nil {
		return addErr
	}

	if err := engine.saveVariable(def); err != nil {
		return errors.Wrap(err, "saving variable")
	}

	channel.writeAckMessage("CREATE VARIABLE")
	return nil
}

func (conn *connection) executeCreateRule(create *CreateRule, channel *channel) error {
	engine := conn.engine

	engine.mu.Lock()
	rule, err := fuzz.NewRule(engine.vars, create.Name, create.Text)
	if err == nil {
		engine.rules[create.Name] = rule
	}
	engine.mu.Unlock()
	if err != nil {
		// Malformed rule text or unknown names; the caller can fix
		// the statement and retry.
		return err
	}

	if err := engine.saveRule(&ruleDef{Name: create.Name, Text: create.Text}); err != nil {
		return errors.Wrap(err, "saving rule")
	}

	channel.writeAckMessage("CREATE RULE")
	return nil
}

func (conn *connection) executeSet(set *Set, channel *channel) error {
	engine := conn.engine

	value, err := parseNumber(set.Value)
	if err != nil {
		return err
	}

	engine.mu.Lock()
	variable, lookupErr := engine.vars.Lookup(set.Variable)
	if lookupErr != nil {
		engine.mu.Unlock()
		return lookupErr
	}
	variable.SetInput(value)
	def := engine.defs[variable.Name()]
	def.Input = variable.Input()
	engine.mu.Unlock()

	if err := engine.saveVariable(def); err != nil {
		return errors.Wrap(err, "saving input")
	}

	channel.writeAckMessage("SET")
	return nil
}

func (conn *connection) executeInfer(infer *Infer, channel *channel) error {
	engine := conn.engine
	startTime := time.Now()

	engine.mu.Lock()
	var names []string
	if infer.Rule != "" {
		names = []string{infer.Rule}
	} else {
		names = engine.ruleNames()
	}
	inferences := make([]*Inference, 0, len(names))
	for _, name := range names {
		rule, ok := engine.rules[name]
		if !ok {
			engine.mu.Unlock()
			return &noSuchRule{Name: name}
		}
		inferences = append(inferences, &Inference{
			Rule:           rule.Name(),
			FiringStrength: rule.FiringStrength(),
			Output:         rule.Output().String(),
		})
	}
	engine.mu.Unlock()

	channel.writeResult(&Result{Inferences: inferences})

	engine.metrics.inferLatency.Observe(float64(time.Since(startTime).Nanoseconds()))
	return nil
}

func (conn *connection) executeShowVariables(channel *channel) error {
	engine := conn.engine

	engine.mu.Lock()
	variables := engine.vars.Variables()
	infos := make([]*VariableInfo, len(variables))
	for idx, variable := range variables {
		labels := variable.Labels()
		labelNames := make([]string, len(labels))
		for labelIdx, label := range labels {
			labelNames[labelIdx] = label.Name()
		}
		infos[idx] = &VariableInfo{
			Name:   variable.Name(),
			Min:    variable.Min(),
			Max:    variable.Max(),
			Input:  variable.Input(),
			Labels: labelNames,
		}
	}
	engine.mu.Unlock()

	channel.writeResult(&Result{Variables: infos})
	return nil
}

func (conn *connection) executeShowRules(channel *channel) error {
	engine := conn.engine

	engine.mu.Lock()
	names := engine.ruleNames()
	infos := make([]*RuleInfo, len(names))
	for idx, name := range names {
		rule := engine.rules[name]
		infos[idx] = &RuleInfo{
			Name:    rule.Name(),
			Text:    rule.Text(),
			Postfix: rule.PostfixString(),
		}
	}
	engine.mu.Unlock()

	channel.writeResult(&Result{Rules: infos})
	return nil
}
