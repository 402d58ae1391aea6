package fuzzql

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/vilterp/fuzzql/pkg/fuzz"
)

// Variable and rule definitions are stored as JSON, keyed by name, in
// two buckets. The live input is part of the variable definition so
// engine state survives a restart.

var (
	variablesBucket = []byte("variables")
	rulesBucket     = []byte("rules")
)

type variableDef struct {
	Name   string     `json:"name"`
	Min    float64    `json:"min"`
	Max    float64    `json:"max"`
	Labels []labelDef `json:"labels"`
	Input  float64    `json:"input"`
}

type labelDef struct {
	Name   string    `json:"name"`
	Shape  string    `json:"shape"`
	Params []float64 `json:"params"`
}

type ruleDef struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func (e *Engine) ensureBuckets() error {
	err := e.boltDB.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(variablesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(rulesBucket)
		return err
	})
	return errors.Wrap(err, "ensuring buckets")
}

func (e *Engine) saveVariable(def *variableDef) error {
	return e.savePut(variablesBucket, def.Name, def)
}

func (e *Engine) saveRule(def *ruleDef) error {
	return e.savePut(rulesBucket, def.Name, def)
}

func (e *Engine) savePut(bucket []byte, key string, def interface{}) error {
	bytes, err := json.Marshal(def)
	if err != nil {
		return err
	}
	return e.boltDB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), bytes)
	})
}

// loadDefinitions rebuilds in-memory state from storage: variables
// first, then rules, since rules resolve names against variables.
func (e *Engine) loadDefinitions() error {
	err := e.boltDB.View(func(tx *bolt.Tx) error {
		err := tx.Bucket(variablesBucket).ForEach(func(_ []byte, value []byte) error {
			def := &variableDef{}
			if err := json.Unmarshal(value, def); err != nil {
				return err
			}
			variable, err := variableFromDef(def)
			if err != nil {
				return err
			}
			if err := e.vars.Add(variable); err != nil {
				return err
			}
			e.defs[def.Name] = def
			return nil
		})
		if err != nil {
			return err
		}
		return tx.Bucket(rulesBucket).ForEach(func(_ []byte, value []byte) error {
			def := &ruleDef{}
			if err := json.Unmarshal(value, def); err != nil {
				return err
			}
			rule, err := fuzz.NewRule(e.vars, def.Name, def.Text)
			if err != nil {
				return err
			}
			e.rules[def.Name] = rule
			return nil
		})
	})
	return errors.Wrap(err, "loading definitions")
}

func variableFromDef(def *variableDef) (*fuzz.Variable, error) {
	variable := fuzz.NewVariable(def.Name, def.Min, def.Max)
	for _, label := range def.Labels {
		fn, err := membershipForShape(label.Shape, label.Params)
		if err != nil {
			return nil, err
		}
		variable.AddLabel(label.Name, fn)
	}
	variable.SetInput(def.Input)
	return variable, nil
}

// membershipForShape builds a membership function from a shape name
// and its params, validating arity and ordering.
func membershipForShape(shape string, params []float64) (fuzz.MembershipFunc, error) {
	upper := strings.ToUpper(shape)
	wanted, ok := shapeArity[upper]
	if !ok {
		return nil, &noSuchShape{Shape: shape}
	}
	if len(params) != wanted {
		return nil, &wrongNumShapeParams{Shape: shape, Wanted: wanted, Got: len(params)}
	}
	for idx := 1; idx < len(params); idx++ {
		if params[idx] < params[idx-1] {
			return nil, &unorderedShapeParams{Shape: shape}
		}
	}
	switch upper {
	case "TRIANGLE":
		return fuzz.Triangle(params[0], params[1], params[2]), nil
	case "TRAPEZOID":
		return fuzz.Trapezoid(params[0], params[1], params[2], params[3]), nil
	case "RISING":
		return fuzz.Rising(params[0], params[1]), nil
	default:
		return fuzz.Falling(params[0], params[1]), nil
	}
}

var shapeArity = map[string]int{
	"TRIANGLE":  3,
	"TRAPEZOID": 4,
	"RISING":    2,
	"FALLING":   2,
}

func parseNumber(s string) (float64, error) {
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &badNumber{Value: s}
	}
	return num, nil
}

func parseNumbers(strs []string) ([]float64, error) {
	nums := make([]float64, len(strs))
	for idx, s := range strs {
		num, err := parseNumber(s)
		if err != nil {
			return nil, err
		}
		nums[idx] = num
	}
	return nums, nil
}
