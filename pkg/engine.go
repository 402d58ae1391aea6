package fuzzql

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/boltdb/bolt"
	"github.com/gorilla/websocket"
	"github.com/vilterp/fuzzql/pkg/fuzz"
)

// An Engine owns the variable database, the parsed rules, and the
// storage layer, and serves statements from websocket connections.
// Variable inputs are shared mutable state, so all statement execution
// goes through the engine's lock.
type Engine struct {
	mu    sync.Mutex
	vars  *fuzz.Database
	defs  map[string]*variableDef // stored form of each variable
	rules map[string]*fuzz.Rule

	boltDB           *bolt.DB
	connections      map[connectionID]*connection
	nextConnectionID int

	ctx     context.Context
	metrics *metrics
}

func NewEngine(dataFile string) (*Engine, error) {
	boltDB, openErr := bolt.Open(dataFile, 0600, nil)
	if openErr != nil {
		return nil, openErr
	}

	engine := &Engine{
		vars:        fuzz.NewDatabase(),
		defs:        map[string]*variableDef{},
		rules:       map[string]*fuzz.Rule{},
		boltDB:      boltDB,
		connections: map[connectionID]*connection{},
		ctx:         context.Background(),
	}
	if err := engine.ensureBuckets(); err != nil {
		return nil, err
	}
	if err := engine.loadDefinitions(); err != nil {
		return nil, err
	}

	engine.metrics = newMetrics(engine)

	return engine, nil
}

// addConnection attaches a websocket to the engine and blocks, serving
// its statements until the peer hangs up.
func (e *Engine) addConnection(wsConn *websocket.Conn) {
	e.mu.Lock()
	conn := newConnection(wsConn, e, e.nextConnectionID)
	e.nextConnectionID++
	e.connections[conn.id] = conn
	e.mu.Unlock()

	conn.handleStatements()
}

func (e *Engine) removeConn(conn *connection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.connections, conn.id)
}

func (e *Engine) Close() error {
	return e.boltDB.Close()
}

func (e *Engine) connectionsEverOpened() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextConnectionID
}

func (e *Engine) numConnections() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.connections)
}

func (e *Engine) numVariables() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.vars.Variables())
}

func (e *Engine) numRules() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules)
}

func (e *Engine) ruleNames() []string {
	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateStatement checks names and shapes before execution. Rule
// text isn't validated here; parsing it is the execution step.
func (e *Engine) validateStatement(statement *Statement) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if statement.CreateVariable != nil {
		return e.validateCreateVariable(statement.CreateVariable)
	}
	if statement.CreateRule != nil {
		return e.validateCreateRule(statement.CreateRule)
	}
	if statement.Set != nil {
		return e.validateSet(statement.Set)
	}
	if statement.Infer != nil {
		return e.validateInfer(statement.Infer)
	}
	if statement.ShowVariables != nil || statement.ShowRules != nil {
		return nil
	}
	return errors.New("unknown statement type")
}

func (e *Engine) validateCreateVariable(create *CreateVariable) error {
	if _, err := e.vars.Lookup(create.Name); err == nil {
		return &fuzz.VariableAlreadyExists{Name: create.Name}
	}
	min, err := parseNumber(create.Min)
	if err != nil {
		return err
	}
	max, err := parseNumber(create.Max)
	if err != nil {
		return err
	}
	if min >= max {
		return &badRange{Min: min, Max: max}
	}
	seen := map[string]bool{}
	for _, labelDef := range create.Labels {
		if seen[labelDef.Name] {
			return &duplicateLabel{Variable: create.Name, Label: labelDef.Name}
		}
		seen[labelDef.Name] = true
		params, err := parseNumbers(labelDef.Params)
		if err != nil {
			return err
		}
		if _, err := membershipForShape(labelDef.Shape, params); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) validateCreateRule(create *CreateRule) error {
	if _, ok := e.rules[create.Name]; ok {
		return &ruleAlreadyExists{Name: create.Name}
	}
	return nil
}

func (e *Engine) validateSet(set *Set) error {
	v, err := e.vars.Lookup(set.Variable)
	if err != nil {
		return err
	}
	value, err := parseNumber(set.Value)
	if err != nil {
		return err
	}
	if value < v.Min() || value > v.Max() {
		return &inputOutOfRange{Variable: v.Name(), Min: v.Min(), Max: v.Max(), Value: value}
	}
	return nil
}

func (e *Engine) validateInfer(infer *Infer) error {
	if infer.Rule == "" {
		return nil
	}
	if _, ok := e.rules[infer.Rule]; !ok {
		return &noSuchRule{Name: infer.Rule}
	}
	return nil
}
