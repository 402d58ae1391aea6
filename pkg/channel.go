package fuzzql

import (
	"context"
	"time"

	clog "github.com/vilterp/fuzzql/pkg/log"
)

// A channel is the scope of one statement within a connection. Every
// statement produces exactly one message back to the client.
type channel struct {
	connection   *connection
	rawStatement string
	id           int // unique within containing connection

	context context.Context
}

func newChannel(rawStatement string, ID int, conn *connection) *channel {
	ctx := context.WithValue(conn.Ctx(), clog.StatementIDKey, ID)
	return &channel{
		connection:   conn,
		rawStatement: rawStatement,
		id:           ID,
		context:      ctx,
	}
}

func (channel *channel) Ctx() context.Context {
	return channel.context
}

func (channel *channel) handleStatement() {
	startTime := time.Now()

	if err := channel.validateAndRun(); err != nil {
		clog.Println(channel, err.Error())
		channel.writeErrorMessage(err)
	}
	channel.connection.removeChannel(channel)

	metrics := channel.connection.engine.metrics
	metrics.statementLatency.Observe(float64(time.Since(startTime).Nanoseconds()))
}

func (channel *channel) validateAndRun() error {
	// Parse what was sent to us.
	statement, err := Parse(channel.rawStatement)
	if err != nil {
		return &parseError{error: err}
	}

	// Validate names, ranges, and shapes.
	if err := channel.connection.engine.validateStatement(statement); err != nil {
		return &validationError{error: err}
	}
	return channel.run(statement)
}

func (channel *channel) run(statement *Statement) error {
	conn := channel.connection
	if statement.CreateVariable != nil {
		return conn.executeCreateVariable(statement.CreateVariable, channel)
	}
	if statement.CreateRule != nil {
		return conn.executeCreateRule(statement.CreateRule, channel)
	}
	if statement.Set != nil {
		return conn.executeSet(statement.Set, channel)
	}
	if statement.Infer != nil {
		return conn.executeInfer(statement.Infer, channel)
	}
	if statement.ShowVariables != nil {
		return conn.executeShowVariables(channel)
	}
	return conn.executeShowRules(channel)
}

func (channel *channel) writeErrorMessage(err error) {
	errStr := err.Error()
	channel.writeMessage(&MessageToClient{
		Type:         ErrorMessage,
		ErrorMessage: &errStr,
	})
}

func (channel *channel) writeAckMessage(message string) {
	channel.writeMessage(&MessageToClient{
		Type:       AckMessage,
		AckMessage: &message,
	})
}

func (channel *channel) writeResult(result *Result) {
	channel.writeMessage(&MessageToClient{
		Type:          ResultMessage,
		ResultMessage: result,
	})
}

func (channel *channel) writeMessage(message *MessageToClient) {
	channel.connection.messages <- &ChannelMessage{
		StatementID: channel.id,
		Message:     message,
	}
}
