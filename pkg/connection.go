package fuzzql

import (
	"context"

	"github.com/gorilla/websocket"
	clog "github.com/vilterp/fuzzql/pkg/log"
)

type connectionID int

type connection struct {
	clientConn    *websocket.Conn
	id            connectionID
	engine        *Engine
	channels      map[int]*channel // keyed by statement id
	nextChannelID int
	messages      chan *ChannelMessage
	context       context.Context
}

func newConnection(wsConn *websocket.Conn, engine *Engine, ID int) *connection {
	ctx := context.WithValue(engine.ctx, clog.ConnIDKey, ID)
	conn := &connection{
		clientConn: wsConn,
		id:         connectionID(ID),
		engine:     engine,
		channels:   map[int]*channel{},
		messages:   make(chan *ChannelMessage),
		context:    ctx,
	}
	go conn.writeMessagesToSocket()
	return conn
}

func (conn *connection) Ctx() context.Context {
	return conn.context
}

func (conn *connection) writeMessagesToSocket() {
	for msg := range conn.messages {
		if err := conn.clientConn.WriteJSON(msg); err != nil {
			clog.Println(conn, "error writing to socket:", err)
			break
		}
	}
}

// handleStatements reads statements off the socket until the peer
// disconnects, running each on its own numbered channel.
func (conn *connection) handleStatements() {
	clog.Println(conn, "initiated from", conn.clientConn.RemoteAddr())
	for {
		_, message, readErr := conn.clientConn.ReadMessage()
		if readErr != nil {
			clog.Println(conn, "terminated:", readErr)
			conn.engine.removeConn(conn)
			// Statements are handled synchronously, so nothing is
			// still trying to write.
			close(conn.messages)
			return
		}
		conn.addChannel(string(message))
	}
}

func (conn *connection) addChannel(statement string) {
	channel := newChannel(statement, conn.nextChannelID, conn)
	conn.nextChannelID++
	conn.channels[channel.id] = channel

	channel.handleStatement()
}

func (conn *connection) removeChannel(channel *channel) {
	delete(conn.channels, channel.id)
}
