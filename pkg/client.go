package fuzzql

// Client-side counterpart of connection: statements go out as text
// messages; responses come back keyed by statement ID. Both sides
// number statements from zero, so the IDs line up without a handshake.

import (
	"errors"
	"log"

	"github.com/gorilla/websocket"
)

type Client struct {
	WebSocketConn    *websocket.Conn
	URL              string
	NextStatementID  int
	StatementsToSend chan *StatementRequest
	IncomingMessages chan *ChannelMessage
	Channels         map[int]*ClientChannel
}

type StatementRequest struct {
	Statement  string
	ResultChan chan *ClientChannel
}

type ClientChannel struct {
	Conn        *Client
	StatementID int
	Statement   string
	Response    chan *MessageToClient
}

func NewClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	client := &Client{
		WebSocketConn:    conn,
		URL:              url,
		StatementsToSend: make(chan *StatementRequest),
		IncomingMessages: make(chan *ChannelMessage),
		Channels:         map[int]*ClientChannel{},
	}
	go client.handleStatements()
	go client.handleIncoming()
	return client, nil
}

func (conn *Client) Close() error {
	return conn.WebSocketConn.Close()
}

func (conn *Client) handleStatements() {
	for {
		select {
		case request := <-conn.StatementsToSend:
			channel := &ClientChannel{
				Conn:        conn,
				StatementID: conn.NextStatementID,
				Statement:   request.Statement,
				Response:    make(chan *MessageToClient),
			}
			conn.NextStatementID++
			conn.Channels[channel.StatementID] = channel
			request.ResultChan <- channel
			conn.WebSocketConn.WriteMessage(websocket.TextMessage, []byte(request.Statement))

		case incomingMsg := <-conn.IncomingMessages:
			channel := conn.Channels[incomingMsg.StatementID]
			delete(conn.Channels, incomingMsg.StatementID)
			channel.Response <- incomingMsg.Message
		}
	}
}

func (conn *Client) handleIncoming() {
	defer conn.WebSocketConn.Close()
	for {
		parsedMessage := &ChannelMessage{}
		if err := conn.WebSocketConn.ReadJSON(&parsedMessage); err != nil {
			log.Println("client: error in handleIncoming:", err)
			return
		}
		conn.IncomingMessages <- parsedMessage
	}
}

func (conn *Client) Statement(statement string) *ClientChannel {
	resultChan := make(chan *ClientChannel)
	conn.StatementsToSend <- &StatementRequest{
		ResultChan: resultChan,
		Statement:  statement,
	}
	return <-resultChan
}

// Exec runs a statement that acks (CREATEVARIABLE, CREATERULE, SET),
// returning the ack string.
func (conn *Client) Exec(statement string) (string, error) {
	channel := conn.Statement(statement)
	response := <-channel.Response
	if response.ErrorMessage != nil {
		return "", errors.New(*response.ErrorMessage)
	}
	if response.AckMessage != nil {
		return *response.AckMessage, nil
	}
	return "", errors.New("exec result neither error nor ack")
}

// Query runs a statement that returns data (INFER, SHOWVARIABLES,
// SHOWRULES).
func (conn *Client) Query(statement string) (*Result, error) {
	channel := conn.Statement(statement)
	response := <-channel.Response
	if response.ErrorMessage != nil {
		return nil, errors.New(*response.ErrorMessage)
	}
	if response.ResultMessage != nil {
		return response.ResultMessage, nil
	}
	return nil, errors.New("query result neither error nor result")
}
