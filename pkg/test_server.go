package fuzzql

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/vilterp/fuzzql/pkg/util"
)

type testServerArgs struct {
	dataFilePath     string
	preserveWhenDone bool
}

type testServerRef struct {
	server       *Server
	client       *Client
	dataFilePath string
	preserve     bool
}

func NewTestServer(args testServerArgs) (*testServerRef, *Client, error) {
	dataFilePath := args.dataFilePath
	if dataFilePath == "" {
		dir, err := ioutil.TempDir("", "fuzzql-test")
		if err != nil {
			return nil, nil, err
		}
		dataFilePath = dir + "/test.data"
	}

	port, err := freeport.GetFreePort()
	if err != nil {
		return nil, nil, err
	}

	server, err := NewServer(dataFilePath, "localhost", port)
	if err != nil {
		return nil, nil, err
	}
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	// The listener comes up on another goroutine; retry the dial.
	url := fmt.Sprintf("ws://localhost:%d/ws", port)
	var client *Client
	for attempt := 0; ; attempt++ {
		client, err = NewClient(url)
		if err == nil {
			break
		}
		if attempt > 50 {
			return nil, nil, err
		}
		time.Sleep(10 * time.Millisecond)
	}

	return &testServerRef{
		server:       server,
		client:       client,
		dataFilePath: dataFilePath,
		preserve:     args.preserveWhenDone,
	}, client, nil
}

func (tsr *testServerRef) close() {
	tsr.client.Close()
	tsr.server.Close()
	if !tsr.preserve {
		os.Remove(tsr.dataFilePath)
	}
}

// stmt => ack or error; query => result (as JSON) or error
type simpleTestStmt struct {
	stmt  string
	query string

	ack    string
	error  string
	result string
}

// runSimpleTestScript spins up a test server and runs statements on
// it, checking each response.
func runSimpleTestScript(t *testing.T, cases []simpleTestStmt) *testServerRef {
	tsr, client, err := NewTestServer(testServerArgs{})
	if err != nil {
		t.Fatal(err)
	}

	for idx, testCase := range cases {
		// Run a statement.
		if testCase.stmt != "" {
			result, err := client.Exec(testCase.stmt)
			if util.AssertError(t, idx, testCase.error, err) {
				continue
			}
			if result != testCase.ack {
				t.Fatalf(`case %d: expected ack "%s"; got "%s"`, idx, testCase.ack, result)
			}
			continue
		}
		// Run a query.
		if testCase.query != "" {
			res, err := client.Query(testCase.query)
			if util.AssertError(t, idx, testCase.error, err) {
				continue
			}
			marshaled, marshalErr := json.Marshal(res)
			if marshalErr != nil {
				t.Fatal(marshalErr)
			}
			equal, jsonErr := util.AreEqualJSON(string(marshaled), testCase.result)
			if jsonErr != nil {
				t.Fatalf("case %d: %v", idx, jsonErr)
			}
			if !equal {
				t.Fatalf("case %d: expected:\n%s\ngot:\n%s", idx, testCase.result, marshaled)
			}
		}
	}

	return tsr
}
