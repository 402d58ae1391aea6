package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"
	"github.com/vilterp/fuzzql/pkg"
)

var url = flag.String("url", "ws://localhost:9000/ws", "URL of fuzzql server to connect to")

func main() {
	// get cmdline flags
	flag.Parse()

	// connect to server
	client, connErr := fuzzql.NewClient(*url)
	if connErr != nil {
		fmt.Println("couldn't connect:", connErr)
		os.Exit(1)
		return
	}
	defer client.Close()

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("fuzzql shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = fmt.Sprintf("%s> ", *url)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "/tmp/.fuzzql-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}

		if line == `\h` {
			fmt.Println(`\h	help`)
			fmt.Println(`\v	show variables`)
			fmt.Println(`\r	show rules`)
			fmt.Println()
			fmt.Println("statements:")
			fmt.Println("  CREATEVARIABLE <name> RANGE (<min>, <max>) LABELS (<label> <shape> (<params...>), ...)")
			fmt.Println("  CREATERULE <name> AS '<IF ... THEN ...>'")
			fmt.Println("  SET <variable> = <number>")
			fmt.Println("  INFER [<rule>]")
			fmt.Println("  SHOWVARIABLES | SHOWRULES")
			continue
		}
		if line == `\v` {
			runStatement(client, "SHOWVARIABLES")
			continue
		}
		if line == `\r` {
			runStatement(client, "SHOWRULES")
			continue
		}

		if len(strings.Trim(line, "\t ")) == 0 {
			continue
		}

		runStatement(client, line)
	}
}

func runStatement(client *fuzzql.Client, statement string) {
	channel := client.Statement(statement)
	response := <-channel.Response

	switch {
	case response.ErrorMessage != nil:
		fmt.Println("error:", *response.ErrorMessage)
	case response.AckMessage != nil:
		fmt.Println(*response.AckMessage)
	case response.ResultMessage != nil:
		indented, err := json.MarshalIndent(response.ResultMessage, "", "  ")
		if err != nil {
			fmt.Println("error formatting result:", err)
			return
		}
		fmt.Println(string(indented))
	}
}
