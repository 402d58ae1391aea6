package log

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	ConnIDKey      = "ConnID"
	StatementIDKey = "StmtID"
)

func ctxToString(ctx context.Context) string {
	var tags []string
	if connID := ctx.Value(ConnIDKey); connID != nil {
		tags = append(tags, fmt.Sprintf("conn=%d", connID))
	}
	if stmtID := ctx.Value(StatementIDKey); stmtID != nil {
		tags = append(tags, fmt.Sprintf("stmt=%d", stmtID))
	}
	return fmt.Sprintf("[%s]", strings.Join(tags, ","))
}

type Loggable interface {
	Ctx() context.Context
}

func Println(l Loggable, args ...interface{}) {
	var allArgs []interface{}
	allArgs = append(allArgs, ctxToString(l.Ctx()))
	allArgs = append(allArgs, args...)
	log.Println(allArgs...)
}

func Printf(l Loggable, format string, args ...interface{}) {
	log.Printf("%s %s", ctxToString(l.Ctx()), fmt.Sprintf(format, args...))
}
