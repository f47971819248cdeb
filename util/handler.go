package util

import (
	"context"
	"fmt"
	"strings"

	"github.com/athapong/notion-mcp/pkg/metrics"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// ErrorGuard turns errors and panics raised by a tool handler into tool
// error results and counts the outcome of every call.
func ErrorGuard(handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		name := request.Params.Name
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("tool", name).Errorf("tool panicked: %v", r)
				metrics.ToolCalls.WithLabelValues(name, "panic").Inc()
				result, err = mcp.NewToolResultError(fmt.Sprintf("Panic: %v", r)), nil
			}
		}()

		result, err = handler(ctx, request)
		switch {
		case err != nil:
			logrus.WithField("tool", name).WithError(err).Warn("tool failed")
			metrics.ToolCalls.WithLabelValues(name, "error").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		case result != nil && result.IsError:
			metrics.ToolCalls.WithLabelValues(name, "error").Inc()
		default:
			metrics.ToolCalls.WithLabelValues(name, "ok").Inc()
		}
		return result, nil
	}
}

// StringArg returns the trimmed string argument, or "" when it is missing
// or not a string.
func StringArg(arguments map[string]interface{}, name string) string {
	s, _ := arguments[name].(string)
	return strings.TrimSpace(s)
}

// StringListArg accepts either an array of strings or a comma separated
// string. Blank entries are dropped.
func StringListArg(arguments map[string]interface{}, name string) []string {
	var raw []string
	switch v := arguments[name].(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	var out []string
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
