package util

import (
	"context"
	"testing"

	"github.com/athapong/notion-mcp/pkg/metrics"
	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func callRequest(name string) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	return req
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if r == nil || len(r.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := r.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", r.Content[0])
	}
	return text.Text
}

func TestErrorGuard(t *testing.T) {
	tests := []struct {
		name      string
		handler   func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		wantError bool
		wantText  string
		status    string
	}{
		{
			name: "success passes through",
			handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return mcp.NewToolResultText("done"), nil
			},
			wantText: "done",
			status:   "ok",
		},
		{
			name: "error becomes tool error",
			handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return nil, errors.New("boom")
			},
			wantError: true,
			wantText:  "Error: boom",
			status:    "error",
		},
		{
			name: "tool error result is counted",
			handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return mcp.NewToolResultError("bad input"), nil
			},
			wantError: true,
			wantText:  "bad input",
			status:    "error",
		},
		{
			name: "panic is recovered",
			handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				panic("NOTION_API_KEY is not set")
			},
			wantError: true,
			wantText:  "Panic: NOTION_API_KEY is not set",
			status:    "panic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := "guard_" + tt.status + "_" + tt.name
			counter := metrics.ToolCalls.WithLabelValues(tool, tt.status)
			before := testutil.ToFloat64(counter)

			got, err := ErrorGuard(tt.handler)(context.Background(), callRequest(tool))
			if err != nil {
				t.Fatalf("ErrorGuard returned error %v", err)
			}
			if got.IsError != tt.wantError {
				t.Errorf("IsError = %v, want %v", got.IsError, tt.wantError)
			}
			if text := resultText(t, got); text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if delta := testutil.ToFloat64(counter) - before; delta != 1 {
				t.Errorf("%s counter moved by %v, want 1", tt.status, delta)
			}
		})
	}
}

func TestStringListArg(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want []string
	}{
		{name: "missing", in: nil, want: nil},
		{name: "comma separated", in: "go, mcp ,,notion", want: []string{"go", "mcp", "notion"}},
		{name: "json array", in: []interface{}{"a", 3, " b "}, want: []string{"a", "b"}},
		{name: "string slice", in: []string{"x", ""}, want: []string{"x"}},
		{name: "wrong type", in: 42, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{}
			if tt.in != nil {
				args["tags"] = tt.in
			}
			if diff := cmp.Diff(tt.want, StringListArg(args, "tags")); diff != "" {
				t.Errorf("StringListArg() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{"title": "  Notes ", "count": 3}
	if got := StringArg(args, "title"); got != "Notes" {
		t.Errorf("StringArg(title) = %q", got)
	}
	if got := StringArg(args, "count"); got != "" {
		t.Errorf("StringArg(count) = %q, want empty", got)
	}
	if got := StringArg(args, "missing"); got != "" {
		t.Errorf("StringArg(missing) = %q, want empty", got)
	}
}
