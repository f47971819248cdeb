package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitNote(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTitle string
		wantBody  string
	}{
		{name: "heading title", in: "# Today\n- one\n- two", wantTitle: "Today", wantBody: "- one\n- two"},
		{name: "plain title", in: "Today\nbody", wantTitle: "Today", wantBody: "body"},
		{name: "deep heading", in: "### Deep  \r\nbody\r\n", wantTitle: "Deep", wantBody: "body\n"},
		{name: "title only", in: "Only", wantTitle: "Only", wantBody: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := splitNote(tt.in)
			if title != tt.wantTitle || body != tt.wantBody {
				t.Errorf("splitNote(%q) = (%q, %q), want (%q, %q)", tt.in, title, body, tt.wantTitle, tt.wantBody)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	if diff := cmp.Diff([]string{"go", "notes"}, splitTags(" go, ,notes ")); diff != "" {
		t.Errorf("splitTags() mismatch (-want +got):\n%s", diff)
	}
	if got := splitTags(""); got != nil {
		t.Errorf("splitTags(\"\") = %v, want nil", got)
	}
}
