package tools

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/athapong/notion-mcp/pkg/blocks"
)

const articleHTML = `<html><head><title>
  Release   notes
</title></head><body><h2>Changes</h2><ul><li>faster</li></ul></body></html>`

func useTestServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := httpClientFor
	httpClientFor = srv.Client
	t.Cleanup(func() { httpClientFor = orig })
	return srv.URL
}

func TestImportURL(t *testing.T) {
	store := &fakeStore{}
	useFakeStore(t, store)
	url := useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articleHTML)
	})

	text, isErr := call(t, importURLHandler, map[string]interface{}{"url": url + "/post", "tags": "release"})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	if !strings.Contains(text, `as "Release notes"`) {
		t.Errorf("title not taken from <title>: %q", text)
	}
	if got := blocks.Markdown(store.created); got != "## Changes\n\n- faster" {
		t.Errorf("created body = %q", got)
	}
	if _, ok := store.createdProps["다중 선택"]; !ok {
		t.Error("tags were not written")
	}
}

func TestImportURLExplicitTitle(t *testing.T) {
	store := &fakeStore{}
	useFakeStore(t, store)
	url := useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articleHTML)
	})

	text, _ := call(t, importURLHandler, map[string]interface{}{"url": url, "title": "Mine"})
	if !strings.Contains(text, `as "Mine"`) {
		t.Errorf("text = %q", text)
	}
}

func TestImportURLErrors(t *testing.T) {
	useFakeStore(t, &fakeStore{})
	url := useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "not http", url: "ftp://example.com", want: "url must be an http or https URL"},
		{name: "not found", url: url + "/missing", want: "failed to fetch URL: unexpected status 404 Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, importURLHandler, map[string]interface{}{"url": tt.url})
			if !isErr || text != tt.want {
				t.Errorf("got (%q, %v), want (%q, true)", text, isErr, tt.want)
			}
		})
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		html string
		want string
	}{
		{html: articleHTML, want: "Release notes"},
		{html: "<p>no head</p>", want: "fallback"},
		{html: "<title>  </title>", want: "fallback"},
	}
	for _, tt := range tests {
		if got := pageTitle([]byte(tt.html), "fallback"); got != tt.want {
			t.Errorf("pageTitle(%q) = %q, want %q", tt.html, got, tt.want)
		}
	}
}
