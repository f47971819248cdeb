package tools

import (
	"os"
	"strings"
	"testing"
)

func TestIsEnabled(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "")
	if !IsEnabled("notion") {
		t.Error("empty ENABLE_TOOLS should enable everything")
	}

	t.Setenv("ENABLE_TOOLS", "notion, preview")
	if !IsEnabled("preview") || IsEnabled("import") {
		t.Errorf("ENABLE_TOOLS=%q gave wrong groups", os.Getenv("ENABLE_TOOLS"))
	}
}

func TestToolManager(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "notion")

	text, _ := call(t, toolManagerHandler, map[string]interface{}{"action": "list"})
	for _, want := range []string{"- notion (", "[enabled]", "- import (Import a web page into Notion: notion_import_url) [disabled]"} {
		if !strings.Contains(text, want) {
			t.Errorf("list lacks %q:\n%s", want, text)
		}
	}

	if _, isErr := call(t, toolManagerHandler, map[string]interface{}{"action": "enable", "tool_name": "import"}); isErr {
		t.Fatal("enable failed")
	}
	if got := os.Getenv("ENABLE_TOOLS"); got != "notion,import" {
		t.Errorf("ENABLE_TOOLS = %q after enable", got)
	}

	call(t, toolManagerHandler, map[string]interface{}{"action": "disable", "tool_name": "notion"})
	if got := os.Getenv("ENABLE_TOOLS"); got != "import" {
		t.Errorf("ENABLE_TOOLS = %q after disable", got)
	}

	if text, isErr := call(t, toolManagerHandler, map[string]interface{}{"action": "enable"}); !isErr || !strings.Contains(text, "tool_name is required") {
		t.Errorf("got (%q, %v)", text, isErr)
	}
	if _, isErr := call(t, toolManagerHandler, map[string]interface{}{"action": "explode"}); !isErr {
		t.Error("unknown action should fail")
	}
}

func TestToolManagerDisableFromAll(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "")
	call(t, toolManagerHandler, map[string]interface{}{"action": "disable", "tool_name": "import"})
	if got := os.Getenv("ENABLE_TOOLS"); got != "tool_manager,notion,preview" {
		t.Errorf("ENABLE_TOOLS = %q", got)
	}
}
