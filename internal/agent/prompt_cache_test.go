package agent

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestPromptCache(t *testing.T) {
	testContent := "This is a test prompt template with {{.Variable}}"
	source := fstest.MapFS{
		"test.tmpl":  {Data: []byte(testContent)},
		"test2.tmpl": {Data: []byte("Second test prompt")},
	}

	cache := NewPromptCacheFS(source)

	t.Run("loads prompt from source", func(t *testing.T) {
		content, err := cache.LoadPrompt("test.tmpl")
		if err != nil {
			t.Fatalf("LoadPrompt() error = %v", err)
		}

		if content != testContent {
			t.Errorf("LoadPrompt() = %q, want %q", content, testContent)
		}
	})

	t.Run("caches prompt content", func(t *testing.T) {
		if _, err := cache.LoadPrompt("test.tmpl"); err != nil {
			t.Fatal(err)
		}

		source["test.tmpl"] = &fstest.MapFile{Data: []byte("Modified content")}

		content, err := cache.LoadPrompt("test.tmpl")
		if err != nil {
			t.Fatal(err)
		}

		if content != testContent {
			t.Errorf("LoadPrompt() = %q, want cached content %q", content, testContent)
		}
	})

	t.Run("loads and caches template", func(t *testing.T) {
		tmpl, err := cache.LoadTemplate("test", "test.tmpl")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}

		if tmpl.Name() != "test" {
			t.Errorf("template name = %q, want %q", tmpl.Name(), "test")
		}
	})

	t.Run("renders with data", func(t *testing.T) {
		got, err := cache.Render("test.tmpl", map[string]string{"Variable": "ink"})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.HasSuffix(got, "with ink") {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("render fails on missing key", func(t *testing.T) {
		if _, err := cache.Render("test.tmpl", map[string]string{}); err == nil {
			t.Error("Render() with missing key should return error")
		}
	})

	t.Run("preload multiple files", func(t *testing.T) {
		newCache := NewPromptCacheFS(source)

		if err := newCache.Preload([]string{"test.tmpl", "test2.tmpl"}); err != nil {
			t.Fatalf("Preload() error = %v", err)
		}

		templates, raw := newCache.Stats()
		if templates != 2 || raw != 2 {
			t.Errorf("Stats() = (%d, %d), want (2, 2)", templates, raw)
		}
	})

	t.Run("clear cache", func(t *testing.T) {
		cache.Clear()
		templates, raw := cache.Stats()

		if templates != 0 || raw != 0 {
			t.Errorf("Stats() after Clear() = (%d, %d), want (0, 0)", templates, raw)
		}
	})

	t.Run("handles missing file", func(t *testing.T) {
		if _, err := cache.LoadPrompt("nonexistent.tmpl"); err == nil {
			t.Error("LoadPrompt() with nonexistent file should return error")
		}
	})
}

func TestEmbeddedPromptsParse(t *testing.T) {
	cache := NewPromptCache()
	for _, role := range []Role{RoleStoryteller, RoleAnalyst, RoleArchivist} {
		if err := cache.Preload([]string{role.systemPath(), role.userPath()}); err != nil {
			t.Errorf("%s: %v", role, err)
		}
	}
}

func TestRenderDropsFinalNewline(t *testing.T) {
	cache := NewPromptCacheFS(fstest.MapFS{
		"line.tmpl":  {Data: []byte("Analyze this text:\n{{.Content}}\n")},
		"lines.tmpl": {Data: []byte("{{.Content}}\n\n")},
	})

	tests := []struct {
		path string
		want string
	}{
		{"line.tmpl", "Analyze this text:\nIt was so."},
		{"lines.tmpl", "It was so.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := cache.Render(tt.path, map[string]string{"Content": "It was so."})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalystUserPrompt(t *testing.T) {
	_, user, err := New(nil, RoleAnalyst, AnalystTemperature).Prompts(map[string]string{
		"Language":            "English",
		"ExplanationLanguage": "Simplified Chinese",
		"Content":             "It was so.",
	})
	if err != nil {
		t.Fatalf("Prompts() error = %v", err)
	}
	if want := "Analyze this text:\nIt was so."; user != want {
		t.Errorf("user prompt = %q, want %q", user, want)
	}
}
