package agent

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
)

//go:embed prompts/*.tmpl
var embeddedPrompts embed.FS

// PromptCache caches parsed prompt templates to avoid repeated reads
type PromptCache struct {
	mu        sync.RWMutex
	source    fs.FS
	templates map[string]*template.Template
	raw       map[string]string
}

// NewPromptCache creates a cache over the built-in prompts.
func NewPromptCache() *PromptCache {
	sub, err := fs.Sub(embeddedPrompts, "prompts")
	if err != nil {
		panic(fmt.Sprintf("embedded prompts: %v", err))
	}
	return NewPromptCacheFS(sub)
}

// NewPromptCacheFS creates a cache over an arbitrary file system.
func NewPromptCacheFS(source fs.FS) *PromptCache {
	return &PromptCache{
		source:    source,
		templates: make(map[string]*template.Template),
		raw:       make(map[string]string),
	}
}

// LoadPrompt loads a prompt from the source or cache
func (pc *PromptCache) LoadPrompt(path string) (string, error) {
	pc.mu.RLock()
	if content, ok := pc.raw[path]; ok {
		pc.mu.RUnlock()
		return content, nil
	}
	pc.mu.RUnlock()

	content, err := fs.ReadFile(pc.source, path)
	if err != nil {
		return "", fmt.Errorf("reading prompt file: %w", err)
	}

	pc.mu.Lock()
	pc.raw[path] = string(content)
	pc.mu.Unlock()

	return string(content), nil
}

// LoadTemplate loads and parses a template from the source or cache
func (pc *PromptCache) LoadTemplate(name, path string) (*template.Template, error) {
	pc.mu.RLock()
	if tmpl, ok := pc.templates[path]; ok {
		pc.mu.RUnlock()
		return tmpl, nil
	}
	pc.mu.RUnlock()

	content, err := pc.LoadPrompt(path)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	pc.mu.Lock()
	pc.templates[path] = tmpl
	pc.mu.Unlock()

	return tmpl, nil
}

// Render executes the template at path with data.
func (pc *PromptCache) Render(path string, data any) (string, error) {
	tmpl, err := pc.LoadTemplate(path, path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	// Template files end with a newline; the prompt does not.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Clear removes all cached prompts and templates
func (pc *PromptCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.templates = make(map[string]*template.Template)
	pc.raw = make(map[string]string)
}

// Preload loads multiple prompts into cache
func (pc *PromptCache) Preload(paths []string) error {
	for _, path := range paths {
		if _, err := pc.LoadTemplate(path, path); err != nil {
			return fmt.Errorf("preloading %s: %w", path, err)
		}
	}
	return nil
}

// Stats returns cache statistics
func (pc *PromptCache) Stats() (templates int, raw int) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return len(pc.templates), len(pc.raw)
}
