package tools

import (
	"context"
	"sort"
	"sync"
)

// Registry manages the collection of available tools.
type Registry struct {
	tools map[string]Tool
	mu    sync.RWMutex
}

// NewRegistry creates a new tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a new tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools[tool.Name()] = tool
}

// Get returns a tool by name. Lookup is exact string match; no fuzzy
// matching, no case normalization.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// Names returns the sorted names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Process looks up a tool by name and invokes it with the given input.
// A request naming an unregistered tool fails without invoking any handler.
func (r *Registry) Process(ctx context.Context, name, input string) (string, error) {
	tool, exists := r.Get(name)
	if !exists {
		return "", NewUnknownToolError(name)
	}

	return tool.ProcessQuery(ctx, input)
}
