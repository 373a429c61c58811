package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps command names and aliases to commands. Names are matched
// case-insensitively. Commands register from init, so a Registry is filled
// before main runs and only read afterwards.
type Registry struct {
	byName   map[string]Command
	commands []Command
	fallback string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds c under its name and aliases.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, k := range keys {
		if prev, ok := r.byName[strings.ToLower(k)]; ok {
			return fmt.Errorf("command %q: %q already taken by %q", c.Name(), k, prev.Name())
		}
	}
	for _, k := range keys {
		r.byName[strings.ToLower(k)] = c
	}
	r.commands = append(r.commands, c)
	return nil
}

// SetDefault names the command Resolve returns for an empty name.
func (r *Registry) SetDefault(name string) {
	r.fallback = name
}

// Resolve looks up a command by name or alias. An empty name resolves to the
// default command.
func (r *Registry) Resolve(name string) (Command, bool) {
	if name == "" {
		name = r.fallback
	}
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// All returns the registered commands sorted by name.
func (r *Registry) All() []Command {
	out := append([]Command(nil), r.commands...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Seeded returns the sorted names of the commands that build a session.
func (r *Registry) Seeded() []string {
	var names []string
	for _, c := range r.All() {
		if c.NeedsSeed() {
			names = append(names, c.Name())
		}
	}
	return names
}

// DefaultRegistry holds the wellness commands.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry. A name clash is a programming error.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
