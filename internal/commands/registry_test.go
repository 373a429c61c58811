package commands

import (
	"context"
	"flag"
	"io"
	"strings"
	"testing"

	"wellness/internal/config"
	"wellness/internal/seed"
)

type stubCmd struct {
	name    string
	aliases []string
	seeded  bool
}

func (c *stubCmd) Name() string                   { return c.name }
func (c *stubCmd) Aliases() []string              { return c.aliases }
func (c *stubCmd) Synopsis() string               { return "" }
func (c *stubCmd) Usage() string                  { return "wellness " + c.name }
func (c *stubCmd) NeedsSeed() bool                { return c.seeded }
func (c *stubCmd) RegisterFlags(fs *flag.FlagSet) {}
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, src seed.Source, args []string, out, errOut io.Writer) int {
	return 0
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	list := &stubCmd{name: "list", aliases: []string{"ls"}, seeded: true}
	run := &stubCmd{name: "run", seeded: true}
	for _, c := range []Command{list, run} {
		if err := r.Register(c); err != nil {
			t.Fatalf("Register(%s): %v", c.Name(), err)
		}
	}
	r.SetDefault("run")

	tests := []struct {
		name string
		want Command
	}{
		{"list", list},
		{"ls", list},
		{"LIST", list},
		{"", run},
		{"Run", run},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q) = %v, %v; want %s", tt.name, got, ok, tt.want.Name())
		}
	}
	if _, ok := r.Resolve("rm"); ok {
		t.Error("Resolve(rm) should fail")
	}
}

func TestRegistry_ResolveWithoutDefault(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubCmd{name: "version"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Resolve(""); ok {
		t.Error("empty name should not resolve without a default")
	}
}

func TestRegistry_RejectsClash(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubCmd{name: "list", aliases: []string{"ls"}}); err != nil {
		t.Fatal(err)
	}

	err := r.Register(&stubCmd{name: "lsx", aliases: []string{"LS"}})
	if err == nil || !strings.Contains(err.Error(), `already taken by "list"`) {
		t.Fatalf("expected alias clash, got %v", err)
	}
	if _, ok := r.Resolve("lsx"); ok {
		t.Error("a rejected command must not be partly registered")
	}
	if len(r.All()) != 1 {
		t.Errorf("expected 1 command, got %d", len(r.All()))
	}
}

func TestRegistry_Seeded(t *testing.T) {
	r := NewRegistry()
	for _, c := range []Command{
		&stubCmd{name: "script", seeded: true},
		&stubCmd{name: "help"},
		&stubCmd{name: "list", aliases: []string{"ls"}, seeded: true},
	} {
		if err := r.Register(c); err != nil {
			t.Fatal(err)
		}
	}

	got := strings.Join(r.Seeded(), ",")
	if got != "list,script" {
		t.Errorf("Seeded() = %q, want %q", got, "list,script")
	}
}

func TestDefaultRegistry_DefaultIsRun(t *testing.T) {
	c, ok := DefaultRegistry.Resolve("")
	if !ok || c.Name() != "run" {
		t.Fatalf("default command = %v, %v; want run", c, ok)
	}
}
