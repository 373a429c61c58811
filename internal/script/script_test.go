package script

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"wellness/internal/seed"
	"wellness/internal/session"
)

func TestParse(t *testing.T) {
	src := `# morning
check 1

close 0
uncheck 1
water
WATER reset
list
`
	ops, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Op{
		{Kind: Check, ID: 1, Line: 2},
		{Kind: Close, ID: 0, Line: 4},
		{Kind: Uncheck, ID: 1, Line: 5},
		{Kind: Water, Line: 6},
		{Kind: WaterReset, Line: 7},
		{Kind: List, Line: 8},
	}
	if len(ops) != len(want) {
		t.Fatalf("expected %d ops, got %d: %+v", len(want), len(ops), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %+v, want %+v", i, ops[i], want[i])
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		msg  string
	}{
		{"check", 1, "check needs exactly one task id"},
		{"list\nclose x", 2, "invalid task id: x"},
		{"water now", 1, "unexpected argument to water: now"},
		{"\n\nsnooze 3", 3, "unknown op: snooze"},
		{"list all", 1, "list takes no arguments"},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.src))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", tt.src, err)
			continue
		}
		if perr.Line != tt.line || perr.Msg != tt.msg {
			t.Errorf("Parse(%q) = line %d %q, want line %d %q", tt.src, perr.Line, perr.Msg, tt.line, tt.msg)
		}
	}
}

func TestApply_Scenario(t *testing.T) {
	s, err := session.New(context.Background(), seed.Generator{Count: 3, Template: "Task #%d"}, session.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops, err := Parse(strings.NewReader("check 1\nclose 0\nclose 1\nclose 1\ncheck 0\nlist\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	Apply(s, ops, &out)

	want := "   2  [ ] Task #2\n------------\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestApply_Water(t *testing.T) {
	s, err := session.New(context.Background(), seed.Generator{Count: 0}, session.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops, err := Parse(strings.NewReader("water\nwater\nwater reset\nwater\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Apply(s, ops, &bytes.Buffer{})

	if s.Water().Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Water().Count())
	}
}
