package seed

import (
	"context"
	"errors"
	"testing"

	"wellness/internal/taskstore"
)

func TestGenerator_Defaults(t *testing.T) {
	labels, err := NewGenerator().Labels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 30 {
		t.Fatalf("expected 30 labels, got %d", len(labels))
	}
	if labels[0] != "Task # 0" {
		t.Errorf("labels[0] = %q, want %q", labels[0], "Task # 0")
	}
	if labels[29] != "Task # 29" {
		t.Errorf("labels[29] = %q, want %q", labels[29], "Task # 29")
	}
}

func TestGenerator_CustomTemplate(t *testing.T) {
	g := Generator{Count: 2, Template: "Walk %d"}
	labels, err := g.Labels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 || labels[0] != "Walk 0" || labels[1] != "Walk 1" {
		t.Errorf("unexpected labels: %q", labels)
	}
}

func TestGenerator_PaddedTemplate(t *testing.T) {
	g := Generator{Count: 11, Template: "Task %03d (100%%)"}
	labels, err := g.Labels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if labels[10] != "Task 010 (100%)" {
		t.Errorf("labels[10] = %q", labels[10])
	}
}

func TestGenerator_ZeroCount(t *testing.T) {
	labels, err := Generator{Count: 0}.Labels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("expected no labels, got %q", labels)
	}
}

func TestGenerator_NegativeCount(t *testing.T) {
	_, err := Generator{Count: -1}.Labels(context.Background())
	if err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		tmpl string
		ok   bool
	}{
		{"Task # %d", true},
		{"%d", true},
		{"Task", false},
		{"Task %s", false},
		{"%d and %d", false},
		{"Task %03d", true},
		{"Day %-4d done", true},
		{"100%% day %d", true},
		{"100%% done", false},
		{"Task %", false},
		{"Task %5s", false},
		{"%[1]d", false},
	}
	for _, tt := range tests {
		err := ValidateTemplate(tt.tmpl)
		if tt.ok && err != nil {
			t.Errorf("ValidateTemplate(%q) = %v, want nil", tt.tmpl, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidTemplate) {
			t.Errorf("ValidateTemplate(%q) = %v, want ErrInvalidTemplate", tt.tmpl, err)
		}
	}
}

func TestBuild(t *testing.T) {
	got := Build([]string{"a", "b", "c"})
	want := []taskstore.Task{
		{ID: 0, Label: "a"},
		{ID: 1, Label: "b"},
		{ID: 2, Label: "c"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
