package exam

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractWholeInput(t *testing.T) {
	got, err := Extract(`  {"a": 1, "b": {"c": 2}}  `)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := map[string]any{"a": float64(1), "b": map[string]any{"c": float64(2)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractFromNoise(t *testing.T) {
	got, err := Extract(`noise {"a":1} more noise`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractFencedBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"json tag", "Here is the exam:\n```json\n{\"a\": 1}\n```\nLet me know if you need changes."},
		{"bare fence", "Sure!\n```\n{\"a\": 1}\n```\ntrailing prose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.input)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			want := map[string]any{"a": float64(1)}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestExtractSkipsBrokenFence(t *testing.T) {
	// The first fenced block holds truncated JSON; the next block parses.
	input := "```json\n{\"broken\": \n```\nsecond attempt:\n```json\n{\"a\": 1}\n```"
	got, err := Extract(input)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractNestedBraces(t *testing.T) {
	got, err := Extract(`prefix {"sections":[{"questions":[{"n":1}]}]} suffix`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", got)
	}
	if _, ok := m["sections"]; !ok {
		t.Error("expected sections key in extracted object")
	}
}

func TestExtractFailure(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"prose only", "I could not generate the exam, sorry."},
		{"unbalanced brace", "look: { this never closes"},
		{"invalid span", "junk {not json} junk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.input)
			if !errors.Is(err, ErrNoJSON) {
				t.Errorf("expected ErrNoJSON, got %v", err)
			}
		})
	}
}
