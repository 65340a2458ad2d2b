package task

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Path
		wantErr bool
	}{
		{"single index", []string{"0"}, Path{0}, false},
		{"separate args", []string{"0", "1", "2"}, Path{0, 1, 2}, false},
		{"dotted form", []string{"0.1.2"}, Path{0, 1, 2}, false},
		{"mixed", []string{"0.1", "2"}, Path{0, 1, 2}, false},
		{"empty args", nil, nil, false},
		{"negative index", []string{"-1"}, nil, true},
		{"not a number", []string{"abc"}, nil, true},
		{"trailing dot", []string{"0."}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePath(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParsePath(%v) = %v, want %v", tt.args, got, tt.want)
				}
			}
		})
	}
}

func TestPathString(t *testing.T) {
	if got := (Path{0, 1, 2}).String(); got != "0.1.2" {
		t.Errorf("String() = %q, want %q", got, "0.1.2")
	}
	if got := (Path{}).String(); got != "" {
		t.Errorf("String() on empty path = %q, want empty", got)
	}
}

func TestResolve(t *testing.T) {
	tr := tree(node("A", node("A1", node("A1a"))), node("B"))

	n, err := tr.Resolve(Path{0, 0, 0})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if n.Text != "A1a" {
		t.Errorf("Resolve: got %q, want A1a", n.Text)
	}

	if _, err := tr.Resolve(nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path: got %v, want ErrEmptyPath", err)
	}

	var pe *PathError
	if _, err := tr.Resolve(Path{0, 2}); !errors.As(err, &pe) {
		t.Fatalf("out of range: got %v, want *PathError", err)
	}
	if pe.Depth != 1 || pe.Index != 2 || pe.Count != 1 {
		t.Errorf("PathError fields: %+v", pe)
	}

	// The failing depth is named even when earlier segments resolve.
	if _, err := tr.Resolve(Path{1, 0}); !errors.As(err, &pe) {
		t.Fatalf("leaf descent: got %v, want *PathError", err)
	}
	if pe.Depth != 1 || pe.Count != 0 {
		t.Errorf("PathError fields for leaf descent: %+v", pe)
	}

	// Negative indices are out of range, not a panic. Paths built by
	// callers directly never go through ParsePath's filtering.
	if _, err := tr.Resolve(Path{-1}); !errors.As(err, &pe) {
		t.Fatalf("negative index: got %v, want *PathError", err)
	}
	if pe.Depth != 0 || pe.Index != -1 || pe.Count != 2 {
		t.Errorf("PathError fields for negative index: %+v", pe)
	}
	if _, err := tr.Resolve(Path{0, -3}); !errors.As(err, &pe) {
		t.Fatalf("nested negative index: got %v, want *PathError", err)
	}
	if pe.Depth != 1 || pe.Index != -3 {
		t.Errorf("PathError fields for nested negative index: %+v", pe)
	}
}

func TestWalkOrder(t *testing.T) {
	tr := tree(node("A", node("A1"), node("A2")), node("B"))

	var visited []string
	tr.Walk(func(p Path, n *Node) {
		visited = append(visited, p.String()+":"+n.Text)
	})

	want := []string{"0:A", "0.0:A1", "0.1:A2", "1:B"}
	if !sameOrder(visited, want) {
		t.Errorf("walk order: got %v, want %v", visited, want)
	}
}
