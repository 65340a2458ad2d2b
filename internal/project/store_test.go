package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nibzard/tm/internal/task"
)

func newTestStore(t *testing.T) (*Store, *FileAdapter) {
	t.Helper()
	adapter, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter failed: %v", err)
	}
	return NewStore(adapter), adapter
}

func TestAdapterRoundTrip(t *testing.T) {
	_, adapter := newTestStore(t)

	tr := task.NewTree()
	if err := tr.Add(nil, "A"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(task.Path{0}, "A1"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Check(task.Path{0, 0}); err != nil {
		t.Fatal(err)
	}

	if err := adapter.Save("work", tr); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := adapter.Load("work")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Count() != 2 {
		t.Fatalf("loaded count: got %d, want 2", loaded.Count())
	}
	a := loaded.Tasks[0]
	if a.Text != "A" || !a.Completed {
		t.Errorf("root node: %+v", a)
	}
	if a.Subtasks[0].CompletedAt == nil {
		t.Error("CompletedAt lost in round trip")
	}
}

func TestAdapterLoadAbsentIsEmpty(t *testing.T) {
	_, adapter := newTestStore(t)

	tr, err := adapter.Load("never-saved")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tr.Count() != 0 {
		t.Errorf("absent project should load empty, got %d nodes", tr.Count())
	}
}

func TestAdapterRejectsInvalidDocument(t *testing.T) {
	_, adapter := newTestStore(t)

	dir := filepath.Join(adapter.Dir(), "projects")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	bad := `{"name": "broken", "tasks": [{"completed": true}]}`
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := adapter.Load("broken"); err == nil {
		t.Error("schema-invalid document should fail to load")
	}

	// Saving over the broken document must surface the read failure, not
	// quietly replace it with a fresh created_at.
	if err := adapter.Save("broken", task.NewTree()); err == nil {
		t.Error("saving over an invalid document should fail")
	}
}

func TestAdapterPreservesCreatedAt(t *testing.T) {
	_, adapter := newTestStore(t)

	if err := adapter.Save("work", task.NewTree()); err != nil {
		t.Fatal(err)
	}
	doc1, ok, err := adapter.readDocument("work")
	if err != nil || !ok {
		t.Fatalf("readDocument: ok=%v err=%v", ok, err)
	}

	tr := task.NewTree()
	if err := tr.Add(nil, "later"); err != nil {
		t.Fatal(err)
	}
	if err := adapter.Save("work", tr); err != nil {
		t.Fatal(err)
	}
	doc2, _, err := adapter.readDocument("work")
	if err != nil {
		t.Fatal(err)
	}
	if !doc2.CreatedAt.Equal(doc1.CreatedAt) {
		t.Errorf("created_at changed on resave: %v != %v", doc2.CreatedAt, doc1.CreatedAt)
	}
}

func TestValidateName(t *testing.T) {
	bad := []string{"", "  ", ".", "..", "a/b", `a\b`}
	for _, name := range bad {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) should fail", name)
		}
	}
	if err := validateName("work-2024"); err != nil {
		t.Errorf("validateName(work-2024) failed: %v", err)
	}
}

func TestStoreLifecycle(t *testing.T) {
	store, _ := newTestStore(t)

	// A fresh store has the default project current.
	current, err := store.Current()
	if err != nil {
		t.Fatal(err)
	}
	if current != DefaultProject {
		t.Fatalf("fresh current: got %q, want %q", current, DefaultProject)
	}

	if err := store.Create("work"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Create("work"); !errors.Is(err, ErrProjectExists) {
		t.Fatalf("duplicate Create: got %v, want ErrProjectExists", err)
	}
	if err := store.Create(DefaultProject); !errors.Is(err, ErrProjectExists) {
		t.Fatalf("Create(default): got %v, want ErrProjectExists", err)
	}

	if err := store.Switch("work"); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}
	if current, _ = store.Current(); current != "work" {
		t.Errorf("current after switch: got %q, want work", current)
	}
	if err := store.Switch("nope"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("Switch(nope): got %v, want ErrProjectNotFound", err)
	}

	// Deleting the current project falls back to default.
	if err := store.Delete("work"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if current, _ = store.Current(); current != DefaultProject {
		t.Errorf("current after deleting current: got %q, want %q", current, DefaultProject)
	}
	if err := store.Delete("work"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("Delete(absent): got %v, want ErrProjectNotFound", err)
	}
	if err := store.Delete(DefaultProject); !errors.Is(err, ErrDefaultProject) {
		t.Fatalf("Delete(default): got %v, want ErrDefaultProject", err)
	}
}

func TestStoreList(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Create("beta"); err != nil {
		t.Fatal(err)
	}
	if err := store.Create("alpha"); err != nil {
		t.Fatal(err)
	}
	if err := store.Switch("alpha"); err != nil {
		t.Fatal(err)
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var names []string
	currentCount := 0
	for _, info := range infos {
		names = append(names, info.Name)
		if info.Current {
			currentCount++
			if info.Name != "alpha" {
				t.Errorf("current marker on %q, want alpha", info.Name)
			}
		}
	}
	want := []string{"alpha", "beta", DefaultProject}
	if len(names) != len(want) {
		t.Fatalf("names: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names: got %v, want %v", names, want)
		}
	}
	if currentCount != 1 {
		t.Errorf("exactly one project should be current, got %d", currentCount)
	}
}

func TestStoreApplyPersists(t *testing.T) {
	store, adapter := newTestStore(t)

	if err := store.Apply(task.Operation{Kind: task.OpAdd, Text: "A"}); err != nil {
		t.Fatalf("Apply(add) failed: %v", err)
	}
	if err := store.Apply(task.Operation{Kind: task.OpCheck, Path: task.Path{0}}); err != nil {
		t.Fatalf("Apply(check) failed: %v", err)
	}

	tr, err := adapter.Load(DefaultProject)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Count() != 1 || !tr.Tasks[0].Completed {
		t.Errorf("persisted tree wrong: count=%d", tr.Count())
	}
}

func TestStoreApplyFailureDoesNotSave(t *testing.T) {
	store, adapter := newTestStore(t)

	if err := store.Apply(task.Operation{Kind: task.OpAdd, Text: "A"}); err != nil {
		t.Fatal(err)
	}
	err := store.Apply(task.Operation{Kind: task.OpDelete, Path: task.Path{5}})
	var pe *task.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("want *PathError, got %v", err)
	}

	tr, err := adapter.Load(DefaultProject)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Count() != 1 {
		t.Errorf("failed op must not change persisted state, count=%d", tr.Count())
	}
}

func TestProjectsAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Apply(task.Operation{Kind: task.OpAdd, Text: "default task"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Create("work"); err != nil {
		t.Fatal(err)
	}
	if err := store.Switch("work"); err != nil {
		t.Fatal(err)
	}
	if err := store.Apply(task.Operation{Kind: task.OpAdd, Text: "work task"}); err != nil {
		t.Fatal(err)
	}

	name, tr, err := store.CurrentTree()
	if err != nil {
		t.Fatal(err)
	}
	if name != "work" || tr.Count() != 1 || tr.Tasks[0].Text != "work task" {
		t.Errorf("work tree: name=%q count=%d", name, tr.Count())
	}

	other, err := store.Tree(DefaultProject)
	if err != nil {
		t.Fatal(err)
	}
	if other.Count() != 1 || other.Tasks[0].Text != "default task" {
		t.Errorf("default tree leaked: count=%d", other.Count())
	}
}
