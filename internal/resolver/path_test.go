package resolver

import (
	"testing"

	"github.com/driveaudit/driveaudit/internal/types"
)

func folder(id, name, parent string) *types.Entry {
	return &types.Entry{
		ID:       id,
		Name:     name,
		MimeType: types.MimeTypeFolder,
		Parents:  []string{parent},
	}
}

func file(id, name, parent string) *types.Entry {
	return &types.Entry{
		ID:       id,
		Name:     name,
		MimeType: "text/plain",
		Parents:  []string{parent},
	}
}

func TestResolve(t *testing.T) {
	// A is at the drive root; its parent (the drive itself) is not indexed.
	a := folder("A", "A", "drive-root")
	b := folder("B", "B", "A")
	c := file("C", "C", "B")
	index := types.NewEntryIndex([]*types.Entry{a, b, c})

	tests := []struct {
		name  string
		entry *types.Entry
		want  string
	}{
		{"file under nested folders", c, "A/B/"},
		{"folder under root folder", b, "A/"},
		{"entry at drive root", a, "/"},
		{"entry outside indexed set", file("X", "X", "unknown"), "/"},
		{"entry without parents", &types.Entry{ID: "Y", Name: "Y"}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.entry, index); got != tt.want {
				t.Errorf("Resolve(%s) = %q, want %q", tt.entry.ID, got, tt.want)
			}
		})
	}
}

func TestResolve_DeepChain(t *testing.T) {
	// Chain of 50 nested folders: d0 <- d0c <- d0cc <- ...
	entries := []*types.Entry{folder("d0", "d0", "drive-root")}
	prev := "d0"
	for i := 1; i < 50; i++ {
		id := prev + "c"
		entries = append(entries, folder(id, id, prev))
		prev = id
	}
	index := types.NewEntryIndex(entries)

	leaf := file("leaf", "leaf", prev)
	path := Resolve(leaf, index)

	if path == "/" {
		t.Fatal("deep chain resolved to root sentinel")
	}
	if path[:3] != "d0/" {
		t.Errorf("path should start at the chain root, got %q", path[:3])
	}
}

func TestResolve_CycleTerminates(t *testing.T) {
	// a and b reference each other; resolution must not loop
	a := folder("a", "a", "b")
	b := folder("b", "b", "a")
	index := types.NewEntryIndex([]*types.Entry{a, b})

	c := file("c", "c", "a")
	got := Resolve(c, index)

	// Both ancestors are visited exactly once
	if got != "b/a/" {
		t.Errorf("Resolve with cyclic parents = %q, want %q", got, "b/a/")
	}
}

func TestLocationURL(t *testing.T) {
	got := LocationURL("parent123")
	want := "https://drive.google.com/drive/folders/parent123"
	if got != want {
		t.Errorf("LocationURL() = %q, want %q", got, want)
	}
	if got := LocationURL(""); got != "" {
		t.Errorf("LocationURL(\"\") = %q, want empty", got)
	}
}

func TestAnnotate(t *testing.T) {
	a := folder("A", "Projects", "drive-root")
	c := file("C", "notes.txt", "A")
	entries := []*types.Entry{a, c}
	index := types.NewEntryIndex(entries)

	Annotate(entries, index)

	if c.Path != "Projects/" {
		t.Errorf("Path = %q, want %q", c.Path, "Projects/")
	}
	if c.Location != "https://drive.google.com/drive/folders/A" {
		t.Errorf("Location = %q", c.Location)
	}
	if a.Path != "/" {
		t.Errorf("root entry Path = %q, want /", a.Path)
	}
}
