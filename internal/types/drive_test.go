package types

import "testing"

func TestEntry_IsFolder(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     bool
	}{
		{"folder", MimeTypeFolder, true},
		{"document", "application/vnd.google-apps.document", false},
		{"plain file", "text/plain", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{MimeType: tt.mimeType}
			if got := e.IsFolder(); got != tt.want {
				t.Errorf("IsFolder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_ParentID(t *testing.T) {
	tests := []struct {
		name    string
		parents []string
		want    string
	}{
		{"single parent", []string{"p1"}, "p1"},
		{"multiple parents uses first", []string{"p1", "p2"}, "p1"},
		{"no parents", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{Parents: tt.parents}
			if got := e.ParentID(); got != tt.want {
				t.Errorf("ParentID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewEntryIndex(t *testing.T) {
	a := &Entry{ID: "a", Name: "Alpha"}
	b := &Entry{ID: "b", Name: "Beta"}
	index := NewEntryIndex([]*Entry{a, b})

	if len(index) != 2 {
		t.Fatalf("index has %d entries, want 2", len(index))
	}
	if index["a"] != a {
		t.Error("index[a] does not point at the original entry")
	}
	if _, ok := index["missing"]; ok {
		t.Error("index contains unknown id")
	}
}

func TestEntryIndex_FolderName(t *testing.T) {
	index := NewEntryIndex([]*Entry{
		{ID: "f1", Name: "Designs", MimeType: MimeTypeFolder},
	})

	if got := index.FolderName("f1"); got != "Designs" {
		t.Errorf("FolderName(f1) = %q, want %q", got, "Designs")
	}
	if got := index.FolderName("absent"); got != "" {
		t.Errorf("FolderName(absent) = %q, want empty", got)
	}
}
