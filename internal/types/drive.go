package types

// Entry represents one file or folder record from the shared-drive listing.
type Entry struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	MimeType          string   `json:"mimeType"`
	Parents           []string `json:"parents,omitempty"`
	CreatedTime       string   `json:"createdTime,omitempty"`
	ModifiedTime      string   `json:"modifiedTime,omitempty"`
	TrashedTime       string   `json:"trashedTime,omitempty"`
	LastModifyingUser string   `json:"lastModifyingUser,omitempty"`
	WebViewLink       string   `json:"webViewLink,omitempty"`

	// Derived during a run, never returned by the API.
	Path     string `json:"path,omitempty"`
	Location string `json:"location,omitempty"`
}

// MimeTypeFolder is the Drive mime type marking folder entries.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// IsFolder reports whether the entry is a folder.
func (e *Entry) IsFolder() bool {
	return e.MimeType == MimeTypeFolder
}

// ParentID returns the entry's primary parent identifier, or "" for items
// without parent references (the drive root itself, or items outside the
// listed corpus).
func (e *Entry) ParentID() string {
	if len(e.Parents) == 0 {
		return ""
	}
	return e.Parents[0]
}

// EntryIndex is an identifier-keyed lookup table over entries, built once per
// run and read-only afterwards.
type EntryIndex map[string]*Entry

// NewEntryIndex builds the id -> entry mapping used for parent lookups.
func NewEntryIndex(entries []*Entry) EntryIndex {
	index := make(EntryIndex, len(entries))
	for _, e := range entries {
		index[e.ID] = e
	}
	return index
}

// FolderName returns the name of the folder with the given ID, or "" when the
// ID is absent from the index.
func (idx EntryIndex) FolderName(folderID string) string {
	if e, ok := idx[folderID]; ok {
		return e.Name
	}
	return ""
}

// EntryListResult represents one page of a file listing.
type EntryListResult struct {
	Entries       []*Entry `json:"entries"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// SharedDrive represents shared-drive metadata.
type SharedDrive struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreatedTime string `json:"createdTime,omitempty"`
}
