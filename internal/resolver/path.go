package resolver

import (
	"strings"

	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
)

// RootPath is the sentinel for entries directly under the drive root (or
// whose parent chain leaves the indexed set).
const RootPath = "/"

// Resolve builds the slash-delimited folder path for the entry by walking
// parent references through the index. The walk is iterative with a visited
// set, so a cyclic parent graph terminates with the path accumulated so far
// instead of looping.
func Resolve(entry *types.Entry, index types.EntryIndex) string {
	path := resolveFromParent(entry.ParentID(), index)
	if path == "" {
		return RootPath
	}
	return path
}

// resolveFromParent walks the ancestor chain starting at parentID, prepending
// each folder name. The base case is a parent outside the index: the drive
// root, or an item the listing never returned.
func resolveFromParent(parentID string, index types.EntryIndex) string {
	var segments []string
	visited := make(map[string]bool)

	for parentID != "" && !visited[parentID] {
		visited[parentID] = true

		parent, ok := index[parentID]
		if !ok {
			break
		}

		segments = append(segments, parent.Name)
		parentID = parent.ParentID()
	}

	if len(segments) == 0 {
		return ""
	}

	// Segments were collected child-first; the path reads root-first.
	var sb strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		sb.WriteString(segments[i])
		sb.WriteString("/")
	}
	return sb.String()
}

// LocationURL returns the folder URL for the entry's parent, or "" for
// entries without one.
func LocationURL(parentID string) string {
	if parentID == "" {
		return ""
	}
	return utils.FolderURLBase + parentID
}

// Annotate fills in the derived Path and Location fields for every entry.
func Annotate(entries []*types.Entry, index types.EntryIndex) {
	for _, e := range entries {
		e.Path = Resolve(e, index)
		e.Location = LocationURL(e.ParentID())
	}
}
