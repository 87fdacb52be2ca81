package progress

import "fmt"

// MessageKind classifies a Message.
type MessageKind int

const (
	// Generic is any line no parser recognized.
	Generic MessageKind = iota
	// Hint is a "hint: " line.
	Hint
	// Warning is a "warning: " line.
	Warning
	// Error is an "error: " line that did not end the operation.
	Error
	// Remote is a "remote: " line without progress data.
	Remote
	// Completed is the closing summary of a successful merge or pull.
	Completed
)

var messageKindNames = map[MessageKind]string{
	Generic:   "generic",
	Hint:      "hint",
	Warning:   "warning",
	Error:     "error",
	Remote:    "remote",
	Completed: "completed",
}

func (k MessageKind) String() string {
	return enumString(messageKindNames, k)
}

// MarshalText implements encoding.TextMarshaler.
func (k MessageKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ConflictType is the reason a checkout refused to touch a path.
type ConflictType int

const (
	// TrackedFileOverwrite means local changes to a tracked file would be overwritten.
	TrackedFileOverwrite ConflictType = iota
	// UntrackedFileOverwrite means an untracked file would be overwritten.
	UntrackedFileOverwrite
	// UntrackedFileRemove means an untracked file would be removed.
	UntrackedFileRemove
	// SparseFileOverwrite means a sparse checkout update would overwrite the file.
	SparseFileOverwrite
	// SparseFileRemove means a sparse checkout update would remove the file.
	SparseFileRemove
	// NotUpToDate means the index entry is not up to date.
	NotUpToDate
	// WouldLoseUntracked means untracked files would be lost.
	WouldLoseUntracked
)

var conflictTypeNames = map[ConflictType]string{
	TrackedFileOverwrite:   "tracked_file_overwrite",
	UntrackedFileOverwrite: "untracked_file_overwrite",
	UntrackedFileRemove:    "untracked_file_remove",
	SparseFileOverwrite:    "sparse_file_overwrite",
	SparseFileRemove:       "sparse_file_remove",
	NotUpToDate:            "not_up_to_date",
	WouldLoseUntracked:     "would_lose_untracked",
}

func (c ConflictType) String() string {
	return enumString(conflictTypeNames, c)
}

// MarshalText implements encoding.TextMarshaler.
func (c ConflictType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MergeConflictKind is the shape of a merge conflict line.
type MergeConflictKind int

const (
	// ContentConflict is "CONFLICT (content)" or "(add/add)".
	ContentConflict MergeConflictKind = iota
	// DeleteConflict is "CONFLICT (modify/delete)" or "(delete/modify)".
	DeleteConflict
	// RenameConflict is one of the "CONFLICT (rename/...)" forms.
	RenameConflict
	// DirectoryFileConflict is "CONFLICT (file/directory)" or "(directory/file)".
	DirectoryFileConflict
	// DirectoryRenameSplit is "CONFLICT (directory rename split)".
	DirectoryRenameSplit
	// ImplicitDirectoryRename is "CONFLICT (implicit dir rename)".
	ImplicitDirectoryRename
	// UnknownConflict is any other "CONFLICT" line. Its path is "(unknown)".
	UnknownConflict
)

var mergeConflictKindNames = map[MergeConflictKind]string{
	ContentConflict:         "content",
	DeleteConflict:          "delete",
	RenameConflict:          "rename",
	DirectoryFileConflict:   "directory_file",
	DirectoryRenameSplit:    "directory_rename_split",
	ImplicitDirectoryRename: "implicit_directory_rename",
	UnknownConflict:         "unknown",
}

func (k MergeConflictKind) String() string {
	return enumString(mergeConflictKindNames, k)
}

// MarshalText implements encoding.TextMarshaler.
func (k MergeConflictKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UpdateKind classifies a FileUpdate.
type UpdateKind int

const (
	StagedModified UpdateKind = iota
	StagedDeleted
	StagedAdded
	UnstagedModified
	UnstagedDeleted
	Untracked
	Conflicted
)

var updateKindNames = map[UpdateKind]string{
	StagedModified:   "staged_modified",
	StagedDeleted:    "staged_deleted",
	StagedAdded:      "staged_added",
	UnstagedModified: "unstaged_modified",
	UnstagedDeleted:  "unstaged_deleted",
	Untracked:        "untracked",
	Conflicted:       "conflicted",
}

func (k UpdateKind) String() string {
	return enumString(updateKindNames, k)
}

// MarshalText implements encoding.TextMarshaler.
func (k UpdateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UpdateAction is how a submodule was moved to its new commit.
type UpdateAction int

const (
	CheckedOut UpdateAction = iota
	Merged
	Rebased
)

var updateActionNames = map[UpdateAction]string{
	CheckedOut: "checked_out",
	Merged:     "merged",
	Rebased:    "rebased",
}

func (a UpdateAction) String() string {
	return enumString(updateActionNames, a)
}

// MarshalText implements encoding.TextMarshaler.
func (a UpdateAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func enumString[K ~int](names map[K]string, k K) string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}
