package parse

import (
	"regexp"
	"strings"

	"github.com/jmgilman/go/gitcli/progress"
)

// UnknownConflictPath is reported for CONFLICT lines that no specific
// pattern recognizes, typically directory-level conflicts.
const UnknownConflictPath = "(unknown)"

type conflictPattern struct {
	kind    progress.MergeConflictKind
	pattern *regexp.Regexp
}

// Each pattern captures the conflicted path as "file".
var conflictPatterns = []conflictPattern{
	{
		kind:    progress.ContentConflict,
		pattern: regexp.MustCompile(`^CONFLICT \((?:content|add/add)\): Merge conflict in (?P<file>.+)$`),
	},
	{
		kind:    progress.DeleteConflict,
		pattern: regexp.MustCompile(`^CONFLICT \((?:modify/delete|delete/modify)\): (?P<file>.+?) deleted in `),
	},
	{
		kind:    progress.RenameConflict,
		pattern: regexp.MustCompile(`^CONFLICT \(rename/[a-z]+\): (?:Rename "?)?(?P<file>[^"]+?)"?(?: renamed to |->)`),
	},
	{
		kind:    progress.DirectoryFileConflict,
		pattern: regexp.MustCompile(`^CONFLICT \((?:file/directory|directory/file)\): (?:There is a directory with name |directory in the way of )(?P<file>\S+)`),
	},
	{
		kind:    progress.DirectoryRenameSplit,
		pattern: regexp.MustCompile(`^CONFLICT \(directory rename split\): Unclear where to rename (?P<file>.+?) to;`),
	},
	{
		kind:    progress.ImplicitDirectoryRename,
		pattern: regexp.MustCompile(`^CONFLICT \(implicit dir rename\): Existing file/dir at (?P<file>.+?) in the way of implicit directory rename`),
	},
}

// ClassifyConflict recognizes a merge conflict line. Lines that start with
// "CONFLICT" but match no known shape are reported as UnknownConflict with
// the path UnknownConflictPath.
func ClassifyConflict(line string) (progress.MergeConflict, bool) {
	if !strings.HasPrefix(line, "CONFLICT") {
		return progress.MergeConflict{}, false
	}
	for _, p := range conflictPatterns {
		if g := Groups(p.pattern, line); g != nil {
			return progress.MergeConflict{Path: g["file"], Kind: p.kind}, true
		}
	}
	return progress.MergeConflict{Path: UnknownConflictPath, Kind: progress.UnknownConflict}, true
}
