package parse

import (
	"testing"

	"github.com/jmgilman/go/gitcli/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyConflict(t *testing.T) {
	tests := []struct {
		name string
		line string
		want progress.MergeConflict
	}{
		{
			name: "content",
			line: "CONFLICT (content): Merge conflict in src/main.go",
			want: progress.MergeConflict{Path: "src/main.go", Kind: progress.ContentConflict},
		},
		{
			name: "add/add",
			line: "CONFLICT (add/add): Merge conflict in README.md",
			want: progress.MergeConflict{Path: "README.md", Kind: progress.ContentConflict},
		},
		{
			name: "modify/delete",
			line: "CONFLICT (modify/delete): old.txt deleted in theirs and modified in HEAD.  Version HEAD of old.txt left in tree.",
			want: progress.MergeConflict{Path: "old.txt", Kind: progress.DeleteConflict},
		},
		{
			name: "rename/delete",
			line: "CONFLICT (rename/delete): a.txt renamed to b.txt in HEAD, but deleted in theirs.",
			want: progress.MergeConflict{Path: "a.txt", Kind: progress.RenameConflict},
		},
		{
			name: "legacy rename/rename",
			line: `CONFLICT (rename/rename): Rename "a.txt"->"b.txt" in branch "HEAD" rename "a.txt"->"c.txt" in "theirs"`,
			want: progress.MergeConflict{Path: "a.txt", Kind: progress.RenameConflict},
		},
		{
			name: "file/directory",
			line: "CONFLICT (file/directory): directory in the way of docs from HEAD; moving it to docs~HEAD instead.",
			want: progress.MergeConflict{Path: "docs", Kind: progress.DirectoryFileConflict},
		},
		{
			name: "directory/file",
			line: "CONFLICT (directory/file): There is a directory with name docs in theirs. Adding docs as docs~HEAD",
			want: progress.MergeConflict{Path: "docs", Kind: progress.DirectoryFileConflict},
		},
		{
			name: "directory rename split",
			line: "CONFLICT (directory rename split): Unclear where to rename lib/ to; it was renamed to multiple other directories, with no destination getting a majority of the files.",
			want: progress.MergeConflict{Path: "lib/", Kind: progress.DirectoryRenameSplit},
		},
		{
			name: "implicit dir rename",
			line: "CONFLICT (implicit dir rename): Existing file/dir at new/x.txt in the way of implicit directory rename(s) putting the following path(s) there: old/x.txt.",
			want: progress.MergeConflict{Path: "new/x.txt", Kind: progress.ImplicitDirectoryRename},
		},
		{
			name: "unknown shape",
			line: "CONFLICT (submodule): Merge conflict in libs/core",
			want: progress.MergeConflict{Path: UnknownConflictPath, Kind: progress.UnknownConflict},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyConflict(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyConflict_NotConflict(t *testing.T) {
	for _, line := range []string{
		"Auto-merging src/main.go",
		"Automatic merge failed; fix conflicts and then commit the result.",
		"conflict (content): lowercase is not git's phrasing",
	} {
		_, ok := ClassifyConflict(line)
		assert.False(t, ok, line)
	}
}
