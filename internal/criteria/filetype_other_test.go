//go:build !unix

package criteria

import (
	"io/fs"
	"testing"
)

func TestFileTypeMatchesSpecialFilesUnsupported(t *testing.T) {
	modes := []fs.FileMode{fs.ModeDevice, fs.ModeDevice | fs.ModeCharDevice, fs.ModeNamedPipe, fs.ModeSocket}
	for _, ft := range []FileType{FileTypeBlockDevice, FileTypeCharDevice, FileTypePipe, FileTypeSocket} {
		for _, mode := range modes {
			if ft.Matches(mode) {
				t.Errorf("FileType(%q).Matches(%v) = true, want false", ft, mode)
			}
		}
	}
}
