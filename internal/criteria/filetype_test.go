package criteria

import (
	"io/fs"
	"testing"
)

func TestFileTypeSet(t *testing.T) {
	for _, v := range []string{"f", "d", "l", "b", "c", "p", "s"} {
		var ft FileType
		if err := ft.Set(v); err != nil {
			t.Errorf("FileType.Set(%q) unexpected error: %v", v, err)
		}
		if ft.String() != v {
			t.Errorf("FileType.String() = %q, want %q", ft.String(), v)
		}
	}

	for _, v := range []string{"", "x", "file", "F"} {
		var ft FileType
		if err := ft.Set(v); err == nil {
			t.Errorf("FileType.Set(%q) expected error, got nil", v)
		}
	}

	var ft FileType
	if ft.Type() != "fileType" {
		t.Errorf("FileType.Type() = %q, want %q", ft.Type(), "fileType")
	}
}

func TestFileTypeMatches(t *testing.T) {
	tests := []struct {
		name string
		ft   FileType
		mode fs.FileMode
		want bool
	}{
		{"regular file", FileTypeFile, 0, true},
		{"permission bits ignored", FileTypeFile, 0o755, true},
		{"directory is not file", FileTypeFile, fs.ModeDir, false},
		{"directory", FileTypeDirectory, fs.ModeDir | 0o755, true},
		{"symlink", FileTypeSymlink, fs.ModeSymlink, true},
		{"symlink is not file", FileTypeFile, fs.ModeSymlink, false},
		{"symlink is not directory", FileTypeDirectory, fs.ModeSymlink, false},
		{"irregular matches nothing", FileTypeFile, fs.ModeIrregular, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ft.Matches(tt.mode); got != tt.want {
				t.Errorf("FileType(%q).Matches(%v) = %v, want %v", tt.ft, tt.mode, got, tt.want)
			}
		})
	}
}
