package criteria

import (
	"fmt"
	"io/fs"
)

// FileType is the file-type category selected by --type.
type FileType string

const (
	FileTypeFile        FileType = "f"
	FileTypeDirectory   FileType = "d"
	FileTypeSymlink     FileType = "l"
	FileTypeBlockDevice FileType = "b"
	FileTypeCharDevice  FileType = "c"
	FileTypePipe        FileType = "p"
	FileTypeSocket      FileType = "s"
)

// String is used both by fmt.Print and by Cobra in help text.
func (t *FileType) String() string {
	return string(*t)
}

// Set must have pointer receiver to validate and set the value.
func (t *FileType) Set(v string) error {
	switch FileType(v) {
	case FileTypeFile, FileTypeDirectory, FileTypeSymlink,
		FileTypeBlockDevice, FileTypeCharDevice, FileTypePipe, FileTypeSocket:
		*t = FileType(v)
		return nil
	default:
		return fmt.Errorf("must be one of f, d, l, b, c, p, or s")
	}
}

// Type is only used in help text.
func (t *FileType) Type() string {
	return "fileType"
}

// Matches reports whether the raw type bits of an entry (as returned by
// fs.DirEntry.Type or fs.FileMode.Type) belong to this category. Device, pipe
// and socket categories never match on platforms without those notions.
func (t FileType) Matches(mode fs.FileMode) bool {
	mode = mode.Type()
	switch t {
	case FileTypeFile:
		return mode == 0
	case FileTypeDirectory:
		return mode&fs.ModeDir != 0
	case FileTypeSymlink:
		return mode&fs.ModeSymlink != 0
	}

	if !specialFilesSupported {
		return false
	}

	switch t {
	case FileTypeBlockDevice:
		return mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0
	case FileTypeCharDevice:
		return mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0
	case FileTypePipe:
		return mode&fs.ModeNamedPipe != 0
	case FileTypeSocket:
		return mode&fs.ModeSocket != 0
	}
	return false
}
