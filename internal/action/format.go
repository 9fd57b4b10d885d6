package action

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultFormat prints the matched path.
const DefaultFormat = "%p"

// Format is a parsed print template.
//
//	%p  path            %f, %n  file name       %d  parent directory
//	%s  size in bytes   %h      human size      %t  modification time
//	%T  time of day     %D      date            %%  literal percent
type Format struct {
	raw      string
	segments []segment
	needInfo bool
}

type segment struct {
	literal string
	verb    byte // 0 for literal segments
}

// ParseFormat validates and parses a print template.
func ParseFormat(s string) (*Format, error) {
	f := &Format{raw: s}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			f.segments = append(f.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			lit.WriteByte(s[i])
			continue
		}
		if i+1 == len(s) {
			return nil, fmt.Errorf("%w %q: trailing %%", ErrInvalidFormat, s)
		}
		i++
		switch verb := s[i]; verb {
		case '%':
			lit.WriteByte('%')
		case 'p', 'f', 'n', 'd':
			flush()
			f.segments = append(f.segments, segment{verb: verb})
		case 's', 'h', 't', 'T', 'D':
			flush()
			f.segments = append(f.segments, segment{verb: verb})
			f.needInfo = true
		default:
			return nil, fmt.Errorf("%w %q: unknown placeholder %%%c", ErrInvalidFormat, s, verb)
		}
	}
	flush()

	return f, nil
}

// String returns the template text.
func (f *Format) String() string {
	return f.raw
}

// NeedsInfo reports whether rendering requires file metadata.
func (f *Format) NeedsInfo() bool {
	return f.needInfo
}

// IsDefault reports whether the template prints only the path.
func (f *Format) IsDefault() bool {
	return f.raw == DefaultFormat
}

// Render expands the template for path. info may be nil when NeedsInfo is
// false.
func (f *Format) Render(path string, info fs.FileInfo) string {
	var b strings.Builder
	for _, seg := range f.segments {
		switch seg.verb {
		case 0:
			b.WriteString(seg.literal)
		case 'p':
			b.WriteString(path)
		case 'f', 'n':
			b.WriteString(filepath.Base(path))
		case 'd':
			b.WriteString(filepath.Dir(path))
		case 's':
			b.WriteString(strconv.FormatInt(info.Size(), 10))
		case 'h':
			b.WriteString(humanize.IBytes(uint64(max(info.Size(), 0))))
		case 't':
			b.WriteString(localModTime(info).Format(time.DateTime))
		case 'T':
			b.WriteString(localModTime(info).Format(time.TimeOnly))
		case 'D':
			b.WriteString(localModTime(info).Format(time.DateOnly))
		}
	}
	return b.String()
}

func localModTime(info fs.FileInfo) time.Time {
	return info.ModTime().Local()
}
