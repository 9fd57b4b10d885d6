package finder

import (
	"runtime"

	"github.com/jparise/ffind/internal/walker"
)

func isWindows() bool {
	return runtime.GOOS == "windows"
}

func walkerEntry(name string) walker.Entry {
	return walker.Entry{Path: name, Name: name, Depth: 1}
}
