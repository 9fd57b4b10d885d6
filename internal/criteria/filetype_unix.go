//go:build unix

package criteria

const specialFilesSupported = true
