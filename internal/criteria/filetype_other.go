//go:build !unix

package criteria

// Devices, pipes and sockets are not classified outside of POSIX systems.
const specialFilesSupported = false
