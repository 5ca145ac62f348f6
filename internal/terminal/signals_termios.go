//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// withoutSignals runs fn with ISIG cleared on fd and restores the previous mode afterwards.
// When fd is not a terminal fn runs unchanged.
func withoutSignals(fd int, fn func() error) error {
	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fn()
	}
	quiet := *old
	quiet.Lflag &^= unix.ISIG
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &quiet); err != nil {
		return fn()
	}
	defer func() { _ = unix.IoctlSetTermios(fd, ioctlWriteTermios, old) }()
	return fn()
}
