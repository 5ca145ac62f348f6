//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

func withoutSignals(_ int, fn func() error) error {
	return fn()
}
