//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package droptio

import (
	"os"

	"golang.org/x/sys/unix"
)

type unixPlatform struct{}

func newPlatform() platform { return unixPlatform{} }

func (unixPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlReadTermios)
	return err == nil
}

func (unixPlatform) termSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

func (unixPlatform) enableVirtualTerminal() bool { return true }
