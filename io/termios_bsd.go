//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package droptio

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
