//go:build aix || linux || solaris

package droptio

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
