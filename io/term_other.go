//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package droptio

import "os"

// otherPlatform never reports a terminal; width falls back to $COLUMNS.
type otherPlatform struct{}

func newPlatform() platform { return otherPlatform{} }

func (otherPlatform) isTerminal(*os.File) bool           { return false }
func (otherPlatform) termSize(*os.File) (int, int, bool) { return 0, 0, false }
func (otherPlatform) enableVirtualTerminal() bool        { return false }
