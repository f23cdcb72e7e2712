//go:build !unix

package stat

import (
	"io/fs"
	"os"

	"github.com/mwantia/posixmode"
)

// Platforms without a numeric st_mode expose only the portable
// fs.FileMode view, which is converted back into POSIX numeric form
// before decoding.
func rawMode(path string, follow bool) (uint32, error) {
	var (
		info os.FileInfo
		err  error
	)
	if follow {
		info, err = os.Stat(path)
	} else {
		info, err = os.Lstat(path)
	}
	if err != nil {
		return 0, err
	}

	return numericMode(info.Mode()), nil
}

func numericMode(mode fs.FileMode) uint32 {
	raw := uint32(mode.Perm())

	if mode&fs.ModeSetuid != 0 {
		raw |= posixmode.MaskSetUID
	}
	if mode&fs.ModeSetgid != 0 {
		raw |= posixmode.MaskSetGID
	}
	if mode&fs.ModeSticky != 0 {
		raw |= posixmode.MaskSticky
	}

	// ModeCharDevice implies ModeDevice, so it must be tested first.
	switch {
	case mode&fs.ModeDir != 0:
		raw |= posixmode.TypeDirectory
	case mode&fs.ModeSymlink != 0:
		raw |= posixmode.TypeSymlink
	case mode&fs.ModeCharDevice != 0:
		raw |= posixmode.TypeCharDevice
	case mode&fs.ModeDevice != 0:
		raw |= posixmode.TypeBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		raw |= posixmode.TypeNamedPipe
	case mode&fs.ModeSocket != 0:
		raw |= posixmode.TypeSocket
	case mode&fs.ModeIrregular != 0:
		// No numeric equivalent; leave the type field empty so the
		// decoder reports FileTypeOther.
	default:
		raw |= posixmode.TypeFile
	}

	return raw
}
