// Package stat obtains raw POSIX mode words from the filesystem and hands
// them to the decoder. It is the collaborator side of the library; the
// core package never touches the filesystem itself.
package stat

import (
	"fmt"

	"github.com/mwantia/posixmode"
)

// Mode stats path, following symbolic links, and returns its decoded
// mode.
func Mode(path string) (posixmode.Mode, error) {
	raw, err := rawMode(path, true)
	if err != nil {
		return posixmode.Mode{}, fmt.Errorf("posixmode: stat %s: %w", path, err)
	}

	return posixmode.Decode(raw), nil
}

// LinkMode stats path without following a final symbolic link, so links
// themselves report FileTypeSymlink.
func LinkMode(path string) (posixmode.Mode, error) {
	raw, err := rawMode(path, false)
	if err != nil {
		return posixmode.Mode{}, fmt.Errorf("posixmode: lstat %s: %w", path, err)
	}

	return posixmode.Decode(raw), nil
}
