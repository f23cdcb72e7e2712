//go:build unix

package stat

import "golang.org/x/sys/unix"

func rawMode(path string, follow bool) (uint32, error) {
	var st unix.Stat_t

	var err error
	if follow {
		err = unix.Stat(path, &st)
	} else {
		err = unix.Lstat(path, &st)
	}
	if err != nil {
		return 0, err
	}

	return uint32(st.Mode), nil
}
