package posixmode

// Octal renders the special and permission bits of a raw mode word as a
// zero padded, four digit, base-8 string in the conventional chmod form,
// e.g. "0754" for rwxr-xr--. The file type bits take no part in the
// rendering, which bounds the value below 8^4 and keeps the width exact
// for every input.
func Octal(raw uint32) string {
	v := raw & (MaskSpecial | MaskPerm)

	var buf [4]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = '0' + byte(v&7)
		v >>= 3
	}

	return string(buf[:])
}
