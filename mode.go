// Package posixmode decodes POSIX numeric file modes, as returned by the
// stat family of system calls, into a structured view of file type,
// special bits and per-scope permissions, and renders modes back to their
// canonical octal form. Every function is pure and total over its input
// domain; values are immutable and safe to share between goroutines.
package posixmode

import "encoding/json"

// Mode is the decoded view of a POSIX numeric file mode. Every field is a
// pure function of Raw, so two Modes with equal Raw are equal in every
// other field as well.
type Mode struct {
	// Kind of filesystem object encoded in the type field
	Type FileType `json:"type"`

	// Special bits, orthogonal to the permission bits
	SetUID bool `json:"setuid"`
	SetGID bool `json:"setgid"`
	Sticky bool `json:"sticky"`

	// Per-scope permission sets
	Scope Scope `json:"scope"`

	// Original numeric mode the fields above were derived from
	Raw uint32 `json:"raw"`
}

// Decode assembles the structured view of a raw mode word. It succeeds
// for any input; unrecognized type fields classify as FileTypeOther.
func Decode(raw uint32) Mode {
	return Mode{
		Type:   FileTypeOf(raw),
		SetUID: HasSetUID(raw),
		SetGID: HasSetGID(raw),
		Sticky: HasSticky(raw),
		Scope:  ScopeOf(raw),
		Raw:    raw,
	}
}

// Marshal provides JSON serialization for Mode.
func (m Mode) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// Unmarshal provides JSON deserialization for Mode.
func (m *Mode) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}

// Octal returns the canonical four digit octal rendering of the mode.
func (m Mode) Octal() string {
	return Octal(m.Raw)
}

// String renders the mode in Unix ls -l form.
// Example: "drwxr-xr-x" for a directory with 755 permissions. SetUID and
// setGID substitute s (or S without execute) on the user and group
// execute slots, the sticky bit t (or T) on the others slot.
func (m Mode) String() string {
	var buf [10]byte
	buf[0] = m.Type.char()

	sets := [3]PermissionSet{m.Scope.User, m.Scope.Group, m.Scope.Others}
	special := [3]bool{m.SetUID, m.SetGID, m.Sticky}
	withExec := [3]byte{'s', 's', 't'}
	withoutExec := [3]byte{'S', 'S', 'T'}

	for i, ps := range sets {
		w := 1 + i*3

		buf[w] = '-'
		if ps.Contains(Read) {
			buf[w] = 'r'
		}

		buf[w+1] = '-'
		if ps.Contains(Write) {
			buf[w+1] = 'w'
		}

		switch {
		case special[i] && ps.Contains(Execute):
			buf[w+2] = withExec[i]
		case special[i]:
			buf[w+2] = withoutExec[i]
		case ps.Contains(Execute):
			buf[w+2] = 'x'
		default:
			buf[w+2] = '-'
		}
	}

	return string(buf[:])
}
