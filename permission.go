package posixmode

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// Permission identifies one of the three POSIX access rights.
// Permissions are ordered by tag: Read < Write < Execute.
type Permission int

// Permission constants in their canonical order.
const (
	Read Permission = iota
	Write
	Execute
)

// permissions lists every Permission in ascending order.
var permissions = [...]Permission{Read, Write, Execute}

func (p Permission) String() string {
	switch p {
	case Read:
		return "read"
	case Write:
		return "write"
	case Execute:
		return "execute"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the permission as its string name.
func (p Permission) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a permission from its string name.
func (p *Permission) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := parsePermission(name)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

func parsePermission(name string) (Permission, error) {
	switch name {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	case "execute":
		return Execute, nil
	default:
		return Read, fmt.Errorf("posixmode: unknown permission %q", name)
	}
}

// PermissionSet is an immutable set over Permission. The zero value is the
// empty set; sets compare with ==.
type PermissionSet uint8

// NewPermissionSet builds a set containing the given permissions.
func NewPermissionSet(perms ...Permission) PermissionSet {
	var ps PermissionSet
	for _, p := range perms {
		ps = ps.With(p)
	}

	return ps
}

// Contains reports whether p is a member of the set.
func (ps PermissionSet) Contains(p Permission) bool {
	if p < Read || p > Execute {
		return false
	}

	return ps&(1<<uint(p)) != 0
}

// With returns a copy of the set with p added.
func (ps PermissionSet) With(p Permission) PermissionSet {
	if p < Read || p > Execute {
		return ps
	}

	return ps | 1<<uint(p)
}

// Len returns the number of permissions in the set.
func (ps PermissionSet) Len() int {
	return bits.OnesCount8(uint8(ps))
}

// Permissions returns the members of the set in ascending order.
func (ps PermissionSet) Permissions() []Permission {
	members := make([]Permission, 0, 3)
	for _, p := range permissions {
		if ps.Contains(p) {
			members = append(members, p)
		}
	}

	return members
}

// String renders the set as an rwx triad, e.g. "r-x".
func (ps PermissionSet) String() string {
	buf := [3]byte{'-', '-', '-'}
	if ps.Contains(Read) {
		buf[0] = 'r'
	}
	if ps.Contains(Write) {
		buf[1] = 'w'
	}
	if ps.Contains(Execute) {
		buf[2] = 'x'
	}

	return string(buf[:])
}

// MarshalJSON encodes the set as an array of permission names in
// ascending order.
func (ps PermissionSet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 3)
	for _, p := range ps.Permissions() {
		names = append(names, p.String())
	}

	return json.Marshal(names)
}

// UnmarshalJSON decodes a set from an array of permission names.
func (ps *PermissionSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	set := PermissionSet(0)
	for _, name := range names {
		p, err := parsePermission(name)
		if err != nil {
			return err
		}
		set = set.With(p)
	}

	*ps = set
	return nil
}
