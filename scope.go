package posixmode

// PermissionChecker reports whether one permission is granted by a raw
// mode word. The three scope checkers below satisfy it, letting a single
// collection routine serve every scope.
type PermissionChecker func(p Permission, raw uint32) bool

// Permission bit masks keyed by Permission tag, one triad per scope.
var (
	userMasks  = [3]uint32{Read: MaskUserRead, Write: MaskUserWrite, Execute: MaskUserExecute}
	groupMasks = [3]uint32{Read: MaskGroupRead, Write: MaskGroupWrite, Execute: MaskGroupExecute}
	otherMasks = [3]uint32{Read: MaskOtherRead, Write: MaskOtherWrite, Execute: MaskOtherExecute}
)

func hasPermission(masks *[3]uint32, p Permission, raw uint32) bool {
	if p < Read || p > Execute {
		return false
	}

	return raw&masks[p] != 0
}

// HasUserPermission reports whether raw grants p to the owning user.
func HasUserPermission(p Permission, raw uint32) bool {
	return hasPermission(&userMasks, p, raw)
}

// HasGroupPermission reports whether raw grants p to the owning group.
func HasGroupPermission(p Permission, raw uint32) bool {
	return hasPermission(&groupMasks, p, raw)
}

// HasOthersPermission reports whether raw grants p to everyone else.
func HasOthersPermission(p Permission, raw uint32) bool {
	return hasPermission(&otherMasks, p, raw)
}

// PermissionsOf collects the permissions granted by raw according to
// check. Read, Write and Execute are tested in that order.
func PermissionsOf(check PermissionChecker, raw uint32) PermissionSet {
	var ps PermissionSet
	for _, p := range permissions {
		if check(p, raw) {
			ps = ps.With(p)
		}
	}

	return ps
}

// Scope holds the full permission bitmap of a mode word, one set per
// audience.
type Scope struct {
	User   PermissionSet `json:"user"`
	Group  PermissionSet `json:"group"`
	Others PermissionSet `json:"others"`
}

// ScopeOf resolves all three permission sets of a raw mode word.
func ScopeOf(raw uint32) Scope {
	return Scope{
		User:   PermissionsOf(HasUserPermission, raw),
		Group:  PermissionsOf(HasGroupPermission, raw),
		Others: PermissionsOf(HasOthersPermission, raw),
	}
}
