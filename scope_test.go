package posixmode_test

import (
	"testing"

	"github.com/mwantia/posixmode"
)

// TestScopeMembership sweeps every permission bit combination and
// verifies set membership per scope against direct mask tests.
func TestScopeMembership(t *testing.T) {
	masks := map[posixmode.Permission][3]uint32{
		posixmode.Read:    {0400, 0040, 0004},
		posixmode.Write:   {0200, 0020, 0002},
		posixmode.Execute: {0100, 0010, 0001},
	}

	for raw := uint32(0); raw <= 0777; raw++ {
		scope := posixmode.ScopeOf(raw)
		sets := [3]posixmode.PermissionSet{scope.User, scope.Group, scope.Others}

		for p, triad := range masks {
			for i, set := range sets {
				if got, want := set.Contains(p), raw&triad[i] != 0; got != want {
					t.Fatalf("ScopeOf(%#o) scope %d Contains(%v) = %v, expected %v",
						raw, i, p, got, want)
				}
			}
		}
	}
}

// TestScopeCheckers verifies each scope checker only reads its own bit
// triad.
func TestScopeCheckers(t *testing.T) {
	cases := []struct {
		check posixmode.PermissionChecker
		raw   uint32
	}{
		{posixmode.HasUserPermission, 0700},
		{posixmode.HasGroupPermission, 0070},
		{posixmode.HasOthersPermission, 0007},
	}

	for i, tc := range cases {
		for _, p := range []posixmode.Permission{posixmode.Read, posixmode.Write, posixmode.Execute} {
			if !tc.check(p, tc.raw) {
				t.Errorf("checker %d denied %v for %#o", i, p, tc.raw)
			}
			// The complement leaves this scope's triad empty.
			if tc.check(p, 0777&^tc.raw) {
				t.Errorf("checker %d granted %v from a foreign triad", i, p)
			}
		}
	}
}

// TestPermissionsOf verifies the collection routine honors an arbitrary
// checker rather than any fixed scope.
func TestPermissionsOf(t *testing.T) {
	none := func(posixmode.Permission, uint32) bool { return false }
	if got := posixmode.PermissionsOf(none, 0777); got.Len() != 0 {
		t.Errorf("PermissionsOf(none) = %v, expected empty", got.Permissions())
	}

	onlyWrite := func(p posixmode.Permission, _ uint32) bool { return p == posixmode.Write }
	if got := posixmode.PermissionsOf(onlyWrite, 0); got != posixmode.NewPermissionSet(posixmode.Write) {
		t.Errorf("PermissionsOf(onlyWrite) = %v, expected {Write}", got.Permissions())
	}
}

func TestScopeEquality(t *testing.T) {
	if posixmode.ScopeOf(0754) != posixmode.ScopeOf(0100754) {
		t.Error("type bits changed scope resolution")
	}
	if posixmode.ScopeOf(0754) == posixmode.ScopeOf(0755) {
		t.Error("distinct permission bits resolved to equal scopes")
	}
}
