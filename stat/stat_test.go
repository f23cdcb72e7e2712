//go:build unix

package stat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwantia/posixmode"
)

func TestModeRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")

	if err := os.WriteFile(path, []byte("stat me"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// Chmod after creation so the umask cannot interfere.
	if err := os.Chmod(path, 0754); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	mode, err := Mode(path)
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}

	if mode.Type != posixmode.FileTypeFile {
		t.Errorf("Type = %v, expected %v", mode.Type, posixmode.FileTypeFile)
	}
	if got := mode.Octal(); got != "0754" {
		t.Errorf("Octal() = %q, expected %q", got, "0754")
	}
	if got := mode.String(); got != "-rwxr-xr--" {
		t.Errorf("String() = %q, expected %q", got, "-rwxr-xr--")
	}
}

func TestModeDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.Chmod(tmpDir, 0755); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	mode, err := Mode(tmpDir)
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}

	if mode.Type != posixmode.FileTypeDirectory {
		t.Errorf("Type = %v, expected %v", mode.Type, posixmode.FileTypeDirectory)
	}
	if got := mode.Scope.User; got != posixmode.NewPermissionSet(posixmode.Read, posixmode.Write, posixmode.Execute) {
		t.Errorf("user permissions = %v, expected rwx", got.Permissions())
	}
}

func TestLinkModeSymlink(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target.txt")
	link := filepath.Join(tmpDir, "link")

	if err := os.WriteFile(target, []byte("target"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	// Without following, the link itself is reported.
	mode, err := LinkMode(link)
	if err != nil {
		t.Fatalf("LinkMode failed: %v", err)
	}
	if mode.Type != posixmode.FileTypeSymlink {
		t.Errorf("LinkMode Type = %v, expected %v", mode.Type, posixmode.FileTypeSymlink)
	}

	// Following resolves to the target.
	mode, err = Mode(link)
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if mode.Type != posixmode.FileTypeFile {
		t.Errorf("Mode Type = %v, expected %v", mode.Type, posixmode.FileTypeFile)
	}
}

func TestModeSpecialBits(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sticky")

	if err := os.Mkdir(path, 0777); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.Chmod(path, 0777|os.ModeSticky); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	mode, err := Mode(path)
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}

	if !mode.Sticky {
		t.Error("sticky bit not reported")
	}
	if got := mode.String(); got != "drwxrwxrwt" {
		t.Errorf("String() = %q, expected %q", got, "drwxrwxrwt")
	}
}

func TestModeNotExist(t *testing.T) {
	if _, err := Mode(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Mode succeeded on a missing path")
	}
	if _, err := LinkMode(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LinkMode succeeded on a missing path")
	}
}
