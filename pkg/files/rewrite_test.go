package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedDatabase.js")
	Write(path, "area: 10\n")

	Rewrite(path, strings.ToUpper)

	if contents := Read(path); contents != "AREA: 10\n" {
		t.Fatal("unexpected contents:", contents)
	}
}

func TestBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedDatabase.js")
	Write(path, "original")

	backup := Backup(path)
	defer os.Remove(backup)

	if contents := Read(backup); contents != "original" {
		t.Fatal("unexpected backup contents:", contents)
	}
}
