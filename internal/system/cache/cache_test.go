package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joe-jordan/minimalisp/internal/common/type/env"
)

func TestCanonical(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "lib.mlsp")
	if err := os.WriteFile(target, []byte("(bind 'x 1)"), 0o600); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(dir, "alias.mlsp")
	if err := os.Symlink(target, link); err != nil {
		t.Skip("symbolic links not supported:", err)
	}

	a, err := Canonical(target)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Canonical(link)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Fatalf("expected %s and %s to identify the same module", a, b)
	}

	if _, err := Canonical(filepath.Join(dir, "missing.mlsp")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCache(t *testing.T) {
	c := New()

	e := env.Tagged(env.Root(nil), "m")
	c.Set("m", e)

	if got, ok := c.Get("m"); !ok || got != e {
		t.Fatal("expected the cached environment")
	}

	c.Delete("m")

	if _, ok := c.Get("m"); ok || c.Size() != 0 {
		t.Fatal("expected the module to be removed")
	}
}
