package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "(puts 1)\n(puts 2)\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder

	err = Load(path, func(r io.Reader) (int, error) {
		n, err := io.Copy(&b, r)
		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "(puts 1)\n(puts 2)\n" {
		t.Fatalf("unexpected history %q", b.String())
	}
}

func TestLoadMissing(t *testing.T) {
	called := false

	err := Load(filepath.Join(t.TempDir(), "missing"), func(r io.Reader) (int, error) {
		called = true
		return 0, nil
	})
	if err != nil || called {
		t.Fatalf("a missing history file should be skipped, got %v", err)
	}
}

func TestPath(t *testing.T) {
	if p := Path("/tmp/h"); p != "/tmp/h" {
		t.Fatalf("expected the configured path, got %s", p)
	}

	t.Setenv("HOME", "/home/someone")

	if p := Path(""); p != filepath.Join("/home/someone", ".minimalisp_history") {
		t.Fatalf("unexpected default path %s", p)
	}
}
