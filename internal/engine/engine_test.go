package engine

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
)

func setup(t *testing.T, opts ...Option) (*T, *bytes.Buffer) {
	t.Helper()

	output := &bytes.Buffer{}

	opts = append([]Option{
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Output(output),
	}, opts...)

	e, err := New(opts...)
	if err != nil {
		t.Fatalf("unexpected error creating engine: %v", err)
	}

	return e, output
}

func check(t *testing.T, e *T, source, expected string) {
	t.Helper()

	c, err := e.Run(source)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", source, err)
	}

	if l := literal.String(c); l != expected {
		t.Fatalf("%q: expected %s, got %s", source, expected, l)
	}
}

func TestLibrary(t *testing.T) {
	e, _ := setup(t)

	check(t, e, "(len '(1 2 3))", "3")
	check(t, e, "(len NIL)", "0")
	check(t, e, "(pos 3 '(1 2 3))", "2")
	check(t, e, "(not NIL)", "1")
	check(t, e, "(not 1)", "NIL")
	check(t, e, "(and 1 2 3)", "1")
	check(t, e, "(and 1 0 3)", "NIL")
	check(t, e, "(or 0 NIL 3)", "1")
	check(t, e, "(or 0 NIL)", "NIL")
	check(t, e, "(apply + '(1 2 3))", "6")
}

func TestRandint(t *testing.T) {
	e, _ := setup(t)

	for i := 0; i < 50; i++ {
		c, err := e.Run("(randint 10)")
		if err != nil {
			t.Fatal(err)
		}

		if n := literal.String(c); len(n) > 2 || (len(n) == 2 && n != "10") {
			t.Fatalf("randint out of range: %s", n)
		}
	}
}

func TestMainPersists(t *testing.T) {
	e, output := setup(t)

	check(t, e, "(bind 'x 40)", "NIL")
	check(t, e, "(+ x 2)", "42")

	check(t, e, `(puts "x is " x)`, "NIL")

	if s := output.String(); s != "x is 40\n" {
		t.Fatalf("unexpected output %q", s)
	}

	c, err := e.Lookup("x")
	if err != nil || literal.String(c) != "40" {
		t.Fatalf("expected x to be 40, got %v (%v)", c, err)
	}
}

func TestNoBootstrap(t *testing.T) {
	e, _ := setup(t, NoBootstrap())

	_, err := e.Run("(len '(1 2))")

	var ue *failure.UnboundSymbolError
	if !errors.As(err, &ue) {
		t.Fatalf("expected len to be unbound, got %v", err)
	}
}

func TestCustomBootstrap(t *testing.T) {
	e, _ := setup(t, Bootstrap("(bind 'answer 42)"))

	check(t, e, "answer", "42")

	if _, err := New(Bootstrap("(bind 'x")); err == nil {
		t.Fatal("expected a syntax error from the library")
	}
}

func TestMaths(t *testing.T) {
	e, _ := setup(t)

	var ue *failure.UnboundSymbolError
	if _, err := e.Run("(sin 0)"); !errors.As(err, &ue) {
		t.Fatalf("expected sin to be unbound, got %v", err)
	}

	m, _ := setup(t, Maths(true))

	check(t, m, "(sin 0)", "0.0")
	check(t, m, "(< 1.99 (log 100) 2.01)", "1")
	check(t, m, "(> pi 3.14)", "1")
}

func TestPermissive(t *testing.T) {
	e, _ := setup(t, Permissive(true))

	check(t, e, "(+ 1 (car 2))", "3")
	check(t, e, "missing", "NIL")
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "main.mlsp")
	source := "; doubles\n(bind 'f (with '(x) '(* x 2)))\n(puts (f 21))\n"

	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	e, output := setup(t)

	if _, err := e.RunFile(path); err != nil {
		t.Fatal(err)
	}

	if s := output.String(); s != "42\n" {
		t.Fatalf("unexpected output %q", s)
	}

	var ie *failure.IOError
	if _, err := e.RunFile(filepath.Join(dir, "missing.mlsp")); !errors.As(err, &ie) {
		t.Fatalf("expected an i/o error, got %v", err)
	}
}

func TestModuleIdentities(t *testing.T) {
	e, _ := setup(t)

	if m := e.main.Module(); m != MainModule {
		t.Fatalf("main program belongs to %q", m)
	}

	if m := e.task.Globals().Module(); m != BootstrapModule {
		t.Fatalf("globals belong to %q", m)
	}

	n, _ := setup(t, NoBootstrap())
	if m := n.task.Globals().Module(); m != "" {
		t.Fatalf("globals without a library belong to %q", m)
	}
}
