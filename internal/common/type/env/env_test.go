package env

import (
	"errors"
	"testing"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
)

func TestDelegation(t *testing.T) {
	root := Root(nil)
	root.Bind(sym.New("x"), value.Int(1))

	child := New(root)
	grandchild := New(child)

	v, err := grandchild.Lookup(sym.New("X"))
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(value.Int(1)) {
		t.Fatalf("got %v", v)
	}

	if !grandchild.Contains(sym.Quoted("x")) {
		t.Fatal("x should be visible through the chain")
	}
}

func TestShadowing(t *testing.T) {
	root := Root(nil)
	root.Bind(sym.New("x"), value.Int(1))

	child := New(root)
	child.Bind(sym.New("x"), value.Int(2))

	v, _ := root.Lookup(sym.New("x"))
	if !v.Equal(value.Int(1)) {
		t.Fatalf("binding in a child changed its parent: %v", v)
	}

	v, _ = child.Lookup(sym.New("x"))
	if !v.Equal(value.Int(2)) {
		t.Fatalf("child binding not visible: %v", v)
	}
}

func TestUnbound(t *testing.T) {
	strict := New(Root(&Policy{}))

	_, err := strict.Lookup(sym.New("nope"))

	var ue *failure.UnboundSymbolError
	if !errors.As(err, &ue) {
		t.Fatalf("expected an unbound symbol error, got %v", err)
	}

	permissive := New(Root(&Policy{Permissive: true}))

	v, err := permissive.Lookup(sym.New("nope"))
	if err != nil || v != null.Null {
		t.Fatalf("expected NIL, got %v, %v", v, err)
	}

	if permissive.Contains(sym.New("nope")) {
		t.Fatal("permissive lookup should not bind anything")
	}
}

func TestModules(t *testing.T) {
	root := Root(nil)
	top := Tagged(root, "/tmp/a.lisp")
	inner := New(top)

	if root.Module() != "" || inner.Module() != "/tmp/a.lisp" {
		t.Fatalf("unexpected modules %q, %q", root.Module(), inner.Module())
	}
}

func TestImportIsSnapshot(t *testing.T) {
	from := Root(nil)
	from.Bind(sym.New("a"), value.Int(1))

	to := Root(nil)
	to.Import(from)

	from.Bind(sym.New("a"), value.Int(2))
	from.Bind(sym.New("b"), value.Int(3))

	v, _ := to.Lookup(sym.New("a"))
	if !v.Equal(value.Int(1)) {
		t.Fatalf("import should copy, got %v", v)
	}

	if to.Contains(sym.New("b")) {
		t.Fatal("later bindings should not appear")
	}
}
