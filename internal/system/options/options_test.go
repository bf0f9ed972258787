package options

import (
	"testing"
)

func TestFlags(t *testing.T) {
	o, err := Parse([]string{"-P", "-m", "-c", "settings.yaml", "prog.mlsp"})
	if err != nil {
		t.Fatal(err)
	}

	if !o.Permissive || !o.Maths || o.Parse || o.NoBootstrap || o.Debug {
		t.Fatalf("unexpected flags %+v", o)
	}

	if o.Config != "settings.yaml" || o.Script != "prog.mlsp" {
		t.Fatalf("unexpected arguments %+v", o)
	}

	if o.Interactive {
		t.Fatal("a script should never be run interactively")
	}
}

func TestLongFlags(t *testing.T) {
	o, err := Parse([]string{
		"--parse", "--no-bootstrap", "--debug", "--bootstrap=lib.mlsp", "prog.mlsp",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !o.Parse || !o.NoBootstrap || !o.Debug || o.Bootstrap != "lib.mlsp" {
		t.Fatalf("unexpected flags %+v", o)
	}
}

func TestHelpAndVersion(t *testing.T) {
	o, err := Parse([]string{"-h"})
	if err != nil || !o.Help {
		t.Fatalf("expected help, got %+v (%v)", o, err)
	}

	o, err = Parse([]string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("expected version, got %+v (%v)", o, err)
	}
}

func TestBadArguments(t *testing.T) {
	if _, err := Parse([]string{"--unknown"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}

	if _, err := Parse([]string{"a.mlsp", "b.mlsp"}); err == nil {
		t.Fatal("expected an error for two scripts")
	}
}

func TestNoArguments(t *testing.T) {
	o, err := Parse(nil)
	if err != nil {
		t.Fatalf("a nil argv should mean no arguments: %v", err)
	}

	if o.Script != "" || o.Permissive || o.Help {
		t.Fatalf("unexpected options %+v", o)
	}
}
