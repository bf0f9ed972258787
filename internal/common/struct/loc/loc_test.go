package loc

import "testing"

func TestString(t *testing.T) {
	if s := New("<stdin>", 3).String(); s != "<stdin>:3" {
		t.Fatalf("unexpected location %q", s)
	}

	if s := New("boot", 0).String(); s != "boot" {
		t.Fatalf("unexpected location %q", s)
	}
}
