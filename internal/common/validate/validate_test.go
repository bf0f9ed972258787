package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
)

func ints(n int) []cell.I {
	args := make([]cell.I, n)
	for i := range args {
		args[i] = value.Int(int64(i))
	}

	return args
}

func TestArityStrict(t *testing.T) {
	for _, tc := range []struct {
		n, min, max int
		ok          bool
	}{
		{2, 2, 2, true},
		{1, 2, 2, false},
		{3, 2, 2, false},
		{0, 0, Many, true},
		{9, 1, Many, true},
		{0, 1, Many, false},
		{3, 2, 3, true},
	} {
		_, err := Arity("TEST", ints(tc.n), tc.min, tc.max, false)

		var re *failure.RuntimeError
		if tc.ok && err != nil {
			t.Errorf("%d in [%d,%d]: unexpected %v", tc.n, tc.min, tc.max, err)
		} else if !tc.ok && (!errors.As(err, &re) || !strings.Contains(err.Error(), "incorrect number of arguments")) {
			t.Errorf("%d in [%d,%d]: expected an arity error, got %v", tc.n, tc.min, tc.max, err)
		}
	}
}

func TestArityPermissive(t *testing.T) {
	args, err := Arity("TEST", ints(1), 3, 3, true)
	if err != nil {
		t.Fatal(err)
	}

	if len(args) != 3 || args[1] != null.Null || args[2] != null.Null {
		t.Fatalf("expected NIL-filled arguments, got %v", args)
	}

	args, err = Arity("TEST", ints(5), 0, 2, true)
	if err != nil {
		t.Fatal(err)
	}

	if len(args) != 2 {
		t.Fatalf("expected excess arguments to be dropped, got %d", len(args))
	}
}

func TestKinds(t *testing.T) {
	_, err := Kinds("+", value.Numbers, []cell.I{value.Int(1), value.Float(2)})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Kinds("+", value.Numbers, []cell.I{value.Int(1), value.Str("a")})

	var ve *failure.ValueError
	if !errors.As(err, &ve) || ve.Primitive != "+" || ve.Expected != "numbers" {
		t.Fatalf("expected a value error naming +, got %v", err)
	}

	_, err = Kinds("i/", value.Integers, []cell.I{sym.New("x")})
	if !errors.As(err, &ve) || ve.Operand != "X" {
		t.Fatalf("expected a value error naming X, got %v", err)
	}
}

func TestRange(t *testing.T) {
	for _, tc := range []struct {
		min, max int
		want     string
	}{
		{1, 1, "1 argument"},
		{2, 2, "2 arguments"},
		{1, 2, "1 to 2 arguments"},
		{0, Many, "at least 0 arguments"},
	} {
		if got := Range(tc.min, tc.max); got != tc.want {
			t.Errorf("Range(%d, %d) = %q, want %q", tc.min, tc.max, got, tc.want)
		}
	}
}
