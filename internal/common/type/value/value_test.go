package value

import (
	"errors"
	"math/big"
	"testing"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
)

func huge(text string) *T {
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		panic(text)
	}

	return Big(i)
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		text string
		want *T
	}{
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"+3", Int(3)},
		{"3.5", Float(3.5)},
		{"1e3", Float(1000)},
		{"-2.5E-1", Float(-0.25)},
		{"#FF", Int(255)},
		{"#ff", Int(255)},
		{"99999999999999999999", huge("99999999999999999999")},
		{"-99999999999999999999", huge("-99999999999999999999")},
		{"#FFFFFFFFFFFFFFFF", huge("18446744073709551615")},
		{`"hello"`, Str("hello")},
		{`"say \"hi\""`, Str(`say "hi"`)},
		{`"a\nb"`, Str("a\nb")},
		{`"a;b"`, Str("a;b")},
		{`""`, Str("")},
	} {
		got, err := Decode(tc.text)
		if err != nil {
			t.Errorf("Decode(%q): %v", tc.text, err)
			continue
		}

		if got.Kind() != tc.want.Kind() || !got.Equal(tc.want) {
			t.Errorf("Decode(%q) = %s, want %s", tc.text, got.Literal(), tc.want.Literal())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, text := range []string{
		"12a",
		"1.2.3",
		"1-2",
		"#",
		"#FG",
		"#-1",
		`"open`,
		`"bad \q escape"`,
		"symbol",
	} {
		_, err := Decode(text)

		var se *failure.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Decode(%q): expected a syntax error, got %v", text, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []*T{
		Int(0),
		Int(-12),
		huge("123456789012345678901234567890"),
		Float(0),
		Float(1),
		Float(3.5),
		Float(-0.125),
		Float(1e-7),
		Float(123456789),
		Float(1e20),
		Str(""),
		Str("plain"),
		Str("tab\there"),
		Str(`quote " and backslash \`),
		Str("semi;colon"),
	} {
		got, err := Decode(v.Literal())
		if err != nil {
			t.Errorf("Decode(%s): %v", v.Literal(), err)
			continue
		}

		if got.Kind() != v.Kind() || !got.Equal(v) {
			t.Errorf("%s did not survive a round trip: got %s", v.Literal(), got.Literal())
		}
	}
}

func TestPrintedForms(t *testing.T) {
	for _, tc := range []struct {
		v             *T
		str, literal string
	}{
		{Int(6), "6", "6"},
		{Float(3.5), "3.5", "3.5"},
		{Float(2), "2.0", "2.0"},
		{Str("a b"), "a b", `"a b"`},
	} {
		if got := tc.v.String(); got != tc.str {
			t.Errorf("String() = %q, want %q", got, tc.str)
		}

		if got := tc.v.Literal(); got != tc.literal {
			t.Errorf("Literal() = %q, want %q", got, tc.literal)
		}
	}
}

func TestTruth(t *testing.T) {
	for _, tc := range []struct {
		v    *T
		want bool
	}{
		{Int(0), false},
		{Float(0), false},
		{Str(""), false},
		{Int(-1), true},
		{Float(0.5), true},
		{Str("x"), true},
	} {
		if got := tc.v.Bool(); got != tc.want {
			t.Errorf("%s.Bool() = %v, want %v", tc.v.Literal(), got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Int(1).Equal(Float(1)) {
		t.Error("1 should equal 1.0")
	}

	if Int(1).Equal(Str("1")) {
		t.Error("1 should not equal \"1\"")
	}

	if _, ok := Int(1).Compare(Str("a")); ok {
		t.Error("numbers and strings should not be ordered")
	}

	if n, _ := Str("a").Compare(Str("b")); n >= 0 {
		t.Error("\"a\" should sort before \"b\"")
	}
}
