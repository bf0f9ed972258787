package sym

import (
	"testing"
)

func TestCaseInsensitive(t *testing.T) {
	for _, tc := range []struct {
		a, b string
	}{
		{"bind", "BIND"},
		{"Bind", "bInD"},
		{"i/", "I/"},
		{"straße", "STRASSE"},
	} {
		if !New(tc.a).Equal(New(tc.b)) {
			t.Errorf("%s and %s should be the same symbol", tc.a, tc.b)
		}
	}
}

func TestQuotingIgnored(t *testing.T) {
	q := Quoted("f")
	u := New("F")

	if !q.Equal(u) || !u.Equal(q) {
		t.Fatal("quoting should not affect equality")
	}

	if q.Key() != u.Key() {
		t.Fatalf("keys differ: %s, %s", q.Key(), u.Key())
	}

	if q.Literal() != "'F" || u.Literal() != "F" {
		t.Fatalf("unexpected literals: %s, %s", q.Literal(), u.Literal())
	}
}

func TestUnquoted(t *testing.T) {
	q := Quoted("x")
	u := q.Unquoted()

	if u == q {
		t.Fatal("Unquoted should return a fresh symbol")
	}

	if u.Quoted() || !q.Quoted() {
		t.Fatal("Unquoted should clear the flag on the copy only")
	}
}
