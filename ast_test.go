package propcalc

import "testing"

func mustParse(t *testing.T, src string, domain Domain) Formula {
	t.Helper()
	f, err := Parse(src, domain)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	return f
}

func TestEvalShortCircuitsAnd(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "a & b", c)
	a, _ := c.Resolve("a")

	asg := NewAssignmentOn([]VarRef{a})
	asg.Set(a, false)
	val, err := f.Eval(asg) // b is missing from asg; must never be looked up
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val {
		t.Error("false & b = true, want false")
	}
}

func TestEvalShortCircuitsOr(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "a | b", c)
	a, _ := c.Resolve("a")

	asg := NewAssignmentOn([]VarRef{a})
	asg.Set(a, true)
	val, err := f.Eval(asg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !val {
		t.Error("true | b = false, want true")
	}
}

func TestEvalMissingVariableIsOutOfRange(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "a & b", c)
	a, _ := c.Resolve("a")

	asg := NewAssignmentOn([]VarRef{a})
	asg.Set(a, true) // b still missing, and now must be evaluated
	if _, err := f.Eval(asg); err != ErrOutOfRange {
		t.Errorf("Eval with missing b = %v, want ErrOutOfRange", err)
	}
}

func TestEvalConnectives(t *testing.T) {
	c := NewCache()
	a, _ := c.Resolve("a")
	b, _ := c.Resolve("b")

	cases := []struct {
		src  string
		a, b bool
		want bool
	}{
		{"a -> b", true, false, false},
		{"a -> b", false, false, true},
		{"a <-> b", true, true, true},
		{"a <-> b", true, false, false},
		{"a ^ b", true, false, true},
		{"a ^ b", true, true, false},
	}
	for _, tc := range cases {
		f := mustParse(t, tc.src, c)
		asg := NewAssignmentOn([]VarRef{a, b})
		asg.Set(a, tc.a)
		asg.Set(b, tc.b)
		got, err := f.Eval(asg)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.src, err)
		}
		if got != tc.want {
			t.Errorf("%q with a=%v,b=%v = %v, want %v", tc.src, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimplifyConstantFolding(t *testing.T) {
	c := NewCache()
	a, _ := c.Resolve("a")

	cases := map[string]string{
		"a & b":   "[b]",
		"b & a":   "[b]",
		"a | b":   "\\T",
		"~a":      "\\F",
		"a -> b":  "[b]",
		"b -> a":  "\\T",
		"a <-> b": "[b]",
		"a ^ b":   "~[b]",
	}
	for src, want := range cases {
		f := mustParse(t, src, c)
		asg := NewAssignmentOn([]VarRef{a})
		asg.Set(a, true)
		got := f.Simplify(asg).ToPostfix()
		wantFm := mustParse(t, want, c)
		if got != wantFm.ToPostfix() {
			t.Errorf("Simplify(%q, a=true) = %q, want %q", src, got, wantFm.ToPostfix())
		}
	}
}

func TestSimplifyDoubleNegation(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "~~a", c)
	got := f.Simplify(EmptyAssignment()).ToPostfix()
	if got != "[a]" {
		t.Errorf("Simplify(~~a) = %q, want %q", got, "[a]")
	}

	f3 := mustParse(t, "~~~a", c)
	got3 := f3.Simplify(EmptyAssignment()).ToPostfix()
	if got3 != "[a] ~" {
		t.Errorf("Simplify(~~~a) = %q, want %q", got3, "[a] ~")
	}
}

func TestSimplifyLeavesUnassignedVariables(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "a & b", c)
	got := f.Simplify(EmptyAssignment()).ToPostfix()
	if got != f.ToPostfix() {
		t.Errorf("Simplify with empty assignment changed the formula: %q vs %q", got, f.ToPostfix())
	}
}
