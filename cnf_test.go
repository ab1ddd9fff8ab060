package propcalc

import "testing"

// cnfClauses drains a CNF stream into a plain slice.
func cnfClauses(cnf *CNF) []Clause {
	var out []Clause
	for cnf.Valid() {
		out = append(out, cnf.Current())
		cnf.Advance()
	}
	return out
}

func TestCNFFlattensTopLevelAnd(t *testing.T) {
	c := NewCache()
	// Already in CNF: two one-literal clauses under a top-level And.
	f := mustParse(t, "a & b", c)

	clauses := cnfClauses(f.CNF())
	if len(clauses) != 2 {
		t.Fatalf("clause count = %d, want 2", len(clauses))
	}
	for _, cl := range clauses {
		if cl.Len() != 1 {
			t.Errorf("clause %v has %d literals, want 1", cl.Vars(), cl.Len())
		}
	}
}

func TestCNFOfSingleSubtreeEnumeratesItsFalsifyingRows(t *testing.T) {
	c := NewCache()
	// a | b has exactly one falsifying row: a=false, b=false.
	f := mustParse(t, "a | b", c)
	a, _ := c.Resolve("a")
	b, _ := c.Resolve("b")

	clauses := cnfClauses(f.CNF())
	if len(clauses) != 1 {
		t.Fatalf("clause count = %d, want 1", len(clauses))
	}
	cl := clauses[0]
	va, err := cl.Get(a)
	if err != nil || !va {
		t.Errorf("literal for a = (%v,%v), want (true,nil)", va, err)
	}
	vb, err := cl.Get(b)
	if err != nil || !vb {
		t.Errorf("literal for b = (%v,%v), want (true,nil)", vb, err)
	}
}

func TestCNFResultIsEquivalentToSource(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "(a -> b) & (b -> a)", c)

	cnfForm := FormulaFromClauseStream(f.CNF(), c)

	tt := f.Truthtable()
	for tt.Valid() {
		row := tt.Current()
		want, err := f.Eval(row.Assignment)
		if err != nil {
			t.Fatalf("Eval: unexpected error: %v", err)
		}
		got, err := cnfForm.Eval(row.Assignment)
		if err != nil {
			t.Fatalf("cnf Eval: unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("row %v: source=%v cnf=%v, want equal", row.Assignment.Vars(), want, got)
		}
		tt.Advance()
	}
}

func TestCNFConstantFalseIsEmptyClause(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "\\F", c)

	clauses := cnfClauses(f.CNF())
	if len(clauses) != 1 {
		t.Fatalf("clause count = %d, want 1", len(clauses))
	}
	if clauses[0].Len() != 0 {
		t.Errorf("clause has %d literals, want 0 (the empty clause)", clauses[0].Len())
	}
}

func TestCNFConstantTrueHasNoClauses(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "\\T", c)

	clauses := cnfClauses(f.CNF())
	if len(clauses) != 0 {
		t.Errorf("clause count = %d, want 0", len(clauses))
	}
}
