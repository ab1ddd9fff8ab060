package propcalc

import (
	"bytes"
	"strings"
	"testing"
)

func TestDIMACSWriteReadRoundtrip(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "(a | ~b) & (b | c)", c)

	var buf bytes.Buffer
	if err := Write(&buf, f.CNF(), c, "round trip test"); err != nil {
		t.Fatalf("Write: unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "c round trip test\n") {
		t.Errorf("output does not start with the comment line: %q", out)
	}
	if !strings.Contains(out, "p cnf 3 2\n") {
		t.Errorf("output missing expected header line, got: %q", out)
	}

	c2 := NewCache()
	back := Read(&buf, c2)

	// DIMACS numbers variables; it has no notion of names. A variable
	// survives the round trip as whatever VarNr it was Packed under in
	// c, looked up again (not re-resolved by name) in c2.
	tt := f.Truthtable()
	for tt.Valid() {
		row := tt.Current()
		want, err := f.Eval(row.Assignment)
		if err != nil {
			t.Fatalf("Eval: unexpected error: %v", err)
		}

		mapped := NewAssignmentOn(nil)
		for _, v := range row.Assignment.Vars() {
			v2, err := c2.Unpack(c.Pack(v))
			if err != nil {
				t.Fatalf("Unpack: unexpected error: %v", err)
			}
			val, _ := row.Assignment.Get(v)
			mapped.Set(v2, val)
		}
		got, err := back.Eval(mapped)
		if err != nil {
			t.Fatalf("round-tripped Eval: unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("round trip mismatch: source=%v read-back=%v", want, got)
		}
		tt.Advance()
	}
}

func TestDIMACSWriteHeaderSkipsCounting(t *testing.T) {
	c := NewCache()
	f := mustParse(t, "a & b", c)

	var buf bytes.Buffer
	header := Header{Comments: []string{"explicit header"}, MaxVar: 99, NClauses: 2}
	if err := WriteHeader(&buf, f.CNF(), c, header); err != nil {
		t.Fatalf("WriteHeader: unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "p cnf 99 2\n") {
		t.Errorf("WriteHeader did not use the caller-supplied counts, got: %q", out)
	}
}

func TestDIMACSReaderHandlesCommentAndHeaderLines(t *testing.T) {
	c := NewCache()
	input := "c a leading comment\np cnf 2 2\n1 2 0\n-1 -2 0\n"
	r := NewDIMACSReader(strings.NewReader(input), c)

	var clauses []Clause
	for r.Valid() {
		clauses = append(clauses, r.Current())
		r.Advance()
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(clauses) != 2 {
		t.Fatalf("clause count = %d, want 2", len(clauses))
	}
	if clauses[0].Len() != 2 || clauses[1].Len() != 2 {
		t.Errorf("unexpected clause shapes: %v, %v", clauses[0].Vars(), clauses[1].Vars())
	}
}

func TestDIMACSSingleLineClauseLimitation(t *testing.T) {
	c := NewCache()
	// A clause spanning two physical lines is read as two independent
	// (wrong) one-literal clauses, per the documented limitation.
	input := "p cnf 2 1\n1\n2 0\n"
	r := NewDIMACSReader(strings.NewReader(input), c)

	var clauses []Clause
	for r.Valid() {
		clauses = append(clauses, r.Current())
		r.Advance()
	}
	if len(clauses) != 2 {
		t.Fatalf("clause count = %d, want 2 (the split-clause misparse)", len(clauses))
	}
}
