package propcalc

// TruthtableRow pairs one valuation of a Formula's variables with the
// Formula's value under it.
type TruthtableRow struct {
	Assignment Assignment
	Value      bool
}

// Truthtable lazily enumerates every assignment over a Formula's own
// variables, in little-endian counter order starting all-false,
// paired with the Formula's value under each. A constant Formula (no
// variables) has exactly one row, the empty assignment.
type Truthtable struct {
	fm   Formula
	last Assignment
	done bool
}

// NewTruthtable returns a Truthtable over fm. Formula.Truthtable is
// the usual way to get one.
func NewTruthtable(fm Formula) *Truthtable {
	return &Truthtable{fm: fm, last: NewAssignmentOn(fm.Vars())}
}

func (t *Truthtable) Valid() bool {
	return !t.last.Overflown()
}

func (t *Truthtable) Current() TruthtableRow {
	val, err := t.fm.Eval(t.last)
	if err != nil {
		// last is total over fm.Vars(), the only variables fm.Eval can
		// ever ask for, so this can't happen.
		panic(err)
	}
	return TruthtableRow{Assignment: t.last.Clone(), Value: val}
}

func (t *Truthtable) Advance() {
	t.last.Increment()
}
