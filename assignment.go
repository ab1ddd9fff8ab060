package propcalc

// Assignment is a total, ordered valuation of a fixed list of
// variables. Iterating it as a little-endian binary counter (via
// Increment) enumerates every valuation over those variables exactly
// once, starting from all-false; Overflown reports that the counter
// has wrapped back around and no more valuations remain.
type Assignment struct {
	VarMap
	overflow bool
}

// NewAssignmentOn returns the all-false Assignment over vars, ready
// to be driven by Increment.
func NewAssignmentOn(vars []VarRef) Assignment {
	return Assignment{VarMap: NewVarMap(vars)}
}

// EmptyAssignment returns the sentinel Assignment over no variables at
// all, already Overflown. Unlike NewAssignmentOn(nil) (which is valid
// and has exactly one valuation, the empty one), this is meant to
// stand for "no assignment" wherever that distinction matters.
func EmptyAssignment() Assignment {
	return Assignment{overflow: true}
}

// Overflown reports whether Increment has wrapped the counter back to
// all-false; once true, the Assignment no longer represents a fresh
// valuation.
func (a Assignment) Overflown() bool {
	return a.overflow
}

// Increment advances the Assignment to the next valuation in
// little-endian binary counter order: it flips the lowest-order false
// bit to true and clears every lower bit that was true (the carry
// chain). Incrementing an Assignment over zero variables, or one
// whose every bit is already true, sets Overflown.
func (a *Assignment) Increment() {
	for _, v := range a.order {
		if !a.vals[v] {
			a.vals[v] = true
			return
		}
		a.vals[v] = false
	}
	a.overflow = true
}

// Negate returns the bitwise complement of a: every variable's value
// flipped, same order, same Overflown state.
func (a Assignment) Negate() Assignment {
	out := Assignment{VarMap: NewVarMap(a.order), overflow: a.overflow}
	for _, v := range a.order {
		out.vals[v] = !a.vals[v]
	}
	return out
}

// Clone returns an independent copy of a: mutating the copy (via
// Increment or Set) never affects the original.
func (a Assignment) Clone() Assignment {
	return Assignment{VarMap: a.VarMap.clone(), overflow: a.overflow}
}

// VarSet returns the Assignment's variables as an unordered set.
func (a Assignment) VarSet() map[VarRef]struct{} {
	return toSet(a.order)
}
