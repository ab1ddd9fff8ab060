package propcalc

// Variable is a named slot in a Domain. Variables are never compared
// by name: two Variables with the same name but created in different
// Domains (or resolved twice against domains that happen to disagree)
// are distinct. All comparisons go through VarRef's pointer identity.
type Variable struct {
	name string
}

// Name returns the variable's name as it was given to the Domain that
// created it.
func (v *Variable) Name() string {
	return v.name
}

// String returns the variable's name bracketed, e.g. "[p]". Every
// stringification of a formula renders its variables this way,
// regardless of whether the name needs the brackets to parse back
// unambiguously.
func (v *Variable) String() string {
	return "[" + v.name + "]"
}

// VarRef is a handle to a Variable, identified by pointer: two VarRefs
// are the same variable iff they are ==, never by comparing names.
type VarRef = *Variable

// VarNr is a 1-based variable number, the external identifier used by
// the DIMACS format. 0 is reserved and never a valid VarNr.
type VarNr int
