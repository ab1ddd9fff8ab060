// Package propcalc implements propositional calculus: parsing Boolean
// formulas in an infix syntax, representing them as abstract syntax,
// evaluating and simplifying them under variable assignments, and
// lazily enumerating clauses of normal forms — full CNF by
// truth-table expansion, and a Tseitin transform whose size is linear
// in the formula. It also reads and writes the DIMACS CNF format so
// its output can be fed to an external SAT solver; solving itself is
// out of scope for this package.
//
// A Formula is usually built by parsing:
//
//	domain := propcalc.NewCache()
//	f, err := propcalc.Parse("~a & b -> c", domain)
//	if err != nil {
//		// err is a *propcalc.ParseError carrying a 0-based byte offset.
//	}
//	fmt.Println(f.ToPostfix()) // [a] ~ [b] & [c] >
//
// Formulas can also be combined directly through the connectives,
// which build on Parse results or on Formulas constructed by hand
// from a Domain's own VarRefs. All Formulas participating in a
// connective must share a Domain;
// And, Or, Impl, Eqv and Xor report a *ConnectiveDomainMismatchError
// otherwise. A Domain interns variable names to stable VarRefs and
// separately numbers them for DIMACS import/export; it is safe for
// concurrent use.
//
// Two streams turn a Formula into clauses: CNF expands it into an
// equivalent conjunctive normal form by brute-force truth-table
// enumeration (exponential in the number of variables per top-level
// conjunct, but exact), and Tseitin produces an equisatisfiable CNF
// whose size is linear in the formula, introducing one auxiliary
// variable per distinct subformula. Both, and Truthtable, implement
// the generic Stream[T] interface, a lazy single-cursor generator;
// Cached wraps any Stream for replay.
//
// The parser accepts & (and), | (or), ~ (not), -> or > (implies), and
// <-> or = together with ^ (xor) at the lowest, mutually
// right-associative precedence level; & binds tighter than |, which
// binds tighter than implication, and every binary connective
// associates to the right. This differs from Sagemath's
// propositional-logic parser in two ways: ^ sits at the lowest level
// together with <->, and a chain such as a -> b -> c groups as
// a -> (b -> c). A formula written for Sagemath that relies on either
// point without parentheses can parse to a different tree here.
package propcalc
