package propcalc

// TseitinDomain is the auxiliary-variable universe a Tseitin
// transform builds on top of a Formula's own Domain: one variable per
// distinct AST node of the source Formula, with equal subformulas
// structurally deduplicated onto the same auxiliary.
type TseitinDomain struct {
	*Cache
	astOf map[VarRef]Ast
	varOf map[VarRef]VarRef // aux var for a *varNode -> the source VarRef it stands for
}

func newTseitinDomain() *TseitinDomain {
	return &TseitinDomain{
		Cache: NewCache(),
		astOf: make(map[VarRef]Ast),
		varOf: make(map[VarRef]VarRef),
	}
}

// auxFor returns the auxiliary variable for n, interning a fresh one
// the first time a given AST shape is seen. Keying by n's own
// canonical postfix form (rather than, say, pointer identity) is what
// makes two independently-built but equal subformulas collapse onto
// the same auxiliary.
func (d *TseitinDomain) auxFor(n Ast) VarRef {
	key := n.toPostfix()
	v, err := d.Resolve(key)
	if err != nil {
		// A TseitinDomain is never frozen.
		panic(err)
	}
	if _, seen := d.astOf[v]; !seen {
		d.astOf[v] = n
		if vn, ok := n.(*varNode); ok {
			d.varOf[v] = vn.v
		}
	}
	return v
}

type tseitinLit struct {
	v    VarRef
	sign bool
}

// buildClause assembles a clause from lits, or reports ok=false if two
// literals over the same variable disagree in sign — such a clause is
// a tautology and is dropped rather than emitted, which is how
// structural deduplication (two operands of a connective aliasing the
// same auxiliary) avoids producing a contradictory clause.
func buildClause(lits []tseitinLit) (Clause, bool) {
	cl := NewClause(nil)
	seen := make(map[VarRef]bool, len(lits))
	for _, l := range lits {
		if s, ok := seen[l.v]; ok {
			if s != l.sign {
				return Clause{}, false
			}
			continue
		}
		seen[l.v] = l.sign
		cl.Set(l.v, l.sign)
	}
	return cl, true
}

// Tseitin lazily enumerates the clauses of the Tseitin transform of a
// Formula: introduce one auxiliary variable per AST node, assert the
// root's auxiliary true, and for each node assert the clauses that
// make its auxiliary equivalent to the node's own connective applied
// to its children's auxiliaries. The transform is equisatisfiable
// with, but generally not equivalent to, the source Formula, and its
// size is linear in the size of the source Formula. Equal subformulas
// share one auxiliary, but a subformula that occurs more than once
// has its clauses emitted once per occurrence.
type Tseitin struct {
	fm      Formula
	domain  *TseitinDomain
	queue   []Ast
	pending []Clause
	cl      Clause
	valid   bool
}

// NewTseitin returns a Tseitin stream over fm. Formula.Tseitin is the
// usual way to get one.
func NewTseitin(fm Formula) *Tseitin {
	t := &Tseitin{fm: fm, domain: newTseitinDomain()}
	root := t.domain.auxFor(fm.root)
	unit := NewClause(nil)
	unit.Set(root, true)
	t.pending = append(t.pending, unit)
	t.queue = append(t.queue, fm.root)
	t.advance()
	return t
}

// Domain returns the auxiliary-variable universe the transform's
// clauses are stated over.
func (t *Tseitin) Domain() *TseitinDomain { return t.domain }

func (t *Tseitin) addClause(lits ...tseitinLit) {
	if cl, ok := buildClause(lits); ok {
		t.pending = append(t.pending, cl)
	}
}

func (t *Tseitin) advance() {
	for {
		if len(t.pending) > 0 {
			t.cl = t.pending[0]
			t.pending = t.pending[1:]
			t.valid = true
			return
		}
		if len(t.queue) == 0 {
			t.valid = false
			return
		}
		n := t.queue[0]
		t.queue = t.queue[1:]
		t.emit(n)
	}
}

func (t *Tseitin) emit(n Ast) {
	c := t.domain.auxFor(n)
	switch node := n.(type) {
	case *constNode:
		t.addClause(tseitinLit{c, node.value})

	case *varNode:
		// The auxiliary for a Var node stands directly for the source
		// variable; no extra clauses relate them.

	case *notNode:
		a := t.domain.auxFor(node.rhs)
		t.addClause(tseitinLit{a, false}, tseitinLit{c, false})
		t.addClause(tseitinLit{a, true}, tseitinLit{c, true})
		t.queue = append(t.queue, node.rhs)

	case *andNode:
		a, b := t.domain.auxFor(node.lhs), t.domain.auxFor(node.rhs)
		t.addClause(tseitinLit{a, false}, tseitinLit{b, false}, tseitinLit{c, true})
		t.addClause(tseitinLit{a, true}, tseitinLit{c, false})
		t.addClause(tseitinLit{b, true}, tseitinLit{c, false})
		t.queue = append(t.queue, node.lhs, node.rhs)

	case *orNode:
		a, b := t.domain.auxFor(node.lhs), t.domain.auxFor(node.rhs)
		t.addClause(tseitinLit{a, true}, tseitinLit{b, true}, tseitinLit{c, false})
		t.addClause(tseitinLit{a, false}, tseitinLit{c, true})
		t.addClause(tseitinLit{b, false}, tseitinLit{c, true})
		t.queue = append(t.queue, node.lhs, node.rhs)

	case *implNode:
		a, b := t.domain.auxFor(node.lhs), t.domain.auxFor(node.rhs)
		t.addClause(tseitinLit{a, false}, tseitinLit{b, true}, tseitinLit{c, false})
		t.addClause(tseitinLit{a, true}, tseitinLit{c, true})
		t.addClause(tseitinLit{b, false}, tseitinLit{c, true})
		t.queue = append(t.queue, node.lhs, node.rhs)

	case *eqvNode:
		a, b := t.domain.auxFor(node.lhs), t.domain.auxFor(node.rhs)
		t.addClause(tseitinLit{a, false}, tseitinLit{b, false}, tseitinLit{c, true})
		t.addClause(tseitinLit{a, true}, tseitinLit{b, true}, tseitinLit{c, true})
		t.addClause(tseitinLit{a, true}, tseitinLit{b, false}, tseitinLit{c, false})
		t.addClause(tseitinLit{a, false}, tseitinLit{b, true}, tseitinLit{c, false})
		t.queue = append(t.queue, node.lhs, node.rhs)

	case *xorNode:
		a, b := t.domain.auxFor(node.lhs), t.domain.auxFor(node.rhs)
		t.addClause(tseitinLit{a, false}, tseitinLit{b, false}, tseitinLit{c, false})
		t.addClause(tseitinLit{a, true}, tseitinLit{b, true}, tseitinLit{c, false})
		t.addClause(tseitinLit{a, true}, tseitinLit{b, false}, tseitinLit{c, true})
		t.addClause(tseitinLit{a, false}, tseitinLit{b, true}, tseitinLit{c, true})
		t.queue = append(t.queue, node.lhs, node.rhs)
	}
}

func (t *Tseitin) Valid() bool     { return t.valid }
func (t *Tseitin) Current() Clause { return t.cl }
func (t *Tseitin) Advance()        { t.advance() }

// Lift returns the assignment over the Tseitin domain consistent with
// assign: each auxiliary variable takes the value of evaluating the
// AST node it stands for under assign.
func (t *Tseitin) Lift(assign Assignment) (Assignment, error) {
	vars := t.domain.List()
	out := NewAssignmentOn(vars)
	for _, v := range vars {
		val, err := t.domain.astOf[v].eval(assign)
		if err != nil {
			return Assignment{}, err
		}
		out.Set(v, val)
	}
	return out, nil
}

// Project reads the source Formula's assignment out of l, an
// assignment over the Tseitin domain, via the auxiliaries that stand
// for Var nodes.
func (t *Tseitin) Project(l Assignment) Assignment {
	srcVars := make([]VarRef, 0, len(t.domain.varOf))
	for _, srcv := range t.domain.varOf {
		srcVars = append(srcVars, srcv)
	}
	out := NewAssignmentOn(t.fm.domain.Sort(toSet(srcVars)))
	for auxv, srcv := range t.domain.varOf {
		if val, err := l.Get(auxv); err == nil {
			out.Set(srcv, val)
		}
	}
	return out
}
