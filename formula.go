package propcalc

// Formula is a parsed propositional-logic expression together with
// the Domain its variables were resolved against. Formulas are
// immutable; every transformation (Simplify, the connectives) returns
// a new value.
type Formula struct {
	domain Domain
	root   Ast
}

// NewFormula wraps an already-built Ast as a Formula over domain. Most
// callers get a Formula from Parse instead.
func NewFormula(domain Domain, root Ast) Formula {
	return Formula{domain: domain, root: root}
}

// Domain returns the Formula's variable universe.
func (f Formula) Domain() Domain {
	return f.domain
}

// Vars returns the Formula's variables, deduplicated and ordered
// consistently with the Domain's own variable order.
func (f Formula) Vars() []VarRef {
	pile := map[VarRef]struct{}{}
	queue := []Ast{f.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		switch t := n.(type) {
		case *varNode:
			pile[t.v] = struct{}{}
		case *notNode:
			queue = append(queue, t.rhs)
		case *andNode:
			queue = append(queue, t.lhs, t.rhs)
		case *orNode:
			queue = append(queue, t.lhs, t.rhs)
		case *implNode:
			queue = append(queue, t.lhs, t.rhs)
		case *eqvNode:
			queue = append(queue, t.lhs, t.rhs)
		case *xorNode:
			queue = append(queue, t.lhs, t.rhs)
		}
	}
	return f.domain.Sort(pile)
}

// Eval evaluates the Formula under assign. It fails with
// ErrOutOfRange if assign doesn't cover a variable the evaluation
// actually needs (short-circuited operands are never looked up).
func (f Formula) Eval(assign Assignment) (bool, error) {
	return f.root.eval(assign)
}

// Simplify folds the Formula under a (possibly partial) assignment,
// collapsing any subtree whose value is already determined.
func (f Formula) Simplify(assign Assignment) Formula {
	return Formula{domain: f.domain, root: f.root.simplify(assign)}
}

// ToPrefix, ToInfix and ToPostfix stringify the Formula. ToInfix uses
// the minimum parentheses needed to parse back to the same tree.
func (f Formula) ToPrefix() string  { return f.root.toPrefix() }
func (f Formula) ToInfix() string   { return f.root.toInfix() }
func (f Formula) ToPostfix() string { return f.root.toPostfix() }

// Truthtable, CNF and Tseitin return lazy clause/row streams over f.
// See truthtable.go, cnf.go and tseitin.go.
func (f Formula) Truthtable() *Truthtable { return NewTruthtable(f) }
func (f Formula) CNF() *CNF               { return NewCNF(f) }
func (f Formula) Tseitin() *Tseitin       { return NewTseitin(f) }

// Not negates f. Unlike the binary connectives there is no domain to
// mismatch: the result shares f's Domain.
func Not(f Formula) Formula {
	return Formula{domain: f.domain, root: &notNode{rhs: f.root}}
}

func binaryConnective(op string, lhs, rhs Formula, build func(l, r Ast) Ast) (Formula, error) {
	if lhs.domain != rhs.domain {
		return Formula{}, &ConnectiveDomainMismatchError{Op: op, LHS: lhs.domain, RHS: rhs.domain}
	}
	return Formula{domain: lhs.domain, root: build(lhs.root, rhs.root)}, nil
}

// And, Or, Impl, Eqv and Xor build the conjunction, disjunction,
// implication, equivalence and exclusive-or of lhs and rhs. They
// fail with a ConnectiveDomainMismatchError if lhs and rhs were built
// against different Domains.
func And(lhs, rhs Formula) (Formula, error) {
	return binaryConnective("and", lhs, rhs, func(l, r Ast) Ast { return &andNode{lhs: l, rhs: r} })
}

func Or(lhs, rhs Formula) (Formula, error) {
	return binaryConnective("or", lhs, rhs, func(l, r Ast) Ast { return &orNode{lhs: l, rhs: r} })
}

func Impl(lhs, rhs Formula) (Formula, error) {
	return binaryConnective("impl", lhs, rhs, func(l, r Ast) Ast { return &implNode{lhs: l, rhs: r} })
}

func Eqv(lhs, rhs Formula) (Formula, error) {
	return binaryConnective("eqv", lhs, rhs, func(l, r Ast) Ast { return &eqvNode{lhs: l, rhs: r} })
}

func Xor(lhs, rhs Formula) (Formula, error) {
	return binaryConnective("xor", lhs, rhs, func(l, r Ast) Ast { return &xorNode{lhs: l, rhs: r} })
}

// astFromClauseLiterals builds the disjunction Ast of a clause's
// literals, right-leaning like the parser's own Or chains.
func astFromClauseLiterals(cl Clause) Ast {
	lits := cl.Vars()
	if len(lits) == 0 {
		return &constNode{value: false}
	}
	nodes := make([]Ast, len(lits))
	for i, v := range lits {
		val, _ := cl.Get(v)
		var n Ast = &varNode{v: v}
		if !val {
			n = &notNode{rhs: n}
		}
		nodes[i] = n
	}
	acc := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		acc = &orNode{lhs: nodes[i], rhs: acc}
	}
	return acc
}

// FormulaFromClause returns the disjunction Formula equivalent to cl,
// over domain. The empty clause becomes the constant \F.
func FormulaFromClause(cl Clause, domain Domain) Formula {
	return Formula{domain: domain, root: astFromClauseLiterals(cl)}
}

// FormulaFromClauseStream returns the conjunction Formula of every
// clause produced by clauses, over domain. An empty stream is the
// constant \T (the empty conjunction).
func FormulaFromClauseStream(clauses Stream[Clause], domain Domain) Formula {
	var nodes []Ast
	for clauses.Valid() {
		nodes = append(nodes, astFromClauseLiterals(clauses.Current()))
		clauses.Advance()
	}
	if len(nodes) == 0 {
		return Formula{domain: domain, root: &constNode{value: true}}
	}
	acc := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		acc = &andNode{lhs: nodes[i], rhs: acc}
	}
	return Formula{domain: domain, root: acc}
}
