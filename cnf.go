package propcalc

// CNF lazily enumerates the clauses of a CNF formula equisatisfiable
// with, and in fact equivalent to, a Formula: it flattens every
// top-level And into its non-And subtrees, then for each subtree
// walks its own truth table (over its own variables only) and yields
// the negated assignment on every row where the subtree is false.
type CNF struct {
	fm    Formula
	queue []Ast
	qi    int

	currentRoot Ast
	last        Assignment
	cl          Clause
	valid       bool
}

// NewCNF returns a CNF stream over fm. Formula.CNF is the usual way
// to get one.
func NewCNF(fm Formula) *CNF {
	c := &CNF{fm: fm, queue: flattenAnd(fm.root)}
	c.advance()
	return c
}

// flattenAnd collects the maximal non-And subtrees reachable from n
// by repeatedly descending into And's children.
func flattenAnd(n Ast) []Ast {
	if a, ok := n.(*andNode); ok {
		return append(flattenAnd(a.lhs), flattenAnd(a.rhs)...)
	}
	return []Ast{n}
}

func subtreeVars(root Ast, domain Domain) []VarRef {
	return Formula{domain: domain, root: root}.Vars()
}

func (c *CNF) advance() {
	for {
		if c.currentRoot == nil {
			if c.qi >= len(c.queue) {
				c.valid = false
				return
			}
			c.currentRoot = c.queue[c.qi]
			c.qi++
			c.last = NewAssignmentOn(subtreeVars(c.currentRoot, c.fm.domain))
		} else {
			c.last.Increment()
			if c.last.Overflown() {
				c.currentRoot = nil
				continue
			}
		}
		val, err := c.currentRoot.eval(c.last)
		if err != nil {
			panic(err) // last is total over currentRoot's own variables
		}
		if !val {
			c.cl = clauseFromAssignment(c.last)
			c.valid = true
			return
		}
	}
}

func (c *CNF) Valid() bool     { return c.valid }
func (c *CNF) Current() Clause { return c.cl }
func (c *CNF) Advance()        { c.advance() }
