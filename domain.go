package propcalc

import (
	"strconv"
	"sync"
)

// Domain is the shared universe of Variables a Formula is built
// against. Every connective and structural operation on two Formulas
// requires them to share a Domain. Domain implementations must be
// safe for concurrent use: a Formula's Parse, construction, and
// evaluation may all resolve variables against the same Domain from
// different goroutines.
type Domain interface {
	// Resolve returns the VarRef for name, creating one and assigning it
	// the next VarNr if this is the first time name has been seen.
	// Returns ErrFrozen if the Domain has been frozen and name is not
	// already known.
	Resolve(name string) (VarRef, error)

	// Pack returns the VarNr assigned to v. Every VarRef a Domain ever
	// hands out (via Resolve or Unpack) already has one, assigned at
	// the moment it was created; Pack only ever falls back to assigning
	// a fresh one for a v this Domain has never seen.
	Pack(v VarRef) VarNr

	// Unpack returns the VarRef already occupying VarNr nr if
	// 1 <= nr <= Size(), and otherwise either auto-vivifies a fresh
	// Variable at nr (growing the Domain up to it) or, if the Domain is
	// frozen, fails with ErrFrozen. Fails with ErrInvalidVarNr for
	// nr == 0.
	Unpack(nr VarNr) (VarRef, error)

	// List returns every VarRef the Domain has resolved so far, ordered
	// by VarNr.
	List() []VarRef

	// Size returns the number of distinct Variables the Domain holds.
	Size() int

	// Sort returns the VarRefs in set in VarNr order.
	Sort(set map[VarRef]struct{}) []VarRef

	// Freeze makes Resolve of a new name and Unpack beyond Size() fail
	// with ErrFrozen; existing lookups keep working. Pack is not
	// affected: it still assigns a fresh VarNr to a VarRef the Domain
	// has never seen.
	Freeze()

	// Thaw reverses Freeze.
	Thaw()
}

// Cache is the one Domain implementation: an interning table mapping
// variable names to Variables, each assigned its VarNr (the number
// DIMACS import/export uses) at the moment it is first resolved or
// unpacked, so order, byNr and nrOf always agree: order[i] is the
// Variable whose VarNr is i+1. All operations are guarded by a single
// mutex, mirroring the C++ library's std::mutex-protected Cache.
type Cache struct {
	mu     sync.Mutex
	byName map[string]VarRef
	order  []VarRef
	frozen bool

	byNr map[VarNr]VarRef
	nrOf map[VarRef]VarNr
}

// NewCache returns an empty, unfrozen Domain.
func NewCache() *Cache {
	return &Cache{
		byName: make(map[string]VarRef),
		byNr:   make(map[VarNr]VarRef),
		nrOf:   make(map[VarRef]VarNr),
	}
}

func (c *Cache) Resolve(name string) (VarRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.byName[name]; ok {
		return v, nil
	}
	if c.frozen {
		return nil, ErrFrozen
	}
	v := &Variable{name: name}
	nr := VarNr(len(c.order) + 1)
	c.byName[name] = v
	c.order = append(c.order, v)
	c.byNr[nr] = v
	c.nrOf[v] = nr
	return v, nil
}

func (c *Cache) Pack(v VarRef) VarNr {
	c.mu.Lock()
	defer c.mu.Unlock()

	if nr, ok := c.nrOf[v]; ok {
		return nr
	}
	nr := VarNr(len(c.order) + 1)
	c.order = append(c.order, v)
	c.byNr[nr] = v
	c.nrOf[v] = nr
	return nr
}

func (c *Cache) Unpack(nr VarNr) (VarRef, error) {
	if nr == 0 {
		return nil, ErrInvalidVarNr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if int(nr) <= len(c.order) {
		return c.byNr[nr], nil
	}
	if c.frozen {
		return nil, ErrFrozen
	}
	// Grow up to nr, assigning every skipped-over number a placeholder
	// Variable too, so order/byNr/nrOf stay in lockstep VarNr order
	// and a later Unpack of one of those skipped numbers finds it
	// instead of fabricating a second, distinct Variable for it.
	for next := VarNr(len(c.order) + 1); next <= nr; next++ {
		v := &Variable{name: strconv.Itoa(int(next))}
		c.order = append(c.order, v)
		c.byNr[next] = v
		c.nrOf[v] = next
	}
	return c.byNr[nr], nil
}

func (c *Cache) List() []VarRef {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]VarRef, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *Cache) Sort(set map[VarRef]struct{}) []VarRef {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]VarRef, 0, len(set))
	for _, v := range c.order {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func (c *Cache) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true
}

func (c *Cache) Thaw() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = false
}

// toSet builds the membership set Domain.Sort expects from a plain
// slice of VarRefs.
func toSet(vars []VarRef) map[VarRef]struct{} {
	set := make(map[VarRef]struct{}, len(vars))
	for _, v := range vars {
		set[v] = struct{}{}
	}
	return set
}
