package propcalc

// VarMap is an ordered partial map from VarRef to bool: insertion
// order is preserved and is significant (Assignment's bit-counter
// order, Clause's literal order). Writing through Set always succeeds
// and appends a new key on first write; reading a key that was never
// written returns ErrOutOfRange.
type VarMap struct {
	order []VarRef
	vals  map[VarRef]bool
}

// NewVarMap returns a VarMap whose keys are vars, in the given order,
// all initialized to false.
func NewVarMap(vars []VarRef) VarMap {
	vm := VarMap{
		order: append([]VarRef(nil), vars...),
		vals:  make(map[VarRef]bool, len(vars)),
	}
	for _, v := range vars {
		vm.vals[v] = false
	}
	return vm
}

// Get returns the value stored for v, or ErrOutOfRange if v is not a
// key of this VarMap.
func (vm VarMap) Get(v VarRef) (bool, error) {
	val, ok := vm.vals[v]
	if !ok {
		return false, ErrOutOfRange
	}
	return val, nil
}

// Set stores val for v, appending v as a new key in insertion order if
// it wasn't already present.
func (vm *VarMap) Set(v VarRef, val bool) {
	if vm.vals == nil {
		vm.vals = make(map[VarRef]bool)
	}
	if _, ok := vm.vals[v]; !ok {
		vm.order = append(vm.order, v)
	}
	vm.vals[v] = val
}

// Vars returns the keys in insertion order.
func (vm VarMap) Vars() []VarRef {
	out := make([]VarRef, len(vm.order))
	copy(out, vm.order)
	return out
}

// Len returns the number of keys.
func (vm VarMap) Len() int {
	return len(vm.order)
}

// clone returns a VarMap with the same keys, order and values, backed
// by its own map so mutating the copy never affects the original.
func (vm VarMap) clone() VarMap {
	out := VarMap{
		order: append([]VarRef(nil), vm.order...),
		vals:  make(map[VarRef]bool, len(vm.vals)),
	}
	for k, v := range vm.vals {
		out.vals[k] = v
	}
	return out
}
