package input

import (
	"strings"
	"unicode"
)

// Action is a named, ordered list of bindings resolving to one scalar or
// boolean logical input. List order is the resolution priority: the first
// binding that yields a non-neutral result wins.
type Action struct {
	name     string
	bindings []Binding
}

// NewAction creates an empty action. The name is trimmed; add bindings with
// Add.
func NewAction(name string) *Action {
	return &Action{name: strings.TrimSpace(name)}
}

// ValidActionName reports whether s can name an action: non-empty, starting
// with a letter or underscore, containing only letters, digits, underscores
// and dashes.
func ValidActionName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Name returns the action's name.
func (a *Action) Name() string { return a.name }

// Len returns the number of bindings.
func (a *Action) Len() int { return len(a.bindings) }

// Binding returns the binding at index i. Out-of-range indices are caller
// bugs and panic.
func (a *Action) Binding(i int) Binding { return a.bindings[i] }

// Bindings returns a copy of the binding list in priority order.
func (a *Action) Bindings() []Binding {
	out := make([]Binding, len(a.bindings))
	copy(out, a.bindings)
	return out
}

// Add appends b, rejecting it when invalid or when it collides with any
// binding already in the list. A rejected Add leaves the action unchanged.
func (a *Action) Add(b Binding) bool {
	if !b.IsValid() {
		return false
	}
	for _, existing := range a.bindings {
		if Collides(existing, b) {
			return false
		}
	}
	a.bindings = append(a.bindings, b)
	return true
}

// Set replaces the binding at index i, re-checking collisions against all
// other bindings. Out-of-range indices panic.
func (a *Action) Set(i int, b Binding) bool {
	if !b.IsValid() {
		return false
	}
	for j, existing := range a.bindings {
		if j != i && Collides(existing, b) {
			return false
		}
	}
	a.bindings[i] = b
	return true
}

// RemoveAt removes the binding at index i. Out-of-range indices panic.
func (a *Action) RemoveAt(i int) {
	a.bindings = append(a.bindings[:i], a.bindings[i+1:]...)
}

// IsValid reports whether the name is a valid identifier, every binding is
// valid and no two bindings collide pairwise.
func (a *Action) IsValid() bool {
	if !ValidActionName(a.name) {
		return false
	}
	for i, b := range a.bindings {
		if !b.IsValid() {
			return false
		}
		for _, other := range a.bindings[i+1:] {
			if Collides(b, other) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the action.
func (a *Action) Clone() *Action {
	return &Action{name: a.name, bindings: a.Bindings()}
}

// Value resolves the action's scalar. Bindings are consulted in priority
// order and the first non-neutral reading wins; later bindings are never
// consulted. Returns 0 when no binding resolves.
func (a *Action) Value(d *Devices) float64 {
	for _, b := range a.bindings {
		if v := b.value(d); v != 0 {
			return v
		}
	}
	return 0
}

// IsPressed resolves the action's boolean state. The first binding where
// exactly one side is active decides; a binding with both or neither side
// active is skipped.
func (a *Action) IsPressed(d *Devices) bool {
	for _, b := range a.bindings {
		pos, neg := b.sides(d)
		if pos != neg {
			return pos
		}
	}
	return false
}

// JustPressed reports whether any binding's positive side fired a press edge
// this frame without its negative side also firing. Unlike Value and
// IsPressed this is an OR across all bindings: edges are transient, so no
// binding's edge may be shadowed by an earlier one.
func (a *Action) JustPressed(d *Devices) bool {
	for _, b := range a.bindings {
		pos, neg := b.pressEdges(d)
		if pos && !neg {
			return true
		}
	}
	return false
}

// JustReleased reports whether any binding's positive side fired a release
// edge this frame without its negative side also firing.
func (a *Action) JustReleased(d *Devices) bool {
	for _, b := range a.bindings {
		pos, neg := b.releaseEdges(d)
		if pos && !neg {
			return true
		}
	}
	return false
}
