package input

import (
	"strings"

	"go.uber.org/zap"
)

// ActionSet is a collection of actions keyed case-insensitively by name.
// Every stored action is valid; mutations that would break that are rejected
// without touching the set.
type ActionSet struct {
	log     *zap.Logger
	actions map[string]*Action
	order   []string // lower-cased keys in insertion order
}

// NewActionSet creates an empty set. A nil logger disables logging.
func NewActionSet(log *zap.Logger) *ActionSet {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActionSet{
		log:     log,
		actions: make(map[string]*Action),
	}
}

// Len returns the number of actions.
func (s *ActionSet) Len() int { return len(s.actions) }

// Names returns the stored action names in insertion order.
func (s *ActionSet) Names() []string {
	out := make([]string, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.actions[key].Name())
	}
	return out
}

// Contains reports whether an action with the given name exists
// (case-insensitive).
func (s *ActionSet) Contains(name string) bool {
	_, ok := s.actions[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Get returns the named action, or nil when absent.
func (s *ActionSet) Get(name string) *Action {
	return s.actions[strings.ToLower(strings.TrimSpace(name))]
}

// At returns the action at insertion index i. Out-of-range indices panic.
func (s *ActionSet) At(i int) *Action {
	return s.actions[s.order[i]]
}

// Add stores a. Invalid actions are rejected. When an action with the same
// name exists the add fails unless replace is set, in which case the
// existing entry is removed first.
func (s *ActionSet) Add(a *Action, replace bool) bool {
	if a == nil || !a.IsValid() {
		name := ""
		if a != nil {
			name = a.Name()
		}
		s.log.Warn("rejected invalid action", zap.String("action", name))
		return false
	}
	key := strings.ToLower(a.Name())
	if _, exists := s.actions[key]; exists {
		if !replace {
			s.log.Warn("action already exists", zap.String("action", a.Name()))
			return false
		}
		s.remove(key)
	}
	s.actions[key] = a
	s.order = append(s.order, key)
	return true
}

// Remove deletes the named action, reporting whether it existed.
func (s *ActionSet) Remove(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := s.actions[key]; !ok {
		return false
	}
	s.remove(key)
	return true
}

func (s *ActionSet) remove(key string) {
	delete(s.actions, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear removes all actions.
func (s *ActionSet) Clear() {
	s.actions = make(map[string]*Action)
	s.order = nil
}

// replaceContents swaps in another set's actions wholesale. Used by loading,
// which must be all-or-nothing.
func (s *ActionSet) replaceContents(other *ActionSet) {
	s.actions = other.actions
	s.order = other.order
}
