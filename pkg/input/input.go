// Package input describes the per-frame input state the host hands to the
// simulation, and the key bindings that map it onto each rocket's controls.
package input

import (
	"fmt"
	"strings"
)

// Key names a physical key, e.g. "A" or "SPACE". Names are case-insensitive.
type Key string

// Normalize returns the canonical upper-case spelling of the key.
func (k Key) Normalize() Key {
	return Key(strings.ToUpper(strings.TrimSpace(string(k))))
}

// Action is a logical rocket control.
type Action int

const (
	RotateLeft Action = iota
	RotateRight
	Accelerate
	Fire
)

var actionNames = [...]string{"rotateLeft", "rotateRight", "accelerate", "fire"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// KeyState is the state of one key on one frame.
type KeyState struct {
	Pressed     bool // held this frame
	JustPressed bool // went down this frame
}

// Snapshot is the input state for a single frame. Keys that are absent are
// released.
type Snapshot map[Key]KeyState

// NewSnapshot returns an empty snapshot.
func NewSnapshot() Snapshot {
	return make(Snapshot)
}

// Press marks k as held, and as just pressed when justPressed is set.
func (s Snapshot) Press(k Key, justPressed bool) Snapshot {
	s[k.Normalize()] = KeyState{Pressed: true, JustPressed: justPressed}
	return s
}

// State returns the state of k.
func (s Snapshot) State(k Key) KeyState {
	if s == nil {
		return KeyState{}
	}
	return s[k.Normalize()]
}

// Controls binds each Action to one key.
type Controls struct {
	RotateLeft  Key `json:"rotateLeft" yaml:"rotateLeft"`
	RotateRight Key `json:"rotateRight" yaml:"rotateRight"`
	Accelerate  Key `json:"accelerate" yaml:"accelerate"`
	Fire        Key `json:"fire" yaml:"fire"`
}

// Key returns the key bound to action.
func (c Controls) Key(action Action) Key {
	switch action {
	case RotateLeft:
		return c.RotateLeft
	case RotateRight:
		return c.RotateRight
	case Accelerate:
		return c.Accelerate
	case Fire:
		return c.Fire
	default:
		return ""
	}
}

// Keys returns the bound keys in Action order.
func (c Controls) Keys() []Key {
	return []Key{c.RotateLeft, c.RotateRight, c.Accelerate, c.Fire}
}

// Resolve reads the state of action through the bindings.
func (c Controls) Resolve(s Snapshot, action Action) KeyState {
	k := c.Key(action)
	if k == "" {
		return KeyState{}
	}
	return s.State(k)
}

// Validate checks that every action is bound and no key is used twice.
func (c Controls) Validate() error {
	seen := make(map[Key]Action, 4)
	for i, k := range c.Keys() {
		action := Action(i)
		k = k.Normalize()
		if k == "" {
			return fmt.Errorf("action %s is not bound", action)
		}
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", k, prev, action)
		}
		seen[k] = action
	}
	return nil
}

// Overlap returns the keys bound in both c and other.
func (c Controls) Overlap(other Controls) []Key {
	mine := make(map[Key]bool, 4)
	for _, k := range c.Keys() {
		mine[k.Normalize()] = true
	}
	var shared []Key
	for _, k := range other.Keys() {
		if k = k.Normalize(); mine[k] {
			shared = append(shared, k)
		}
	}
	return shared
}
