// pkg/render/engo/input.go
package engo

import (
	"fmt"
	"sort"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/input"
)

var engoKeys = map[input.Key]engo.Key{
	"A": engo.KeyA, "B": engo.KeyB, "C": engo.KeyC, "D": engo.KeyD,
	"E": engo.KeyE, "F": engo.KeyF, "G": engo.KeyG, "H": engo.KeyH,
	"I": engo.KeyI, "J": engo.KeyJ, "K": engo.KeyK, "L": engo.KeyL,
	"M": engo.KeyM, "N": engo.KeyN, "O": engo.KeyO, "P": engo.KeyP,
	"Q": engo.KeyQ, "R": engo.KeyR, "S": engo.KeyS, "T": engo.KeyT,
	"U": engo.KeyU, "V": engo.KeyV, "W": engo.KeyW, "X": engo.KeyX,
	"Y": engo.KeyY, "Z": engo.KeyZ,

	"0": engo.KeyZero, "1": engo.KeyOne, "2": engo.KeyTwo, "3": engo.KeyThree,
	"4": engo.KeyFour, "5": engo.KeyFive, "6": engo.KeySix, "7": engo.KeySeven,
	"8": engo.KeyEight, "9": engo.KeyNine,

	"UP":     engo.KeyArrowUp,
	"DOWN":   engo.KeyArrowDown,
	"LEFT":   engo.KeyArrowLeft,
	"RIGHT":  engo.KeyArrowRight,
	"SPACE":  engo.KeySpace,
	"ENTER":  engo.KeyEnter,
	"TAB":    engo.KeyTab,
	"LSHIFT": engo.KeyLeftShift,
	"RSHIFT": engo.KeyRightShift,
}

// EngoKey returns the engo key for a configured key name
func EngoKey(k input.Key) (engo.Key, error) {
	key, ok := engoKeys[k.Normalize()]
	if !ok {
		return 0, fmt.Errorf("unsupported key %q", k)
	}
	return key, nil
}

// ButtonState reads registered buttons
type ButtonState interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// EngoButtons reads buttons from engo.Input
type EngoButtons struct{}

func (EngoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

func (EngoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

func buttonName(k input.Key) string {
	return "key_" + string(k)
}

// Keyboard turns the state of every bound key into an input.Snapshot.
// It implements engine.InputSource.
type Keyboard struct {
	keys    []input.Key
	buttons ButtonState
}

// NewKeyboard collects the keys bound by players. Every key must map onto an
// engo key.
func NewKeyboard(players []config.PlayerConfig, buttons ButtonState) (*Keyboard, error) {
	seen := make(map[input.Key]bool)
	var keys []input.Key
	for _, p := range players {
		for i, k := range p.Controls.Keys() {
			k = k.Normalize()
			if seen[k] {
				continue
			}
			if _, err := EngoKey(k); err != nil {
				return nil, fmt.Errorf("player %s %s: %w", p.ID, input.Action(i), err)
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return &Keyboard{keys: keys, buttons: buttons}, nil
}

// Keys returns the bound keys in sorted order
func (kb *Keyboard) Keys() []input.Key {
	return kb.keys
}

// Register binds every key as an engo button. Call it from Scene.Setup.
func (kb *Keyboard) Register() {
	for _, k := range kb.keys {
		key, _ := EngoKey(k)
		engo.Input.RegisterButton(buttonName(k), key)
	}
}

// Poll implements engine.InputSource
func (kb *Keyboard) Poll(time.Duration) input.Snapshot {
	snap := input.NewSnapshot()
	for _, k := range kb.keys {
		name := buttonName(k)
		if kb.buttons.Down(name) {
			snap.Press(k, kb.buttons.JustPressed(name))
		}
	}
	return snap
}
