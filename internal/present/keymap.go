package present

import (
	"fmt"

	"github.com/hay-kot/pitch/internal/core/config"
	"github.com/hay-kot/pitch/internal/terminal"
)

// Action is what a key press asks the presenter to do.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionTimer
	ActionSuspend
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return config.ActionNext
	case ActionPrev:
		return config.ActionPrev
	case ActionTimer:
		return config.ActionTimer
	case ActionSuspend:
		return config.ActionSuspend
	case ActionQuit:
		return config.ActionQuit
	default:
		return "none"
	}
}

var actionsByName = map[string]Action{
	config.ActionNext:    ActionNext,
	config.ActionPrev:    ActionPrev,
	config.ActionTimer:   ActionTimer,
	config.ActionSuspend: ActionSuspend,
	config.ActionQuit:    ActionQuit,
}

// Keymap resolves keys to actions.
type Keymap map[terminal.Key]Action

// NewKeymap builds a Keymap from configured bindings.
func NewKeymap(keys config.KeysConfig) (Keymap, error) {
	km := make(Keymap)
	for name, bound := range keys.Bindings() {
		action := actionsByName[name]
		for _, k := range bound {
			key, err := terminal.ParseKey(k)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", name, err)
			}
			if prev, ok := km[key]; ok && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", k, prev, action)
			}
			km[key] = action
		}
	}
	return km, nil
}

// Resolve returns the action for key, ActionNone when unbound.
func (k Keymap) Resolve(key terminal.Key) Action {
	return k[key]
}
