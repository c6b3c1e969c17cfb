package keymap

import "github.com/samber/lo"

// Resolver answers which action a key name triggers in one context.
// When two bindings claim a key, the first one keeps it.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings by key.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, taken := r.actions[k]; !taken {
				r.actions[k] = b.Action
			}
		}
		r.keys[b.Action] = lo.Uniq(append(r.keys[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor lists the keys of an action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
