package panzoom

// keySet tracks which key names are currently held down. It is fed by
// Engine.KeyDown/KeyUp from the host's key events and consulted by the
// gesture gates for activation-key requirements. Detach clears it so a
// key released while the element was unmounted cannot stick.
type keySet map[string]struct{}

func (k keySet) press(name string)   { k[name] = struct{}{} }
func (k keySet) release(name string) { delete(k, name) }

func (k keySet) clear() {
	for name := range k {
		delete(k, name)
	}
}

// anyDown reports whether at least one of names is held.
// An empty requirement list always passes.
func (k keySet) anyDown(names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, name := range names {
		if _, ok := k[name]; ok {
			return true
		}
	}
	return false
}
