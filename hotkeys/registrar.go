package hotkeys

import "sync/atomic"

// Registrar installs the menu toggle and one trigger per host command into
// the host's binding table, at most once.
type Registrar struct {
	host Host
	done atomic.Bool
}

func NewRegistrar(host Host) *Registrar {
	return &Registrar{host: host}
}

// Initialize registers the bindings and reports whether this call did so.
// Repeat calls are no-ops, and so is every call while the host reports the
// feature unavailable. The host's command set must not change while this
// runs.
func (r *Registrar) Initialize() bool {
	if r.done.Load() {
		return false
	}
	if !r.host.FeatureAvailable() {
		return false
	}
	if !r.done.CompareAndSwap(false, true) {
		return false
	}

	r.host.AddBinding(CategoryHotkeys, NewMenuToggle(r.host))

	for i := 0; i < r.host.CommandCount(); i++ {
		name := r.host.CommandNameAt(i)
		text := r.host.CommandDisplayText(name)
		r.host.AddBinding(CategoryMisc, NewCommandTrigger(r.host, name, text))
	}
	return true
}

// Initialized reports whether bindings have been registered.
func (r *Registrar) Initialized() bool {
	return r.done.Load()
}
