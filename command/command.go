// Package command is the host-side registry of named commands that hotkeys
// can trigger.
package command

import (
	"errors"
	"fmt"
	"strconv"

	"il2ge/param"
)

var ErrUnknown = errors.New("no such command")

// Increments are the step sizes generated for every parameter.
var Increments = []float64{0.1, 1.0, 10.0, 100.0}

type entry struct {
	text string
	run  func()
}

// Registry maps unique command names to actions, remembering insertion order
// so commands can be enumerated by index.
type Registry struct {
	commands map[string]entry
	names    []string
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]entry)}
}

// Add registers fn under name. Re-adding a name replaces its action and text
// but keeps its original position.
func (r *Registry) Add(name, text string, fn func()) {
	if _, exists := r.commands[name]; !exists {
		r.names = append(r.names, name)
	}
	r.commands[name] = entry{text: text, run: fn}
}

// AddParameterCommands adds "<name>.decrease_by_<inc>" and
// "<name>.increase_by_<inc>" for every parameter and increment.
func (r *Registry) AddParameterCommands(set *param.Set) {
	for i := 0; i < set.Len(); i++ {
		p := set.At(i)
		for _, inc := range Increments {
			incStr := strconv.FormatFloat(inc, 'g', -1, 64)
			delta := inc

			r.Add(p.Name+".decrease_by_"+incStr,
				fmt.Sprintf("%s: decrease by %s", p.Name, incStr),
				func() { p.Add(-delta) })
			r.Add(p.Name+".increase_by_"+incStr,
				fmt.Sprintf("%s: increase by %s", p.Name, incStr),
				func() { p.Add(delta) })
		}
	}
}

func (r *Registry) Count() int { return len(r.names) }

func (r *Registry) NameAt(i int) string { return r.names[i] }

// DisplayText returns the label of name, or "" when it is not registered.
func (r *Registry) DisplayText(name string) string {
	return r.commands[name].text
}

func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Execute runs the command registered under name.
func (r *Registry) Execute(name string) error {
	e, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if e.run != nil {
		e.run()
	}
	return nil
}
