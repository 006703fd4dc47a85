// Package param holds the tunable scene parameters that the menu and the
// parameter commands adjust.
package param

import (
	"fmt"
	"strings"
)

// Parameter is a named float value with a default it can be reset to.
type Parameter struct {
	Name    string
	Default float64
	value   float64
}

func New(name string, def float64) *Parameter {
	return &Parameter{Name: name, Default: def, value: def}
}

func (p *Parameter) Get() float64 { return p.value }
func (p *Parameter) Set(v float64) { p.value = v }
func (p *Parameter) Reset() { p.value = p.Default }
func (p *Parameter) Add(delta float64) { p.value += delta }

// Set is an ordered collection of parameters with unique names.
type Set struct {
	params []*Parameter
	index  map[string]int
}

// NewSet builds a set; duplicate names are an error.
func NewSet(params ...*Parameter) (*Set, error) {
	s := &Set{index: make(map[string]int, len(params))}
	for _, p := range params {
		if _, dup := s.index[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q", p.Name)
		}
		s.index[p.Name] = len(s.params)
		s.params = append(s.params, p)
	}
	return s, nil
}

func (s *Set) Len() int { return len(s.params) }

func (s *Set) At(i int) *Parameter { return s.params[i] }

func (s *Set) Lookup(name string) (*Parameter, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.params[i], true
}

// ResetAll restores every parameter to its default.
func (s *Set) ResetAll() {
	for _, p := range s.params {
		p.Reset()
	}
}

// Dump renders one "name: value" line per parameter.
func (s *Set) Dump() string {
	var b strings.Builder
	for _, p := range s.params {
		fmt.Fprintf(&b, "%s: %.2f\n", p.Name, p.Get())
	}
	return b.String()
}

// Defaults returns the atmosphere parameters exposed by the graphics extender.
func Defaults() []*Parameter {
	return []*Parameter{
		New("exposure", 1.0),
		New("brightness_curve_exponent", 1.0),
		New("saturation", 1.0),
		New("texture_brightness", 1.0),
		New("texture_brightness_curve_exponent", 1.0),
		New("texture_saturation", 1.0),
		New("blue_saturation", 1.0),
		New("uncharted2_a", 0.22),
		New("uncharted2_b", 0.30),
		New("uncharted2_c", 0.10),
		New("uncharted2_d", 0.20),
		New("uncharted2_e", 0.01),
		New("uncharted2_f", 0.30),
		New("uncharted2_w", 11.2),
	}
}
