// This file is part of eg3200.
//
// eg3200 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eg3200 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eg3200.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Hook functions are called either side of a preference value being stored.
// Hooks are called even if the value is unchanged.
type Hook func(value Value) error

// typed is the common implementation for the simple preference types. the
// convert function turns a Value into the stored type or returns an error.
type typed[T any] struct {
	value    atomic.Value
	zero     T
	convert  func(Value) (T, error)
	hookPre  Hook
	hookPost Hook
}

func (p *typed[T]) load() T {
	v := p.value.Load()
	if v == nil {
		return p.zero
	}
	return v.(T)
}

func (p *typed[T]) set(v Value) error {
	nv, err := p.convert(v)
	if err != nil {
		return err
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated.
func (p *typed[T]) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *typed[T]) SetHookPost(f Hook) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

func convertBool(v Value) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		// anything other than "true" is false
		return strings.EqualFold(strings.TrimSpace(v), "true"), nil
	}
	return false, fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string.
func (p *Bool) Set(v Value) error {
	p.convert = convertBool
	return p.set(v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system. An optional range can be
// set with SetRange().
type Int struct {
	typed[int]
	min, max int
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// SetRange limits the values the Int will accept. Values outside the range
// cause Set() to return an error. A min greater than max removes the range.
func (p *Int) SetRange(min, max int) {
	p.min = min
	p.max = max
}

func (p *Int) convertInt(v Value) (int, error) {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case uint8:
		nv = int(v)
	case string:
		// base zero means hex values with a 0x prefix are accepted
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
		nv = int(n)
	default:
		return 0, fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}

	if p.min <= p.max && (p.min != 0 || p.max != 0) {
		if nv < p.min || nv > p.max {
			return 0, fmt.Errorf("set: %d outside range %d to %d", nv, p.min, p.max)
		}
	}

	return nv, nil
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	p.convert = p.convertInt
	return p.set(v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// String implements a string type in the prefs system.
type String struct {
	typed[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing string is
// cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

func (p *String) convertString(v Value) (string, error) {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return nv, nil
}

// Set new value to String type. Values of any type are converted with the %v
// verb.
func (p *String) Set(v Value) error {
	p.convert = p.convertString
	return p.set(v)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Generic is a general purpose prefererences type, useful for values that
// cannot be represented by a single live value. You must use the NewGeneric()
// function to initialise a new instance of Generic.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Set triggers the set value procedure for the generic type.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get triggers the get value procedure for the generic type.
func (p *Generic) Get() Value {
	return p.String()
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
