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

// Package environment collects the context of an emulation that is not the
// hardware itself: the preferences, the random number source and the host
// clock.
package environment

import (
	"time"

	"github.com/eacaemu/eg3200/hardware/preferences"
	"github.com/eacaemu/eg3200/random"
)

// Label is used to name the environment.
type Label string

// List of known labels.
const (
	MainEmulation Label = ""
	Script        Label = "script"
	Test          Label = "test"
)

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences

	// the host clock. used to seed the RTC on reset. defaults to time.Now
	Clock func() time.Time
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created from the default preferences file. Providing a non-nil value allows
// the preferences of more than one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(nil),
		Clock:  time.Now,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise(now time.Time) error {
	env.Random.ZeroSeed = true
	env.Clock = func() time.Time { return now }
	return env.Prefs.SetDefaults()
}

// Now returns the current time according to the environment's clock.
func (env *Environment) Now() time.Time {
	if env.Clock == nil {
		return time.Now()
	}
	return env.Clock()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation and script instances add entries to the log.
func (env *Environment) AllowLogging() bool {
	return env.Label == MainEmulation || env.Label == Script
}
