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

package preferences

import (
	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/hardware/revision"
	"github.com/eacaemu/eg3200/paths"
	"github.com/eacaemu/eg3200/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource path.
const DefaultPrefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// name of the hardware revision. see revision.List for valid values
	Revision prefs.String

	// initialise RAM to random values on reset
	RandomState prefs.Bool

	// seed the RTC from UTC rather than local time
	RTCUTC prefs.Bool

	// seed the RTC in 24 hour mode
	RTC24Hour prefs.Bool

	// exchange the read and write bits of the RTC mode port
	RTCSwapBits prefs.Bool

	// the number of periodic interrupts before the floppy motor is switched
	// off
	MotorTimeout prefs.Int

	// value of the configuration jumpers read through the keyboard matrix
	KeyboardJumpers prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If pth is empty then the default preferences file in the resource
// path is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Revision.SetHookPre(func(v prefs.Value) error {
		_, err := revision.Lookup(v.(string))
		return err
	})
	p.MotorTimeout.SetRange(1, 65535)
	p.KeyboardJumpers.SetRange(0, 255)

	err := p.SetDefaults()
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if pth == "" {
		pth, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for _, e := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"hardware.revision", &p.Revision},
		{"hardware.randstate", &p.RandomState},
		{"hardware.rtc.utc", &p.RTCUTC},
		{"hardware.rtc.24hour", &p.RTC24Hour},
		{"hardware.rtc.swapbits", &p.RTCSwapBits},
		{"hardware.motor.timeout", &p.MotorTimeout},
		{"hardware.keyboard.jumpers", &p.KeyboardJumpers},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() error {
	for _, err := range []error{
		p.Revision.Set(string(revision.EG3200)),
		p.RandomState.Set(false),
		p.RTCUTC.Set(false),
		p.RTC24Hour.Set(true),
		p.RTCSwapBits.Set(false),
		p.MotorTimeout.Set(200),
		p.KeyboardJumpers.Set(0x04),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// HardwareRevision returns the hardware revision selected by the preferences with
// any overrides applied.
func (p *Preferences) HardwareRevision() (revision.Revision, error) {
	r, err := revision.Lookup(p.Revision.String())
	if err != nil {
		return revision.Revision{}, err
	}
	if p.RTCSwapBits.Get().(bool) {
		r.SwapRTCBits()
	}
	return r, nil
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
