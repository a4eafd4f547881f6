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

package rtc

import (
	"fmt"
	"time"

	"github.com/eacaemu/eg3200/hardware/clocks"
)

// NumRegisters is the number of registers in the clock.
const NumRegisters = 13

// Register indexes.
const (
	SecondsOnes = iota
	SecondsTens
	MinutesOnes
	MinutesTens
	HoursOnes
	HoursTens
	Weekday
	DayOnes
	DayTens
	MonthOnes
	MonthTens
	YearOnes
	YearTens
)

// Flags in the HoursTens and DayTens registers.
const (
	PMFlag     = 0x04
	Hour24Flag = 0x08
	LeapFlag   = 0x04
)

// mask for the digit part of the HoursTens and DayTens registers
const tensMask = 0x03

// TicksPerSecond is the number of calls to Tick() for every call to
// Rollover().
const TicksPerSecond = clocks.InterruptsPerSecond

// RTC is the register file and port latch of the clock.
type RTC struct {
	regs [NumRegisters]uint8

	// bits of the mode port
	readBit  uint8
	writeBit uint8

	// the most recent value written to the mode port, masked to the read and
	// write bits
	mode uint8

	// the latch written to by the address/data port. pending is true until
	// the latch has been committed
	addr    uint8
	data    uint8
	pending bool

	// number of ticks since the last rollover
	ticks int
}

// NewRTC is the preferred method of initialisation for the RTC type. The
// arguments are the bits of the mode port for the read and write lines.
func NewRTC(readBit uint8, writeBit uint8) *RTC {
	return &RTC{
		readBit:  readBit,
		writeBit: writeBit,
	}
}

func (rtc *RTC) String() string {
	h := int(rtc.regs[HoursTens]&tensMask)*10 + int(rtc.regs[HoursOnes])
	s := fmt.Sprintf("%02d:%x%x:%x%x", h, rtc.regs[MinutesTens], rtc.regs[MinutesOnes],
		rtc.regs[SecondsTens], rtc.regs[SecondsOnes])
	if rtc.regs[HoursTens]&Hour24Flag == 0 {
		if rtc.regs[HoursTens]&PMFlag == PMFlag {
			s = fmt.Sprintf("%s PM", s)
		} else {
			s = fmt.Sprintf("%s AM", s)
		}
	}
	d := int(rtc.regs[DayTens]&tensMask)*10 + int(rtc.regs[DayOnes])
	s = fmt.Sprintf("%s %02d/%x%x/%x%x wd%d", s, d, rtc.regs[MonthTens], rtc.regs[MonthOnes],
		rtc.regs[YearTens], rtc.regs[YearOnes], rtc.regs[Weekday])
	if rtc.regs[DayTens]&LeapFlag == LeapFlag {
		s = fmt.Sprintf("%s leap", s)
	}
	return s
}

// Reset the port latch and the tick counter. The registers are not changed.
func (rtc *RTC) Reset() {
	rtc.mode = 0
	rtc.addr = 0
	rtc.data = 0
	rtc.pending = false
	rtc.ticks = 0
}

// Seed the registers from a time value.
//
// In twelve hour mode the PM flag follows the rollover, which toggles PM
// when the hour passes from 12 to 1 and advances the day when PM clears. So
// midnight is 12 PM and noon is 12 AM. The day advances at 1 AM, so the hour
// after midnight is seeded with the date of the previous day.
//
// The leap year flag is cleared by the rollover at the end of February. It is
// set if the next February to be reached has 29 days.
func (rtc *RTC) Seed(t time.Time, hour24 bool) {
	bcd := func(v int, ones int, tens int) {
		rtc.regs[ones] = uint8(v % 10)
		rtc.regs[tens] = uint8(v / 10 % 10)
	}

	bcd(t.Second(), SecondsOnes, SecondsTens)
	bcd(t.Minute(), MinutesOnes, MinutesTens)

	if hour24 {
		bcd(t.Hour(), HoursOnes, HoursTens)
		rtc.regs[HoursTens] |= Hour24Flag
	} else {
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		bcd(h, HoursOnes, HoursTens)
		if t.Hour() == 0 || t.Hour() > 12 {
			rtc.regs[HoursTens] |= PMFlag
		}
	}

	if !hour24 && t.Hour() == 0 {
		t = t.AddDate(0, 0, -1)
	}

	rtc.regs[Weekday] = uint8(t.Weekday())
	bcd(t.Day(), DayOnes, DayTens)

	year := t.Year()
	if t.Month() > time.February {
		year++
	}
	if isLeap(year) {
		rtc.regs[DayTens] |= LeapFlag
	}
	bcd(int(t.Month()), MonthOnes, MonthTens)
	bcd(t.Year()%100, YearOnes, YearTens)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Register returns the value of the register. Returns zero if the register
// does not exist.
func (rtc *RTC) Register(reg int) uint8 {
	if reg < 0 || reg >= NumRegisters {
		return 0
	}
	return rtc.regs[reg]
}

// SetRegister sets the value of the register. Only the low nibble is stored.
// Registers that do not exist are ignored.
func (rtc *RTC) SetRegister(reg int, v uint8) {
	if reg < 0 || reg >= NumRegisters {
		return
	}
	rtc.regs[reg] = v & 0x0f
}

// WriteAddrData latches the address (high nibble) and data (low nibble).
func (rtc *RTC) WriteAddrData(v uint8) {
	rtc.addr = v >> 4
	rtc.data = v & 0x0f
	rtc.pending = true
}

// ReadAddrData returns the register at the latched address if the read bit is
// set in the mode port. Otherwise returns zero.
func (rtc *RTC) ReadAddrData() uint8 {
	if rtc.mode&rtc.readBit != rtc.readBit || rtc.readBit == 0 {
		return 0
	}
	return rtc.Register(int(rtc.addr))
}

// WriteMode sets the mode port. Moving from a mode with the write bit set to a
// mode with neither bit set commits the latch to the register file, if it has
// not been committed already. Returns true if a register was changed.
func (rtc *RTC) WriteMode(v uint8) bool {
	v &= rtc.readBit | rtc.writeBit

	commit := rtc.mode&rtc.writeBit == rtc.writeBit && v == 0
	rtc.mode = v

	if !commit || !rtc.pending {
		return false
	}

	rtc.pending = false
	if rtc.addr >= NumRegisters {
		return false
	}
	rtc.regs[rtc.addr] = rtc.data
	return true
}

// ReadMode returns the current value of the mode port.
func (rtc *RTC) ReadMode() uint8 {
	return rtc.mode
}

// Tick counts a periodic interrupt. Returns true if the clock advanced by one
// second.
func (rtc *RTC) Tick() bool {
	rtc.ticks++
	if rtc.ticks < TicksPerSecond {
		return false
	}
	rtc.ticks = 0
	rtc.Rollover()
	return true
}
