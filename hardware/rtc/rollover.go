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

// number of days in each month. February is adjusted by the leap flag
var monthLength = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const february = 1

// increment a pair of digit registers. the tens register may have flag bits
// outside of mask which are preserved. returns the new value of the pair
func (rtc *RTC) incDigits(ones int, tens int, mask uint8) int {
	rtc.regs[ones]++
	if rtc.regs[ones] > 9 {
		rtc.regs[ones] = 0
		t := (rtc.regs[tens] & mask) + 1
		rtc.regs[tens] = (rtc.regs[tens] &^ mask) | (t & mask)
	}
	return rtc.digits(ones, tens, mask)
}

// value of a pair of digit registers
func (rtc *RTC) digits(ones int, tens int, mask uint8) int {
	return int(rtc.regs[tens]&mask)*10 + int(rtc.regs[ones])
}

// set a pair of digit registers, preserving flag bits outside of mask
func (rtc *RTC) setDigits(ones int, tens int, mask uint8, v int) {
	rtc.regs[ones] = uint8(v % 10)
	rtc.regs[tens] = (rtc.regs[tens] &^ mask) | (uint8(v/10) & mask)
}

// Rollover advances the clock by one second.
func (rtc *RTC) Rollover() {
	if !rtc.sixty(SecondsOnes, SecondsTens) {
		return
	}
	if !rtc.sixty(MinutesOnes, MinutesTens) {
		return
	}
	if !rtc.hours() {
		return
	}
	rtc.weekday()
	if !rtc.day() {
		return
	}
	if !rtc.month() {
		return
	}
	rtc.year()
}

// seconds and minutes. returns true on carry
func (rtc *RTC) sixty(ones int, tens int) bool {
	rtc.regs[ones]++
	if rtc.regs[ones] <= 9 {
		return false
	}
	rtc.regs[ones] = 0
	rtc.regs[tens]++
	if rtc.regs[tens] <= 5 {
		return false
	}
	rtc.regs[tens] = 0
	return true
}

// returns true if the day should advance
func (rtc *RTC) hours() bool {
	if rtc.regs[HoursTens]&Hour24Flag == Hour24Flag {
		if rtc.incDigits(HoursOnes, HoursTens, tensMask) < 24 {
			return false
		}
		rtc.setDigits(HoursOnes, HoursTens, tensMask, 0)
		return true
	}

	// the hour changes from 12 to 1 in 12 hour mode, toggling PM. the day
	// advances when PM is cleared
	if rtc.incDigits(HoursOnes, HoursTens, tensMask) <= 12 {
		return false
	}
	rtc.setDigits(HoursOnes, HoursTens, tensMask, 1)
	rtc.regs[HoursTens] ^= PMFlag
	return rtc.regs[HoursTens]&PMFlag == 0
}

func (rtc *RTC) weekday() {
	if rtc.regs[Weekday] >= 6 {
		rtc.regs[Weekday] = 0
	} else {
		rtc.regs[Weekday]++
	}
}

// returns true if the month should advance
func (rtc *RTC) day() bool {
	// month index is zero based. an invalid month uses the longest month
	// length
	m := rtc.digits(MonthOnes, MonthTens, 0x0f) - 1
	l := 31
	if m >= 0 && m < len(monthLength) {
		l = monthLength[m]
	}
	if m == february && rtc.regs[DayTens]&LeapFlag == LeapFlag {
		l++
	}

	if rtc.incDigits(DayOnes, DayTens, tensMask) <= l {
		return false
	}
	rtc.setDigits(DayOnes, DayTens, tensMask, 1)

	// the leap flag must be set again by software for the next leap year
	if m == february {
		rtc.regs[DayTens] &^= LeapFlag
	}

	return true
}

// returns true if the year should advance
func (rtc *RTC) month() bool {
	if rtc.incDigits(MonthOnes, MonthTens, 0x0f) <= 12 {
		return false
	}
	rtc.setDigits(MonthOnes, MonthTens, 0x0f, 1)
	return true
}

// the year does not carry
func (rtc *RTC) year() {
	if rtc.incDigits(YearOnes, YearTens, 0x0f) > 99 {
		rtc.setDigits(YearOnes, YearTens, 0x0f, 0)
	}
}
