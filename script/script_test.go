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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/environment"
	"github.com/eacaemu/eg3200/hardware"
	"github.com/eacaemu/eg3200/hardware/clocks"
	"github.com/eacaemu/eg3200/hardware/preferences"
	"github.com/eacaemu/eg3200/script"
	"github.com/eacaemu/eg3200/test"
)

func newScript(t *testing.T) (*script.Script, *hardware.Machine, *test.Writer) {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.Script, p)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise(time.Date(1983, time.May, 2, 10, 30, 0, 0, time.UTC)))
	test.DemandSuccess(t, env.Prefs.RTCUTC.Set(true))

	m, err := hardware.NewMachine(env, make([]uint8, 0x800))
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	scr := script.NewScript(m, w)
	t.Cleanup(scr.Close)
	return scr, m, w
}

func TestMemory(t *testing.T) {
	scr, m, w := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		write(0x5000, 0x37)
		print(read(0x5000))
		poke(0x5001, 0x38)
		print(peek(0x5001))
	`))
	test.ExpectEquality(t, m.Peek(0x5000), 0x37)
	test.ExpectSuccess(t, w.Compare("55\n56\n"))

	err := scr.RunString(context.Background(), `write(0x5000, 0x100)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestPorts(t *testing.T) {
	scr, m, _ := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		out(0xf6, 14)
		out(0xf7, 0x12)
	`))
	test.ExpectEquality(t, m.CRTC.Cursor(), 0x1200)
}

func TestInterrupts(t *testing.T) {
	scr, m, w := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		print(advance(`+strconv.Itoa(clocks.CyclesPerInterrupt*2)+`))
		print(irq())
		print(cycles())
	`))
	test.ExpectEquality(t, m.Cycles(), clocks.CyclesPerInterrupt*2)
	test.ExpectSuccess(t, w.Compare("2\n128\n200000\n"))

	err := scr.RunString(context.Background(), `advance(-1)`)
	test.ExpectFailure(t, err)
}

func TestKeyboard(t *testing.T) {
	scr, m, w := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		press("A")
		print(peek(0x3801))
		release("A")
		print(peek(0x3801))
	`))
	test.ExpectSuccess(t, w.Compare("2\n0\n"))

	err := scr.RunString(context.Background(), `press("NOSUCHKEY")`)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, scr.RunString(context.Background(), `
		press("ENTER")
		releaseall()
	`))
	test.ExpectFailure(t, m.Keyboard.Pressed("ENTER"))
}

func TestScreen(t *testing.T) {
	scr, _, w := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		for a = 0x3c00, 0x3fff do
			write(a, 32)
		end
		write(0x3c00, 72)
		write(0x3c01, 73)
		print(screen())
	`))
	test.ExpectSuccess(t, w.Compare("HI\n"))
}

func TestClock(t *testing.T) {
	scr, _, w := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `print(clock())`))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "10:30:00"))
}

func TestSnapshot(t *testing.T) {
	scr, m, _ := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		write(0x5000, 1)
		s = snapshot()
		write(0x5000, 2)
		restore(s)
	`))
	test.ExpectEquality(t, m.Peek(0x5000), 1)

	// a snapshot can be restored more than once
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		write(0x5000, 3)
		restore(s)
	`))
	test.ExpectEquality(t, m.Peek(0x5000), 1)

	err := scr.RunString(context.Background(), `restore(10)`)
	test.ExpectFailure(t, err)
}

func TestSpeaker(t *testing.T) {
	scr, _, w := newScript(t)
	test.DemandSuccess(t, scr.RunString(context.Background(), `
		read(0x3860)
		write(0x3860, 0)
		print(toggles())
	`))
	test.ExpectSuccess(t, w.Compare("2\n"))
}

func TestFile(t *testing.T) {
	scr, m, _ := newScript(t)
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`write(0x6000, 0xaa)`), 0o644))
	test.DemandSuccess(t, scr.RunFile(context.Background(), fn))
	test.ExpectEquality(t, m.Peek(0x6000), 0xaa)

	err := scr.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestCancel(t *testing.T) {
	scr, _, _ := newScript(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := scr.RunString(ctx, `while true do advance(1) end`)
	test.ExpectFailure(t, err)
}
