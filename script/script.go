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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/hardware"
	"github.com/eacaemu/eg3200/logger"
	lua "github.com/yuin/gopher-lua"
)

// List of error patterns returned by the script package.
const (
	ScriptError     = "script: %v"
	UnknownSnapshot = "script: unknown snapshot (%d)"
)

// Script is a Lua state bound to a machine.
type Script struct {
	L   *lua.LState
	m   *hardware.Machine
	out io.Writer

	snapshots []*hardware.State
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from print() is written to out, which may be nil.
func NewScript(m *hardware.Machine, out io.Writer) *Script {
	if out == nil {
		out = io.Discard
	}

	scr := &Script{
		L:   lua.NewState(),
		m:   m,
		out: out,
	}

	for name, fn := range map[string]lua.LGFunction{
		"read":       scr.read,
		"write":      scr.write,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"inp":        scr.inp,
		"out":        scr.outp,
		"advance":    scr.advance,
		"interrupt":  scr.interrupt,
		"irq":        scr.irq,
		"cycles":     scr.cycles,
		"reset":      scr.reset,
		"clock":      scr.clock,
		"press":      scr.press,
		"release":    scr.release,
		"releaseall": scr.releaseAll,
		"screen":     scr.screen,
		"toggles":    scr.toggles,
		"snapshot":   scr.snapshot,
		"restore":    scr.restore,
		"log":        scr.log,
		"print":      scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString runs the Lua source. The script stops early if the context is
// cancelled.
func (scr *Script) RunString(ctx context.Context, src string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua file. The script stops early if the context is
// cancelled.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) address(n int) uint16 {
	return uint16(scr.L.CheckInt(n))
}

func (scr *Script) value(n int) uint8 {
	v := scr.L.CheckInt(n)
	if v < 0 || v > 0xff {
		scr.L.ArgError(n, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

func (scr *Script) push(v int) int {
	scr.L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) read(L *lua.LState) int {
	return scr.push(int(scr.m.Read(scr.address(1))))
}

func (scr *Script) write(L *lua.LState) int {
	scr.m.Write(scr.address(1), scr.value(2))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	return scr.push(int(scr.m.Peek(scr.address(1))))
}

func (scr *Script) poke(L *lua.LState) int {
	scr.m.Poke(scr.address(1), scr.value(2))
	return 0
}

func (scr *Script) inp(L *lua.LState) int {
	return scr.push(int(scr.m.In(scr.address(1))))
}

func (scr *Script) outp(L *lua.LState) int {
	scr.m.Out(scr.address(1), scr.value(2))
	return 0
}

func (scr *Script) advance(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "negative cycle count")
	}
	return scr.push(scr.m.Advance(uint64(n)))
}

func (scr *Script) interrupt(L *lua.LState) int {
	scr.m.PeriodicInterrupt()
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	return scr.push(int(scr.m.IRQStatus()))
}

func (scr *Script) cycles(L *lua.LState) int {
	return scr.push(int(scr.m.Cycles()))
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Reset()
	return 0
}

func (scr *Script) clock(L *lua.LState) int {
	L.Push(lua.LString(scr.m.RTC.String()))
	return 1
}

func (scr *Script) press(L *lua.LState) int {
	if err := scr.m.Keyboard.Press(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	if err := scr.m.Keyboard.Release(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) releaseAll(L *lua.LState) int {
	scr.m.Keyboard.ReleaseAll()
	return 0
}

func (scr *Script) screen(L *lua.LState) int {
	L.Push(lua.LString(scr.m.Video.Screen().Trimmed()))
	return 1
}

func (scr *Script) toggles(L *lua.LState) int {
	return scr.push(len(scr.m.Speaker.Toggles()))
}

func (scr *Script) snapshot(L *lua.LState) int {
	scr.snapshots = append(scr.snapshots, scr.m.Snapshot())
	return scr.push(len(scr.snapshots) - 1)
}

func (scr *Script) restore(L *lua.LState) int {
	id := L.CheckInt(1)
	if id < 0 || id >= len(scr.snapshots) {
		L.RaiseError("%v", curated.Errorf(UnknownSnapshot, id))
	}
	// plumbing a copy so that the snapshot can be restored more than once
	scr.m.Plumb(scr.snapshots[id].Snapshot())
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}
