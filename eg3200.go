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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/eacaemu/eg3200/cmdfile"
	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/easyterm"
	"github.com/eacaemu/eg3200/environment"
	"github.com/eacaemu/eg3200/hardware"
	"github.com/eacaemu/eg3200/hardware/clocks"
	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/hardware/floppy"
	"github.com/eacaemu/eg3200/hardware/keyboard"
	"github.com/eacaemu/eg3200/hardware/memory/banks"
	"github.com/eacaemu/eg3200/hardware/pg631"
	"github.com/eacaemu/eg3200/hardware/preferences"
	"github.com/eacaemu/eg3200/hardware/printer"
	"github.com/eacaemu/eg3200/hardware/revision"
	"github.com/eacaemu/eg3200/hardware/rtc"
	"github.com/eacaemu/eg3200/loader"
	"github.com/eacaemu/eg3200/logger"
	"github.com/eacaemu/eg3200/modalflag"
	"github.com/eacaemu/eg3200/paths"
	"github.com/eacaemu/eg3200/prefs"
	"github.com/eacaemu/eg3200/script"
	"github.com/eacaemu/eg3200/statsview"
	"github.com/eacaemu/eg3200/version"
	"github.com/eacaemu/eg3200/wavwriter"
	"golang.org/x/term"
)

// error patterns for problems with the arguments of a mode
const (
	WrongFileKind   = "%s is not a %s"
	WrongArgCount   = "arguments: %s"
	NoBankSelect    = "the %s has no bank select port"
	BadBankValue    = "bank select value: %v"
	NoSpeakerOutput = "the script did not toggle the speaker"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("MAP", "CLOCK", "CMD", "SCRIPT", "KEYBOARD", "DUMP", "SPEAKER")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	// ctrl-c cancels the context. modes that run for a long time check it
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch md.Mode() {
	case "MAP":
		err = memoryMap(md)

	case "CLOCK":
		err = clock(ctx, md)

	case "CMD":
		err = quickload(md)

	case "SCRIPT":
		err = runScript(ctx, md)

	case "KEYBOARD":
		err = keys(ctx, md)

	case "DUMP":
		err = dump(md)

	case "SPEAKER":
		err = speakerWAV(ctx, md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		stop()
		os.Exit(20)
	}
}

// flags shared by every mode
type common struct {
	log       *bool
	prefs     *string
	rom       *string
	statsview *bool
}

func addCommon(md *modalflag.Modes) *common {
	c := &common{
		log:   md.AddBool("log", false, "echo log to stdout"),
		prefs: md.AddString("prefs", "", "preferences for this run. key::value pairs separated by semi-colons"),
		rom:   md.AddString("rom", "", "ROM image to use. file or http(s) URL"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// setup the ambient parts of the program according to the common flags and
// return a new environment for the main emulation
func (c *common) setup() (*environment.Environment, error) {
	if *c.log {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stdout), true)
		} else {
			logger.SetEcho(os.Stdout, true)
		}
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(os.Stdout)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	p, err := preferences.NewPreferences("")
	if err != nil {
		return nil, err
	}

	if *c.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}

	return environment.NewEnvironment(environment.MainEmulation, p)
}

// load the ROM named by the -rom flag. no ROM is not an error
func (c *common) loadROM() ([]uint8, error) {
	if *c.rom == "" {
		return nil, nil
	}
	ld := loader.NewLoader(*c.rom)
	if ld.Kind != loader.ROM {
		return nil, curated.Errorf(WrongFileKind, *c.rom, "ROM image")
	}
	if err := ld.Load(); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "rom", "%s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)
	return ld.Data, nil
}

func (c *common) machine() (*hardware.Machine, error) {
	env, err := c.setup()
	if err != nil {
		return nil, err
	}
	rom, err := c.loadROM()
	if err != nil {
		return nil, err
	}
	return hardware.NewMachine(env, rom)
}

func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	if err != nil {
		return false, err
	}
	return p == modalflag.ParseContinue, nil
}

func memoryMap(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	md.AdditionalHelp("the optional argument is a value written to the bank select port (hex)")
	if ok, err := parseMode(md); !ok {
		return err
	}

	env, err := c.setup()
	if err != nil {
		return err
	}
	rom, err := c.loadROM()
	if err != nil {
		return err
	}

	rev, err := env.Prefs.HardwareRevision()
	if err != nil {
		return err
	}

	if rev.ID == revision.PG631 {
		if len(md.RemainingArgs()) > 0 {
			return curated.Errorf(NoBankSelect, rev.Description)
		}
		m, err := pg631.NewMachine(env, rom)
		if err != nil {
			return err
		}
		fmt.Println(m.Revision)
		fmt.Print(m.Mem.Summary())
		return nil
	}

	m, err := hardware.NewMachine(env, rom)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		v, err := strconv.ParseUint(strings.TrimPrefix(md.GetArg(0), "0x"), 16, 8)
		if err != nil {
			return curated.Errorf(BadBankValue, err)
		}
		m.Out(hardware.PortBankSelect, uint8(v))
	default:
		return curated.Errorf(WrongArgCount, "too many arguments")
	}

	fmt.Println(m.Revision)
	fmt.Printf("banks: %s\n", m.Banks)
	fmt.Print(m.Mem.Summary())

	return nil
}

func clock(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	seconds := md.AddInt("seconds", 10, "number of seconds to run the clock for. zero runs until interrupted (live only)")
	live := md.AddBool("live", false, "run the clock in real time")
	if ok, err := parseMode(md); !ok {
		return err
	}

	m, err := c.machine()
	if err != nil {
		return err
	}

	fmt.Println(m.RTC)

	if !*live {
		for range *seconds {
			m.Advance(clocks.MainClock)
			fmt.Println(m.RTC)
		}
		return nil
	}

	rt := hardware.RealTime(func() bool {
		return ctx.Err() != nil
	})

	var n int
	return m.Run(func() (hardware.Govern, error) {
		n++
		if n%clocks.InterruptsPerSecond == 0 {
			fmt.Println(m.RTC)
			if *seconds > 0 && n/clocks.InterruptsPerSecond >= *seconds {
				return hardware.Ending, nil
			}
		}
		return rt()
	})
}

func quickload(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	hexdump := md.AddBool("dump", false, "hex dump the memory of each loaded block")
	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(WrongArgCount, "a single /CMD file is required")
	}

	ld := loader.NewLoader(md.GetArg(0))
	if ld.Kind != loader.CMD {
		return curated.Errorf(WrongFileKind, ld.Filename, "/CMD file")
	}

	m, err := c.machine()
	if err != nil {
		return err
	}

	if err := ld.Load(); err != nil {
		return err
	}

	f, err := cmdfile.Parse(ld.Data)
	if err != nil {
		return err
	}
	f.Load(m)

	fmt.Printf("%s (sha1 %s)\n", ld.ShortName(), ld.Hash)
	fmt.Print(f)
	fmt.Printf("%d bytes loaded\n", f.Size())

	if *hexdump {
		for _, b := range f.Blocks {
			top := int(b.Address) + len(b.Data) - 1
			fmt.Print(m.Mem.Dump(b.Address, uint16(min(top, 0xffff))))
		}
	}

	return nil
}

func runScript(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	screen := md.AddBool("screen", false, "print the screen when the script ends")
	capture := md.AddString("printer", "", "file to capture printer output to")
	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(WrongArgCount, "a single Lua script is required")
	}

	m, err := c.machine()
	if err != nil {
		return err
	}

	var prn *printer.Capture
	if *capture != "" {
		f, err := os.Create(*capture)
		if err != nil {
			return err
		}
		defer f.Close()
		prn = printer.NewCapture(f)
		prn.Translate = true
		m.AttachPrinter(prn)
	}

	scr := script.NewScript(m, os.Stdout)
	defer scr.Close()

	if err := scr.RunFile(ctx, md.GetArg(0)); err != nil {
		return err
	}

	if prn != nil && prn.Err() != nil {
		return prn.Err()
	}

	if *screen {
		fmt.Println(m.Video.Screen().ANSI())
	}

	return nil
}

func speakerWAV(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	wav := md.AddString("wav", "", "WAV file to write. a new file in the recordings directory if empty")
	rate := md.AddInt("rate", 44100, "sample rate of the WAV file")
	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(WrongArgCount, "a single Lua script is required")
	}

	m, err := c.machine()
	if err != nil {
		return err
	}

	scr := script.NewScript(m, os.Stdout)
	defer scr.Close()

	if err := scr.RunFile(ctx, md.GetArg(0)); err != nil {
		return err
	}

	if *wav == "" {
		name := strings.TrimSuffix(filepath.Base(md.GetArg(0)), filepath.Ext(md.GetArg(0)))
		*wav, err = paths.ResourcePath("recordings", paths.UniqueFilename("speaker", name, "wav", time.Now()))
		if err != nil {
			return err
		}
	}

	ww, err := wavwriter.New(*wav, *rate)
	if err != nil {
		return err
	}
	ww.SetAudio(m.Speaker.Render(clocks.MainClock, *rate, m.Cycles()))
	if ww.Len() == 0 {
		return curated.Errorf(NoSpeakerOutput)
	}

	if err := ww.EndMixing(); err != nil {
		return err
	}

	fmt.Printf("%d toggles written to %s\n", len(m.Speaker.Toggles()), *wav)

	return nil
}

// the number of periodic interrupts that a key is held down for in KEYBOARD
// mode
const keyHold = 4

func keys(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	md.AdditionalHelp("keys typed at the terminal are pressed in the keyboard matrix. ctrl-c to end")
	if ok, err := parseMode(md); !ok {
		return err
	}

	m, err := c.machine()
	if err != nil {
		return err
	}

	pt, err := easyterm.Open(50 * time.Millisecond)
	if err != nil {
		return err
	}
	defer pt.CleanUp()

	for ctx.Err() == nil {
		k, ok, err := pt.ReadKey()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if k.Special == easyterm.Interrupt {
			return nil
		}

		names, err := matrixKeys(k)
		if err != nil {
			logger.Log(logger.Allow, "keyboard", err)
			continue
		}

		for _, n := range names {
			if err := m.Keyboard.Press(n); err != nil {
				return err
			}
		}
		m.Advance(clocks.CyclesPerInterrupt * keyHold)

		fmt.Printf("%-12s %-20s rows=%02x fn=%02x kp=%02x ext=%02x\r\n", k, m.Keyboard,
			m.Keyboard.Read(0xff), m.Keyboard.Read(keyboard.FunctionOffset),
			m.Keyboard.Read(keyboard.NumericOffset), m.Keyboard.Read(keyboard.ExtendedOffset))

		m.Keyboard.ReleaseAll()
	}

	return nil
}

// the keys in the matrix for a keypress at the terminal
func matrixKeys(k easyterm.Key) ([]string, error) {
	switch k.Special {
	case easyterm.None:
	case easyterm.CursorUp:
		return []string{"UP"}, nil
	case easyterm.CursorDown:
		return []string{"DOWN"}, nil
	case easyterm.CursorForward:
		return []string{"RIGHT"}, nil
	case easyterm.CursorBackward, easyterm.Backspace:
		return []string{"LEFT"}, nil
	case easyterm.Enter:
		return []string{"ENTER"}, nil
	case easyterm.Escape:
		return []string{"BREAK"}, nil
	case easyterm.Function1:
		return []string{"F1"}, nil
	case easyterm.Function2:
		return []string{"F2"}, nil
	case easyterm.Function3:
		return []string{"F3"}, nil
	case easyterm.Function4:
		return []string{"F4"}, nil
	default:
		return nil, curated.Errorf(keyboard.UnknownKey, k)
	}

	name, shift, ok := keyboard.LookupRune(k.Rune)
	if !ok {
		return nil, curated.Errorf(keyboard.UnknownKey, k)
	}
	if shift {
		return []string{name, "LSHIFT"}, nil
	}
	return []string{name}, nil
}

// the parts of the machine included in the DUMP graph. the memory areas are
// left out because the graph would be unreadable
type machineGraph struct {
	Revision revision.Revision
	Banks    banks.State
	RTC      *rtc.RTC
	CRTC     *crtc.CRTC
	Keyboard *keyboard.Keyboard
	Floppy   *floppy.Interface
	Printer  *printer.Port
	IRQ      uint8
	Cycles   uint64
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	output := md.AddString("o", "", "file to write the graphviz output to. stdout if empty")
	pre := md.AddString("script", "", "Lua script to run before the dump")
	if ok, err := parseMode(md); !ok {
		return err
	}

	m, err := c.machine()
	if err != nil {
		return err
	}

	if *pre != "" {
		if err := runDumpScript(m, *pre); err != nil {
			return err
		}
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, &machineGraph{
		Revision: m.Revision,
		Banks:    m.Banks.State(),
		RTC:      m.RTC,
		CRTC:     m.CRTC,
		Keyboard: m.Keyboard,
		Floppy:   m.Floppy,
		Printer:  m.Printer,
		IRQ:      m.IRQStatus(),
		Cycles:   m.Cycles(),
	})

	return nil
}

func runDumpScript(m *hardware.Machine, filename string) error {
	scr := script.NewScript(m, os.Stdout)
	defer scr.Close()
	return scr.RunFile(context.Background(), filename)
}
