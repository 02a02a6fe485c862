// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/faiface/mainthread"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/digest"
	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/gui/sdl"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"github.com/jetsetilly/gopherdmg/performance"
	"github.com/jetsetilly/gopherdmg/playmode"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/regression"
	"github.com/jetsetilly/gopherdmg/screenshot"
	"github.com/jetsetilly/gopherdmg/statsview"
	"github.com/jetsetilly/gopherdmg/terminal"
	"github.com/jetsetilly/gopherdmg/version"
)

// exit values returned to the operating system
const (
	exitOK        = 0
	exitParse     = 10
	exitModeError = 20
)

// the number of log entries shown after an emulation fault
const faultLogTail = 10

// errors caused by the program running in the emulation rather than by the
// command line or the host
var faultPatterns = []string{
	cpu.StopInstruction,
	cpu.UndefinedOpcode,
	cpu.UnimplementedInstruction,
}

// emulationFault returns true if err, or any error it wraps, is one of the
// faultPatterns.
func emulationFault(err error) bool {
	if !curated.IsAny(err) {
		return false
	}
	for _, p := range faultPatterns {
		if curated.Has(err, p) {
			return true
		}
	}
	return false
}

// #mainthread
func main() {
	exitVal := exitOK

	// SDL requires that window creation and event handling happens on the
	// main thread. the gui/sdl package uses mainthread.Call() for that
	mainthread.Run(func() {
		exitVal = launch(os.Stdout, os.Args[1:])
	})

	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the exit
// value for the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "PERFORMANCE", "DIGEST", "REGRESS", "MEMVIZ", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(output, md, false)

	case "TERM":
		err = run(output, md, true)

	case "PERFORMANCE":
		err = perform(output, md)

	case "DIGEST":
		err = digestMode(output, md)

	case "REGRESS":
		err = regress(output, md)

	case "MEMVIZ":
		err = memvizMode(output, md)

	case "VERSION":
		err = showVersion(output, md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if emulationFault(err) {
			logger.Tail(output, faultLogTail)
		}
		return exitModeError
	}

	return exitOK
}

// the flags shared by every mode that emulates a cartridge
type commonFlags struct {
	log       *bool
	bootROM   *string
	prefs     *string
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		bootROM:   md.AddString("bootrom", "", "boot ROM file. overrides gameboy.bootrom preference"),
		prefs:     md.AddString("prefs", "", "preferences to apply for this session. for example, \"display.scale::4\""),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// apply the common flags. the returned function should be deferred by the
// caller
func (fl commonFlags) apply(output io.Writer) func() {
	if *fl.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(*fl.prefs)

	var srv *statsview.Server
	if *fl.statsview {
		srv = statsview.Launch(output)
	}

	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherdmg", "unused preferences: %s", unused)
		}
		if srv != nil {
			srv.Stop()
		}
	}
}

// createGameBoy loads the cartridge and boot ROM and creates a GameBoy
func createGameBoy(md *modalflag.Modes, fl commonFlags) (*hardware.GameBoy, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	cart, err := cartridge.Load(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	bootROMFile := *fl.bootROM
	if bootROMFile == "" {
		bootROMFile = hwPrefs.BootROM.Get().(string)
	}

	var bootROM []uint8
	if bootROMFile != "" {
		bootROM, err = os.ReadFile(bootROMFile)
		if err != nil {
			return nil, err
		}
	}

	return hardware.NewGameBoy(cart, bootROM, hwPrefs)
}

func run(output io.Writer, md *modalflag.Modes, useTerminal bool) error {
	md.NewMode()
	fl := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer fl.apply(output)()

	gb, err := createGameBoy(md, fl)
	if err != nil {
		return err
	}

	guiPrefs, err := gui.NewPreferences()
	if err != nil {
		return err
	}

	var fe gui.Frontend
	if useTerminal {
		// log output would corrupt the display. entries logged while the
		// terminal is active are written once it has been restored
		logger.SetEcho(nil, false)
		if *fl.log {
			defer logger.WriteRecent(output)
		}

		fe, err = terminal.NewTerminal(guiPrefs, os.Stdin, os.Stdout)
	} else {
		fe, err = sdl.NewGUI(guiPrefs, fmt.Sprintf("%s - %s", version.ApplicationName, gb.Cart.Title))
	}
	if err != nil {
		return err
	}
	defer fe.Destroy()

	return playmode.Play(gb, fe, guiPrefs)
}

func perform(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	fl := addCommonFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "create profile reports: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer fl.apply(output)()

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	gb, err := createGameBoy(md, fl)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, gb, *duration)
}

func digestMode(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	fl := addCommonFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	png := md.AddString("png", "", "save final frame to PNG file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer fl.apply(output)()

	if *frames <= 0 {
		return fmt.Errorf("frames must be positive")
	}

	gb, err := createGameBoy(md, fl)
	if err != nil {
		return err
	}

	dig := digest.NewVideo()
	gb.LCD.AddFrameRenderer(dig)

	err = gb.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, dig.Hash())

	if *png != "" {
		guiPrefs, err := gui.NewPreferences()
		if err != nil {
			return err
		}
		err = screenshot.Save(*png, gb.LCD.CurrentImage(), guiPrefs.CurrentPalette(), guiPrefs.Scale.Get().(int))
		if err != nil {
			return err
		}
	}

	return nil
}

func regress(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("v", false, "output more detail")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return regression.RegressList(output)
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader = os.Stdin
			if *answerYes {
				confirmation = strings.NewReader("y")
			}
			return regression.RegressDelete(output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		md.NewMode()
		bootROM := md.AddString("bootrom", "", "boot ROM file")
		frames := md.AddInt("frames", 10, "number of frames to run")
		notes := md.AddString("notes", "", "annotation for the database")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("a single cartridge is required for %s mode", md)
		}

		reg, err := regression.NewVideoRegression(md.GetArg(0), *bootROM, *frames, *notes)
		if err != nil {
			return err
		}

		return regression.RegressAdd(output, reg)
	}

	return nil
}

func memvizMode(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	fl := addCommonFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run before mapping")
	dot := md.AddString("o", "cpu.dot", "output file (graphviz format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer fl.apply(output)()

	gb, err := createGameBoy(md, fl)
	if err != nil {
		return err
	}

	if *frames > 0 {
		err = gb.RunForFrameCount(*frames, nil)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(*dot)
	if err != nil {
		return err
	}
	defer f.Close()

	// the whole GameBoy is too large to be useful as a graph
	memviz.Map(f, gb.CPU)

	fmt.Fprintf(output, "CPU written to %s\n", *dot)

	return nil
}

func showVersion(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, strings.TrimSpace(r))
	}

	return nil
}
