// Command gbcore runs a ROM headlessly and reports what it prints over the
// serial port. It is intended for CPU test ROMs, which print "Passed" or
// "Failed" when they finish.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gomeboy/internal/gameboy"
	"github.com/thelolagemann/gomeboy/pkg/log"
	"github.com/thelolagemann/gomeboy/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	exitPassed = iota
	exitFailed
	exitError
)

// checkEvery is how many steps run between checks of the serial output
// and the timeout.
const checkEvery = 1 << 14

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	steps := flag.Uint64("steps", 50_000_000, "The maximum number of instructions to execute")
	until := flag.String("until", "Passed", "Stop once the serial output contains this string")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	boot := flag.Bool("boot", false, "Start from 0x0000 with zeroed registers instead of the post-boot state")
	timeout := flag.Duration("timeout", 0, "Give up after this long (0 disables the timeout)")
	flag.Parse()

	os.Exit(run(*romFile, *steps, *until, *trace, *boot, *timeout, os.Stdout))
}

func run(romFile string, steps uint64, until string, trace, boot bool, timeout time.Duration, out io.Writer) int {
	logger := log.New()
	if trace {
		logger = log.NewWithLevel(logrus.DebugLevel)
	}

	if romFile == "" {
		logger.Errorf("no rom file given, use -rom")
		return exitError
	}
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		logger.Errorf("%v", err)
		return exitError
	}
	logger.Infof("loaded %s (%d bytes, xxhash %016x)", romFile, len(rom), xxhash.Sum64(rom))

	var output bytes.Buffer
	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.SerialDebugger(io.MultiWriter(out, &output)),
	}
	if !boot {
		opts = append(opts, gameboy.NoBios())
	}
	if trace {
		opts = append(opts, gameboy.Debug())
	}
	gb := gameboy.NewGameBoy(rom, opts...)

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	result, executed := execute(ctx, gb, steps, until, &output)
	if result == exitError {
		logger.Errorf("timed out after %s", timeout)
	}

	p := message.NewPrinter(language.English)
	logger.Infof("%s", p.Sprintf("executed %d instructions, %d cycles in %s, fingerprint %016x",
		executed, gb.Cycles(), time.Since(start).Round(time.Millisecond), gb.Fingerprint()))
	if output.Len() > 0 && !strings.HasSuffix(output.String(), "\n") {
		fmt.Fprintln(out)
	}

	return result
}

// execute steps gb until steps instructions have run, the serial output
// contains "Failed" or until, or ctx is done. It returns the exit code and
// the number of instructions executed.
func execute(ctx context.Context, gb *gameboy.GameBoy, steps uint64, until string, output *bytes.Buffer) (int, uint64) {
	var executed uint64
	for executed < steps {
		gb.Step()
		executed++

		if executed%checkEvery != 0 && executed != steps {
			continue
		}
		switch {
		case strings.Contains(output.String(), "Failed"):
			return exitFailed, executed
		case until != "" && strings.Contains(output.String(), until):
			return exitPassed, executed
		case ctx.Err() != nil:
			return exitError, executed
		}
	}
	return exitPassed, executed
}
