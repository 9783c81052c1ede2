package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/profile"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .zip or .7z)")
	saveFolder := flag.String("saves", "saves", "The folder battery saves are kept in, empty to disable")
	steps := flag.Uint64("steps", 0, "Stop after this many instructions, 0 to run until STOP")
	freq := flag.Uint("freq", 0, "Clock cycles per second, 0 to run unthrottled")
	trace := flag.Bool("trace", false, "Print every executed instruction to stdout")
	profileFile := flag.String("profile", "", "Write a chart of executed instructions to this file (.png, .svg or .pdf)")
	stateFile := flag.String("state", "", "Restore state from this file if it exists, and write it on exit")
	logLevel := flag.String("log-level", "info", "The log level: debug, info, warn or error")
	stack := flag.String("stack", "", "The stack window as low:high in hex, e.g. C000:FFFE")
	flag.Parse()

	if err := run(*romFile, *saveFolder, *steps, *freq, *trace, *profileFile, *stateFile, *logLevel, *stack); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(romFile, saveFolder string, steps uint64, freq uint, trace bool, profileFile, stateFile, logLevel, stack string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithWriter(os.Stderr, level)

	if romFile == "" {
		return fmt.Errorf("no rom file given, see -help")
	}
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithSaveDir(saveFolder),
		gameboy.WithFrequency(freq),
		gameboy.WithStepLimit(steps),
	}
	if stack != "" {
		low, high, err := parseWindow(stack)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithStackWindow(low, high))
	}
	if stateFile != "" {
		opts = append(opts, gameboy.WithStateFile(stateFile))
	}

	var prof *profile.Profile
	if profileFile != "" {
		prof = profile.New()
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if trace || prof != nil {
		opts = append(opts, gameboy.WithTrace(func(pc uint16, in cpu.Instruction, cycles uint8) {
			if trace {
				fmt.Fprintln(out, formatTrace(pc, in, cycles))
			}
			if prof != nil {
				prof.Record(in.Name(), cycles)
			}
		}))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := gb.Run(ctx)
	if runErr != nil {
		logger.Errorf("%v", runErr)
	}
	logger.Infof("executed %d instructions", gb.Steps())

	// saves are flushed even when the run faulted
	if err := gb.Close(); err != nil {
		logger.Errorf("%v", err)
	}

	if prof != nil {
		if err := prof.Save(profileFile, 40); err != nil {
			logger.Errorf("failed to write profile: %v", err)
		} else {
			logger.Infof("wrote profile to %s", profileFile)
		}
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

// formatTrace formats one executed instruction as
// "PC: opcode mnemonic cycles".
func formatTrace(pc uint16, in cpu.Instruction, cycles uint8) string {
	code := fmt.Sprintf("%02X", in.Code())
	if in.Code() > 0xFF {
		code = fmt.Sprintf("%04X", in.Code())
	}
	return fmt.Sprintf("%04X: %-4s %-16s %2d", pc, code, in.Name(), cycles)
}

// parseWindow parses a stack window of the form "C000:FFFE".
func parseWindow(s string) (uint16, uint16, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid stack window %q, expected low:high", s)
	}
	low, err := strconv.ParseUint(strings.TrimPrefix(lo, "0x"), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid stack window %q: %w", s, err)
	}
	high, err := strconv.ParseUint(strings.TrimPrefix(hi, "0x"), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid stack window %q: %w", s, err)
	}
	if low > high {
		return 0, 0, fmt.Errorf("invalid stack window %q, low is above high", s)
	}
	return uint16(low), uint16(high), nil
}
