package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"hexpanel/common/config"
	C "hexpanel/common/constant"
	"hexpanel/common/parser"
	"hexpanel/dumper"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// errHelp is returned after usage has been printed for -h.
var errHelp = errors.New("help requested")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errHelp) {
		return
	}
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("hexpanel", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		configFile    = fs.String("config", "", "YAML configuration file")
		logLevel      = fs.String("log-level", "info", "Log level: debug, info, warn, error")
		length        = fs.StringP("length", "n", "", "Only read N bytes of the input")
		byteCount     = fs.StringP("bytes", "c", "", "Alias of --length")
		skip          = fs.StringP("skip", "s", "0", "Skip the first N bytes; negative counts from the end")
		displayOffset = fs.StringP("display-offset", "o", "0", "Add N to the displayed offsets")
		blockSize     = fs.Int("block-size", C.DefaultBlockSize, "Bytes per line")
		groupSize     = fs.IntP("group-size", "g", C.DefaultGroupSize, "Bytes per hex group")
		endianness    = fs.String("endianness", C.BigEndian.String(), "Byte order within a group: big, little")
		noSqueezing   = fs.BoolP("no-squeezing", "v", false, "Show every line, even identical ones")
		color         = fs.String("color", C.ColorAuto.String(), "When to color the output: always, auto, never")
		border        = fs.String("border", C.BorderUnicode.String(), "Border style: unicode, ascii, none")
		plain         = fs.BoolP("plain", "p", false, "No color and no border")
		table         = fs.String("character-table", C.TableDefault.String(), "Character panel table: default, ascii, categories, codepage-437")
		help          = fs.BoolP("help", "h", false, "Display help text")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hexpanel [flags] [FILE]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fs.Usage()
		return errHelp
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("at most one input file expected, got %d", fs.NArg())
	}

	cfg := parser.DefaultConfig()
	if *configFile != "" {
		parsed, err := parser.ParseConfig(*configFile)
		if err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg = parsed
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("log-level", func() { cfg.LogConfig.LogLevel = *logLevel })
	// A limit given on the command line replaces the one from the file.
	set("length", func() {
		cfg.InputConfig.Length = *length
		if !fs.Changed("bytes") {
			cfg.InputConfig.Bytes = ""
		}
	})
	set("bytes", func() {
		cfg.InputConfig.Bytes = *byteCount
		if !fs.Changed("length") {
			cfg.InputConfig.Length = ""
		}
	})
	set("skip", func() { cfg.InputConfig.Skip = *skip })
	set("display-offset", func() { cfg.InputConfig.DisplayOffset = *displayOffset })
	set("block-size", func() { cfg.DisplayConfig.BlockSize = *blockSize })
	set("group-size", func() { cfg.DisplayConfig.GroupSize = *groupSize })
	set("endianness", func() { cfg.DisplayConfig.Endianness = *endianness })
	set("no-squeezing", func() { cfg.DisplayConfig.Squeeze = !*noSqueezing })
	set("color", func() { cfg.DisplayConfig.Color = *color })
	set("border", func() { cfg.DisplayConfig.Border = *border })
	set("character-table", func() { cfg.DisplayConfig.CharacterTable = *table })
	if *plain {
		cfg.DisplayConfig.Color = C.ColorNever.String()
		cfg.DisplayConfig.Border = C.BorderNone.String()
	}
	if fs.NArg() == 1 {
		cfg.InputConfig.Path = fs.Arg(0)
	}

	if err := applyLogLevel(cfg.LogConfig); err != nil {
		return err
	}
	if err := parser.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log.Debug("Parsed config", "input", cfg.InputConfig.Path)

	return dumper.Run(cfg, stdin, stdout)
}

func applyLogLevel(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s. Options are: debug, info, warn, error, fatal", cfg.LogLevel)
	}
	log.SetLevel(level)
	return nil
}
