package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/vpy/internal/app"
	"github.com/vk/vpy/internal/uikit"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("vpy", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
vpy - Loads UI definitions into widget trees and compiles them for a toolkit.

Usage:
  vpy [options] [UI_PATH]

Arguments:
  UI_PATH
    Path to a single UI definition or a directory containing %s files.

Available kits: %s

Options:
`, app.UIExtension, strings.Join(uikit.Names(), ", "))
		flagSet.PrintDefaults()
	}

	uiFlag := flagSet.String("ui", "", "Path to the UI definition file or directory.")
	uFlag := flagSet.String("u", "", "Path to the UI definition file or directory (shorthand).")
	kitFlag := flagSet.String("kit", "tkinter", "Toolkit the widget classes are resolved against.")
	formatFlag := flagSet.String("format", app.FormatTree, "Output format for loaded trees. Options: 'tree' or 'yaml'.")
	emitFlag := flagSet.Bool("emit", false, "Print the compiled class decorator of each root widget instead of the tree.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	configFlag := flagSet.String("config", "", "Path to an INI settings file whose [vpy] section provides option defaults.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *uiFlag != "" {
		path = *uiFlag
	} else if *uFlag != "" {
		path = *uFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("UI path determined.", "path", path)

	if path == "" {
		slog.Debug("No UI path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if *configFlag != "" {
		settings, err := app.LoadSettings(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applySettings(flagSet, settings, kitFlag, formatFlag, emitFlag, logFormatFlag, logLevelFlag)
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		UIPath:    path,
		Kit:       *kitFlag,
		Format:    strings.ToLower(*formatFlag),
		Emit:      *emitFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// applySettings copies settings into the flags the command line left unset.
func applySettings(flagSet *flag.FlagSet, s *app.Settings, kit, format *string, emit *bool, logFormat, logLevel *string) {
	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile := func(name string, target *string, value string) {
		if !explicit[name] && value != "" {
			*target = value
		}
	}
	fromFile("kit", kit, s.Kit)
	fromFile("format", format, s.Format)
	fromFile("log-format", logFormat, s.LogFormat)
	fromFile("log-level", logLevel, s.LogLevel)
	if !explicit["emit"] && s.Emit {
		*emit = true
	}
}
