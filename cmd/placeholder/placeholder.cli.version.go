package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	placeholder "github.com/itsatony/go-placeholder"
)

// versionConfig holds parsed version command configuration
type versionConfig struct {
	format string
}

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	if cfg.format == OutputFormatJSON {
		output := versionOutput{
			Version:   placeholder.Version,
			GoVersion: runtime.Version(),
		}
		jsonBytes, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline, placeholder.Version, runtime.Version())
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}
