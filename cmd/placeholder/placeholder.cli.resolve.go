package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	placeholder "github.com/itsatony/go-placeholder"
)

// resolveConfig holds parsed resolve command configuration
type resolveConfig struct {
	text         string
	filePath     string
	data         keyValueList
	dataFilePath string
	useEnv       bool
	envPrefix    string
	outputPath   string
	lenient      bool
	markers      markerConfig
}

// keyValueList collects repeated -d key=value flags.
type keyValueList struct {
	values map[string]string
}

func (l *keyValueList) String() string {
	return fmt.Sprint(l.values)
}

func (l *keyValueList) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return errors.New(ErrMsgInvalidData)
	}
	if l.values == nil {
		l.values = make(map[string]string)
	}
	l.values[key] = value
	return nil
}

func runResolve(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseResolveFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingInput, err)
		return ExitCodeUsageError
	}

	text, code := loadText(cfg.text, cfg.filePath, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	resolver, err := buildResolver(cfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadDataFailed, err)
		return ExitCodeInputError
	}

	engine, code := buildEngine(&cfg.markers, cfg.lenient, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	result, err := engine.ReplacePlaceholders(text, resolver)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgResolveFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseResolveFlags(args []string) (*resolveConfig, error) {
	fs := flag.NewFlagSet(CmdNameResolve, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &resolveConfig{}

	fs.StringVar(&cfg.text, FlagText, "", "")
	fs.StringVar(&cfg.text, FlagTextShort, "", "")
	fs.StringVar(&cfg.filePath, FlagFile, "", "")
	fs.StringVar(&cfg.filePath, FlagFileShort, "", "")
	fs.Var(&cfg.data, FlagData, "")
	fs.Var(&cfg.data, FlagDataShort, "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.BoolVar(&cfg.useEnv, FlagEnv, false, "")
	fs.StringVar(&cfg.envPrefix, FlagEnvPrefix, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.lenient, FlagLenient, false, "")
	registerMarkerFlags(fs, &cfg.markers)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.text == "" && cfg.filePath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if cfg.text != "" && cfg.filePath != "" {
		return nil, errors.New(ErrMsgConflictingInput)
	}

	return cfg, nil
}

// loadText returns the input text from the --text flag or the --file path.
func loadText(text, filePath string, stdin io.Reader, stderr io.Writer) (string, int) {
	if filePath == "" {
		return text, ExitCodeSuccess
	}

	data, err := readInput(filePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return "", ExitCodeInputError
	}
	return string(data), ExitCodeSuccess
}

// buildResolver chains the configured sources: inline pairs first, then the
// data file, then the environment.
func buildResolver(cfg *resolveConfig) (placeholder.Resolver, error) {
	chain := placeholder.NewChainResolver()

	if len(cfg.data.values) > 0 {
		chain.Append(placeholder.MapResolver(cfg.data.values))
	}
	if cfg.dataFilePath != "" {
		yamlResolver, err := placeholder.NewYAMLResolverFromFile(cfg.dataFilePath)
		if err != nil {
			return nil, err
		}
		chain.Append(yamlResolver)
	}
	if cfg.useEnv || cfg.envPrefix != "" {
		if cfg.envPrefix != "" {
			chain.Append(placeholder.NewEnvResolverWithPrefix(cfg.envPrefix))
		} else {
			chain.Append(placeholder.NewEnvResolver())
		}
	}

	return chain, nil
}

func buildEngine(markers *markerConfig, lenient bool, stderr io.Writer) (*placeholder.Engine, int) {
	opts, err := markers.engineOptions()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return nil, ExitCodeUsageError
	}
	if lenient {
		opts = append(opts, placeholder.WithIgnoreUnresolvable(true))
	}

	engine, err := placeholder.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return nil, ExitCodeUsageError
	}
	return engine, ExitCodeSuccess
}
