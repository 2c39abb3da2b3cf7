package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	placeholder "github.com/itsatony/go-placeholder"
)

// inspectConfig holds parsed inspect command configuration
type inspectConfig struct {
	text     string
	filePath string
	format   string
	markers  markerConfig
}

// inspectedPart is the JSON shape of one parsed segment.
type inspectedPart struct {
	Type    string          `json:"type"`
	Text    string          `json:"text,omitempty"`
	Raw     string          `json:"raw,omitempty"`
	Key     []inspectedPart `json:"key,omitempty"`
	Default []inspectedPart `json:"default,omitempty"`
}

func runInspect(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseInspectFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingInput, err)
		return ExitCodeUsageError
	}

	text, code := loadText(cfg.text, cfg.filePath, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	engine, code := buildEngine(&cfg.markers, false, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	parsed := engine.Parse(text)

	if cfg.format == OutputFormatJSON {
		return outputInspectJSON(parsed, stdout, stderr)
	}
	return outputInspectText(parsed, stdout)
}

func parseInspectFlags(args []string) (*inspectConfig, error) {
	fs := flag.NewFlagSet(CmdNameInspect, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &inspectConfig{}

	fs.StringVar(&cfg.text, FlagText, "", "")
	fs.StringVar(&cfg.text, FlagTextShort, "", "")
	fs.StringVar(&cfg.filePath, FlagFile, "", "")
	fs.StringVar(&cfg.filePath, FlagFileShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	registerMarkerFlags(fs, &cfg.markers)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.text == "" && cfg.filePath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if cfg.text != "" && cfg.filePath != "" {
		return nil, errors.New(ErrMsgConflictingInput)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputInspectText(parsed *placeholder.ParsedValue, stdout io.Writer) int {
	fmt.Fprintf(stdout, InspectTextHeader, parsed.Source())
	writePartsText(stdout, parsed.Parts(), InspectIndentStep)
	return ExitCodeSuccess
}

func writePartsText(w io.Writer, parts []placeholder.Part, indent string) {
	for _, part := range parts {
		switch p := part.(type) {
		case *placeholder.TextPart:
			fmt.Fprintf(w, InspectTextPart, indent, InspectPartNameText, p.Text())
		case *placeholder.PlaceholderPart:
			fmt.Fprintf(w, InspectTextPart, indent, InspectPartNameBracket, p.Raw())
			fmt.Fprintf(w, InspectTextKeyLabel, indent+InspectIndentStep)
			writePartsText(w, p.Key().Parts(), indent+InspectIndentStep+InspectIndentStep)
			if fallback, ok := p.Default(); ok {
				fmt.Fprintf(w, InspectTextDefLabel, indent+InspectIndentStep)
				writePartsText(w, fallback.Parts(), indent+InspectIndentStep+InspectIndentStep)
			}
		}
	}
}

func outputInspectJSON(parsed *placeholder.ParsedValue, stdout, stderr io.Writer) int {
	output := struct {
		Source string          `json:"source"`
		Parts  []inspectedPart `json:"parts"`
	}{
		Source: parsed.Source(),
		Parts:  collectParts(parsed.Parts()),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	fmt.Fprintln(stdout, string(jsonBytes))
	return ExitCodeSuccess
}

func collectParts(parts []placeholder.Part) []inspectedPart {
	out := make([]inspectedPart, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case *placeholder.TextPart:
			out = append(out, inspectedPart{
				Type: strings.ToLower(placeholder.PartNameText),
				Text: p.Text(),
			})
		case *placeholder.PlaceholderPart:
			inspected := inspectedPart{
				Type: strings.ToLower(placeholder.PartNamePlaceholder),
				Raw:  p.Raw(),
				Key:  collectParts(p.Key().Parts()),
			}
			if fallback, ok := p.Default(); ok {
				inspected.Default = collectParts(fallback.Parts())
			}
			out = append(out, inspected)
		}
	}
	return out
}
