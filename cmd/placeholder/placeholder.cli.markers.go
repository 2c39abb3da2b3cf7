package main

import (
	"errors"
	"flag"

	placeholder "github.com/itsatony/go-placeholder"
)

// markerConfig holds the marker flags shared by resolve and inspect.
type markerConfig struct {
	prefix      string
	suffix      string
	separator   string
	noSeparator bool
	escape      string
	noEscape    bool
}

func registerMarkerFlags(fs *flag.FlagSet, cfg *markerConfig) {
	fs.StringVar(&cfg.prefix, FlagPrefix, placeholder.DefaultPrefix, "")
	fs.StringVar(&cfg.suffix, FlagSuffix, placeholder.DefaultSuffix, "")
	fs.StringVar(&cfg.separator, FlagSeparator, placeholder.DefaultSeparator, "")
	fs.BoolVar(&cfg.noSeparator, FlagNoSeparator, false, "")
	fs.StringVar(&cfg.escape, FlagEscape, string(placeholder.DefaultEscape), "")
	fs.BoolVar(&cfg.noEscape, FlagNoEscape, false, "")
}

// engineOptions translates the marker flags into engine options.
func (cfg *markerConfig) engineOptions() ([]placeholder.Option, error) {
	opts := []placeholder.Option{
		placeholder.WithMarkers(cfg.prefix, cfg.suffix),
	}

	if cfg.noSeparator {
		opts = append(opts, placeholder.WithoutSeparator())
	} else {
		opts = append(opts, placeholder.WithSeparator(cfg.separator))
	}

	if cfg.noEscape {
		opts = append(opts, placeholder.WithoutEscape())
	} else {
		if len(cfg.escape) != 1 {
			return nil, errors.New(ErrMsgInvalidEscape)
		}
		opts = append(opts, placeholder.WithEscape(cfg.escape[0]))
	}

	return opts, nil
}
