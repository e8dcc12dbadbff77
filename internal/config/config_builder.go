package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layers collects partial configs in ascending priority. A failing source
// is remembered and reported by merge; later sources still run so all
// problems surface at once.
type layers struct {
	stack []*StructuredConfig
	errs  []error
}

func (l *layers) push(cfg *StructuredConfig, err error) *layers {
	if err != nil {
		l.errs = append(l.errs, err)
		return l
	}
	l.stack = append(l.stack, cfg)
	return l
}

func (l *layers) env() *layers {
	cfg := new(StructuredConfig)
	return l.push(cfg, parseEnv(cfg))
}

func (l *layers) flags(args []string) *layers {
	return l.push(parseFlags(args))
}

// file reads the JSON config named by the highest priority layer so far.
func (l *layers) file() *layers {
	path := ""
	for _, cfg := range l.stack {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" || len(l.errs) > 0 {
		return l
	}

	return l.push(parseJSON(path))
}

func (l *layers) merge() (*StructuredConfig, error) {
	if err := errors.Join(l.errs...); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	out := new(StructuredConfig)
	for _, cfg := range l.stack {
		if err := mergo.Merge(out, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return out, nil
}
