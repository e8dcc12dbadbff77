package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Duration reads either a Go duration string ("30s") or a number of
// nanoseconds from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if s, err := strconv.Unquote(string(b)); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}

	n, err := strconv.ParseFloat(string(bytes.TrimSpace(b)), 64)
	if err != nil {
		return fmt.Errorf("duration must be a string or a number: %w", err)
	}
	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

type fileEndpoint struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
	PageSize       int      `json:"page_size"`
}

// fileConfig is the layout of the JSON config file.
type fileConfig struct {
	App struct {
		TokenSignKey string   `json:"token_sign_key"`
		TokenTTL     Duration `json:"token_ttl"`
		Version      string   `json:"version"`
		LogFile      string   `json:"log_file"`
	} `json:"app"`
	Storage struct {
		DB    DB    `json:"db"`
		Local Local `json:"local"`
	} `json:"storage"`
	Server  fileEndpoint `json:"server"`
	Adapter fileEndpoint `json:"adapter"`
	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		DebounceInterval Duration `json:"debounce_interval"`
		PurgeInterval    Duration `json:"purge_interval"`
	} `json:"workers"`
	Registry Registry `json:"registry"`
}

func (f *fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: f.App.TokenSignKey,
			TokenTTL:     time.Duration(f.App.TokenTTL),
			Version:      f.App.Version,
			LogFile:      f.App.LogFile,
		},
		Storage: Storage{DB: f.Storage.DB, Local: f.Storage.Local},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			PageSize:       f.Server.PageSize,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:     time.Duration(f.Workers.SyncInterval),
			DebounceInterval: time.Duration(f.Workers.DebounceInterval),
			PurgeInterval:    time.Duration(f.Workers.PurgeInterval),
		},
		Registry: f.Registry,
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var f fileConfig
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return f.structured(), nil
}
