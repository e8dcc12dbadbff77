package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// listenAddr is a flag.Value accepting "host:port" where host is an IP,
// "localhost" or empty.
type listenAddr string

func (a *listenAddr) String() string { return string(*a) }

func (a *listenAddr) Set(s string) error {
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("bad port %q: %w", port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port %d is out of range", n)
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return fmt.Errorf("bad host %q", host)
	}

	*a = listenAddr(net.JoinHostPort(host, port))
	return nil
}

// parseFlags reads the command line (os.Args[1:] in main). One flag set
// serves both binaries; each keeps the fields it needs.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	var listen listenAddr
	var timeout time.Duration

	fs := flag.NewFlagSet("go-share-cache", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&listen, "a", "server listen address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "server address used by the client")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.Storage.Local.Path, "l", "", "client snapshot database")
	fs.StringVar(&cfg.Registry.DomainsDir, "domains", "", "directory with domain files")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "change token signing key")
	fs.DurationVar(&cfg.App.TokenTTL, "token-ttl", 0, "change token lifetime")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "client log file")
	fs.DurationVar(&timeout, "request-timeout", 0, "request timeout")
	fs.IntVar(&cfg.Server.PageSize, "page-size", 0, "records per change batch")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "periodic fetch interval")
	fs.DurationVar(&cfg.Workers.DebounceInterval, "debounce-interval", 0, "signal coalescing window")
	fs.DurationVar(&cfg.Workers.PurgeInterval, "purge-interval", 0, "tombstone purge interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = listen.String()
	cfg.Server.RequestTimeout = timeout
	cfg.Adapter.RequestTimeout = timeout

	return cfg, nil
}
