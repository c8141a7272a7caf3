package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type options struct {
	Address     string
	DialTimeout time.Duration
	Timeout     time.Duration
	MaxMsgBytes int
	LogLevel    string
}

func defaultOptions() options {
	return options{
		Address:     "localhost:9029",
		DialTimeout: 5 * time.Second,
		Timeout:     10 * time.Second,
		MaxMsgBytes: 4 << 20,
		LogLevel:    "info",
	}
}

type fileConfig struct {
	Address     string `toml:"inx_address"`
	DialTimeout string `toml:"dial_timeout"`
	Timeout     string `toml:"timeout"`
	MaxMsgBytes int    `toml:"max_msg_bytes"`
	LogLevel    string `toml:"log_level"`
}

// loadConfig overlays the keys present in the TOML file at path onto base.
func loadConfig(path string, base options) (options, error) {
	cfg := base

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return options{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return options{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("inx_address") {
		if addr := strings.TrimSpace(raw.Address); addr != "" {
			cfg.Address = addr
		}
	}
	if meta.IsDefined("dial_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.DialTimeout))
		if err != nil {
			return options{}, fmt.Errorf("parse dial_timeout: %w", err)
		}
		cfg.DialTimeout = d
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return options{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if meta.IsDefined("max_msg_bytes") {
		if raw.MaxMsgBytes < 0 {
			return options{}, fmt.Errorf("max_msg_bytes must not be negative")
		}
		cfg.MaxMsgBytes = raw.MaxMsgBytes
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}

// connFlags registers the connection flags on fs. resolve applies them in
// order of precedence: flags set on the command line, then the config file,
// then defaults.
func connFlags(fs *flag.FlagSet) (resolve func() (options, error)) {
	def := defaultOptions()
	configPath := fs.String("config", "", "TOML config file")
	address := fs.String("inx-address", def.Address, "INX node address")
	dialTimeout := fs.Duration("dial-timeout", def.DialTimeout, "dial timeout")
	timeout := fs.Duration("timeout", def.Timeout, "per-RPC timeout")
	maxMsgBytes := fs.Int("max-msg-bytes", def.MaxMsgBytes, "max gRPC message size")
	logLevel := fs.String("log-level", def.LogLevel, "log level (trace|debug|info|warn|error)")

	return func() (options, error) {
		opts := def
		if *configPath != "" {
			var err error
			opts, err = loadConfig(*configPath, def)
			if err != nil {
				return options{}, err
			}
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "inx-address":
				opts.Address = *address
			case "dial-timeout":
				opts.DialTimeout = *dialTimeout
			case "timeout":
				opts.Timeout = *timeout
			case "max-msg-bytes":
				opts.MaxMsgBytes = *maxMsgBytes
			case "log-level":
				opts.LogLevel = *logLevel
			}
		})
		return opts, nil
	}
}
