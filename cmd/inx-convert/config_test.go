package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inx-convert.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_OverlaysDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
inx_address = "node:9029"
timeout = "3s"
`)
	cfg, err := loadConfig(path, defaultOptions())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	def := defaultOptions()
	if cfg.Address != "node:9029" || cfg.Timeout != 3*time.Second {
		t.Fatalf("defined keys not applied: %+v", cfg)
	}
	if cfg.DialTimeout != def.DialTimeout || cfg.MaxMsgBytes != def.MaxMsgBytes || cfg.LogLevel != def.LogLevel {
		t.Fatalf("undefined keys changed: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"bad duration": `dial_timeout = "soon"`,
		"unknown key":  `inx_adress = "typo:1"`,
		"negative max": `max_msg_bytes = -1`,
		"bad syntax":   `inx_address = `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, body), defaultOptions()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), defaultOptions()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConnFlags_Precedence(t *testing.T) {
	path := writeConfig(t, `
inx_address = "from-file:1"
log_level = "debug"
`)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	resolve := connFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-inx-address", "from-flag:2"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	opts, err := resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if opts.Address != "from-flag:2" {
		t.Fatalf("flag must win over file, got %q", opts.Address)
	}
	if opts.LogLevel != "debug" {
		t.Fatalf("file must win over default, got %q", opts.LogLevel)
	}
	if opts.Timeout != defaultOptions().Timeout {
		t.Fatalf("default not kept, got %s", opts.Timeout)
	}
}
