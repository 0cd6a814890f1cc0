// Package config loads spoken's settings from CUE files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Config is the complete configuration.
type Config struct {
	// Precision is the bits of precision for evaluation.
	Precision uint
	// CacheSize is the number of results the server remembers. Zero disables
	// the cache.
	CacheSize int
	Log       Log
	Server    Server
	// Units are paths to CUE documents of extra units.
	Units []string
}

// Log configures logging.
type Log struct {
	// Level is one of debug, info, warn, or error.
	Level string
	// File, if not empty, receives JSON logs in addition to stderr.
	File string
}

// Server configures the HTTP server.
type Server struct {
	Addr string
}

// Default returns the configuration used when no file sets a value.
func Default() Config {
	return Config{
		Precision: 64,
		CacheSize: 1024,
		Log:       Log{Level: "info"},
		Server:    Server{Addr: ":8080"},
	}
}

// SlogLevel returns the configured level. Unknown levels are info.
func (l Log) SlogLevel() slog.Level {
	var v slog.Level
	if err := v.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return v
}

const schemaSrc = `
precision?: int & >=2 & <=65536
cacheSize?: int & >=0
log?: close({
	level?: "debug" | "info" | "warn" | "error"
	file?:  string
})
server?: close({
	addr?: string
})
units?: [...string]
`

// raw mirrors Config with pointers so that unset fields are recognizable.
type raw struct {
	Precision *uint `json:"precision"`
	CacheSize *int  `json:"cacheSize"`
	Log       *struct {
		Level *string `json:"level"`
		File  *string `json:"file"`
	} `json:"log"`
	Server *struct {
		Addr *string `json:"addr"`
	} `json:"server"`
	Units []string `json:"units"`
}

// Load reads each file in order over the defaults. Later files override
// earlier ones field by field, except that units accumulate. Relative paths
// in units and log.file are relative to the file that names them.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := cfg.apply(b, p); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Parse reads one CUE document over the defaults. name labels errors.
func Parse(src []byte, name string) (Config, error) {
	cfg := Default()
	if err := cfg.apply(src, name); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) apply(src []byte, name string) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return err
	}
	value := ctx.CompileBytes(src, cue.Filename(name))
	if err := value.Err(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dir := filepath.Dir(name)
	if r.Precision != nil {
		cfg.Precision = *r.Precision
	}
	if r.CacheSize != nil {
		cfg.CacheSize = *r.CacheSize
	}
	if r.Log != nil {
		if r.Log.Level != nil {
			cfg.Log.Level = *r.Log.Level
		}
		if r.Log.File != nil {
			cfg.Log.File = rel(dir, *r.Log.File)
		}
	}
	if r.Server != nil && r.Server.Addr != nil {
		cfg.Server.Addr = *r.Server.Addr
	}
	for _, u := range r.Units {
		cfg.Units = append(cfg.Units, rel(dir, u))
	}
	return nil
}

func rel(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
