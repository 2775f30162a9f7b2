package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdpdf/internal/fileutil"
	"github.com/alnah/go-mdpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidAddr    = errors.New("invalid listen address")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrOutOfRange     = errors.New("value out of range")
)

// Field length limits. Config values end up in PDF metadata, HTTP
// responses and log lines, so every free-form field gets a hard cap.
const (
	MaxAddrLength   = 256  // host:port
	MaxTitleLength  = 200  // PDF metadata title
	MaxFooterLength = 500  // footer text
	MaxPathLength   = 4096 // fonts directory
)

// Bounds for numeric fields.
const (
	MinTimeoutSeconds  = 1
	MaxTimeoutSeconds  = 300
	MinInputBytes      = 1 << 10 // 1 KiB
	MaxInputBytes      = 1 << 26 // 64 MiB
	MaxWorkers         = 256
	MaxCacheTTLSeconds = 86400 // one day
)

// Config holds everything the server reads at startup.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Document DocumentConfig `yaml:"document"`
	Fonts    FontsConfig    `yaml:"fonts"`
	Cache    CacheConfig    `yaml:"cache"`
}

// ServerConfig defines the HTTP listener and per-request limits.
type ServerConfig struct {
	Addr           string `yaml:"addr"`           // listen address (default ":8080")
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // per-request conversion deadline
	MaxInputBytes  int    `yaml:"maxInputBytes"`  // markdown size cap
	Workers        int    `yaml:"workers"`        // concurrent renders (0 = one per CPU)
}

// DocumentConfig defines PDF output settings shared by all conversions.
type DocumentConfig struct {
	Title  string `yaml:"title"`  // metadata title when the input has no title of its own
	Footer string `yaml:"footer"` // footer text (empty disables the footer)
}

// FontsConfig defines where TTF files are loaded from.
type FontsConfig struct {
	Dir string `yaml:"dir"` // directory holding the Barlow and Fira Code files
}

// CacheConfig defines the conversion cache.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttlSeconds"` // cached conversion lifetime (0 disables caching)
}

// Timeout returns the per-request deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// CacheTTL returns the conversion cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Validate checks every field against its bounds.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr cannot be empty", ErrInvalidAddr)
	}
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if !strings.Contains(c.Server.Addr, ":") {
		return fmt.Errorf("%w: server.addr %q must be host:port or :port", ErrInvalidAddr, c.Server.Addr)
	}
	if c.Server.TimeoutSeconds < MinTimeoutSeconds || c.Server.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: server.timeoutSeconds must be between %d and %d, got %d",
			ErrOutOfRange, MinTimeoutSeconds, MaxTimeoutSeconds, c.Server.TimeoutSeconds)
	}
	if c.Server.MaxInputBytes < MinInputBytes || c.Server.MaxInputBytes > MaxInputBytes {
		return fmt.Errorf("%w: server.maxInputBytes must be between %d and %d, got %d",
			ErrOutOfRange, MinInputBytes, MaxInputBytes, c.Server.MaxInputBytes)
	}
	if c.Server.Workers < 0 || c.Server.Workers > MaxWorkers {
		return fmt.Errorf("%w: server.workers must be between 0 and %d, got %d",
			ErrOutOfRange, MaxWorkers, c.Server.Workers)
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.footer", c.Document.Footer, MaxFooterLength); err != nil {
		return err
	}

	if err := validateFieldLength("fonts.dir", c.Fonts.Dir, MaxPathLength); err != nil {
		return err
	}

	if c.Cache.TTLSeconds < 0 || c.Cache.TTLSeconds > MaxCacheTTLSeconds {
		return fmt.Errorf("%w: cache.ttlSeconds must be between 0 and %d, got %d",
			ErrOutOfRange, MaxCacheTTLSeconds, c.Cache.TTLSeconds)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration the server runs with when no
// config file exists. The document defaults mirror the library defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			TimeoutSeconds: 30,
			MaxInputBytes:  2 << 20, // 2 MiB
			Workers:        0,
		},
		Document: DocumentConfig{
			Title:  "",
			Footer: "Powered by Draup",
		},
		Fonts: FontsConfig{Dir: "."},
		Cache: CacheConfig{TTLSeconds: 300},
	}
}

// LoadConfig loads configuration with the precedence env > file > defaults.
// The argument may be a file path, a bare config name searched in the
// standard locations, or empty. An explicit path or name must exist; an
// empty argument searches SearchPaths and a miss just means defaults.
// Flag overrides are the caller's business.
func LoadConfig(nameOrPath string) (*Config, error) {
	cfg := DefaultConfig()

	resolved, err := resolveConfigPath(nameOrPath)
	if err != nil {
		return nil, err
	}

	if resolved != "" {
		data, err := os.ReadFile(resolved) // #nosec G304 -- config path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, resolved)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded config.
func applyEnv(cfg *Config) {
	if addr := os.Getenv("MDPDF_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dir := os.Getenv("MDPDF_FONTS_DIR"); dir != "" {
		cfg.Fonts.Dir = dir
	}
}

// resolveConfigPath turns the user-supplied name or path into a concrete
// file. Empty input searches SearchPaths and returns "" when nothing
// exists. A value that looks like a file (separator or yaml extension)
// must name an existing file. A bare name is tried with .yaml and .yml
// in the current directory, then the user config directory.
func resolveConfigPath(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		for _, candidate := range SearchPaths() {
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
		}
		return "", nil
	}

	if fileutil.IsFilePath(nameOrPath) ||
		strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		if !fileutil.FileExists(nameOrPath) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, nameOrPath)
		}
		return nameOrPath, nil
	}

	tried := namedSearchPaths(nameOrPath)
	for _, candidate := range tried {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// namedSearchPaths lists the candidate files for a bare config name,
// current directory first.
func namedSearchPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(userConfigDir, "go-mdpdf", name+".yaml"),
			filepath.Join(userConfigDir, "go-mdpdf", name+".yml"),
		)
	}
	return paths
}

// SearchPaths returns the locations probed when no config is named.
func SearchPaths() []string {
	return namedSearchPaths("mdpdf")
}
