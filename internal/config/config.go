package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/mdscan/internal/export"
	"github.com/julien-sobczak/mdscan/internal/render"
	"github.com/julien-sobczak/mdscan/internal/toc"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// Name of the configuration file searched in the current directory
const DefaultConfigName = "mdscan.toml"

// Environment variable overriding the configuration file path
const EnvConfig = "MDSCAN_CONFIG"

// Default mdscan.toml content
const DefaultConfig = `
[core]
extensions=["md", "markdown"]
ignore=["node_modules/", ".git/"]

[parser]
legacy_table_separator=false

[toc]
max_level=2
unique=true
ascii=false

[render]
format="html"
color="auto"
nest_lists=false
width=0
excerpt=100

[lint]
file=""
`

// Default lint rules when no lint file is configured
const DefaultLint = `
rules:
  - name: table-missing-separator
  - name: table-ragged-row
    severity: warning
  - name: heading-level-jump
    severity: warning
  - name: duplicate-heading-id
    severity: warning
  - name: empty-link-target
  - name: empty-alert
    severity: warning
  - name: task-list-mixed
    severity: warning
`

// Supported severities for lint rules
var Severities = []string{"error", "warning", "off"}

var (
	// Lazy-load configuration and ensure a single read
	configOnce      sync.Once
	configSingleton *Config
	configPath      string
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core   ConfigCore
	Parser ConfigParser
	TOC    ConfigTOC `toml:"toc"`
	Render ConfigRender
	Lint   ConfigLint
}
type ConfigCore struct {
	Extensions []string
	Ignore     GlobPaths
	Parallel   int
}
type ConfigParser struct {
	LegacyTableSeparator bool `toml:"legacy_table_separator"`
}
type ConfigTOC struct {
	MaxLevel int `toml:"max_level"`
	Unique   bool
	ASCII    bool `toml:"ascii"`
}
type ConfigRender struct {
	Format    string
	Color     string // auto, always, never
	NestLists bool   `toml:"nest_lists"`
	Width     int
	Excerpt   int
}
type ConfigLint struct {
	// Path to a YAML file listing the rules. Relative paths are resolved from the configuration file.
	File string
}

// SupportExtension checks if the given file extension must be considered.
func (f *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range f.Core.Extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}

// MustExcludeFile checks if a path matches the ignore patterns.
func (f *ConfigFile) MustExcludeFile(path string, dir bool) bool {
	path = strings.Trim(filepath.ToSlash(path), "/")
	if dir {
		path += "/"
	}
	return f.Core.Ignore.Match(path)
}

type LintFile struct {
	Rules []ConfigLintRule `yaml:"rules"`
}

type ConfigLintRule struct {

	// Name of the rule. Must exists in the registry of rules.
	Name string `yaml:"name"`

	// Severity of the rule: "error", "warning" or "off". Default to "error".
	Severity string `yaml:"severity"`

	// Optional arguments for the rule.
	Args []string `yaml:"args"`

	// Includes restricts the paths on which to evaluate the rule.
	// Glob expressions are supported and ! as prefix indicated to exclude.
	Includes GlobPaths `yaml:"includes"`
}

// MatchesPath returns if the rule must be evaluated for the given file.
func (r ConfigLintRule) MatchesPath(path string) bool {
	if len(r.Includes) == 0 {
		return true
	}
	return r.Includes.Match(path)
}

// Severity returns the severity of a lint rule.
func (l *LintFile) Severity(name string) string {
	for _, rule := range l.Rules {
		if rule.Name == name {
			return rule.Severity
		}
	}
	return "off"
}

/* Main config */

type Config struct {
	// Path of the configuration file. Empty when using the defaults.
	Path string

	// mdscan.toml content
	ConfigFile ConfigFile

	// Lint rules
	LintFile LintFile
}

// SetPath overrides the configuration file to read. Must be called before CurrentConfig.
func SetPath(path string) {
	configPath = path
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		path, err := Locate(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to locate configuration: %v\n", err)
			os.Exit(1)
		}
		configSingleton, err = ReadConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// Locate returns the configuration file to use: the given path if any,
// then $MDSCAN_CONFIG, then mdscan.toml in the current directory.
// An empty path means the default configuration applies.
func Locate(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("missing configuration file %s: %w", path, err)
		}
		return path, nil
	}
	if path, ok := os.LookupEnv(EnvConfig); ok && path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("invalid $%s: %w", EnvConfig, err)
		}
		return path, nil
	}
	_, err := os.Stat(DefaultConfigName)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to check for %s file: %w", DefaultConfigName, err)
	}
	return DefaultConfigName, nil
}

// ReadConfig loads the given configuration file, or the defaults when the path is empty.
func ReadConfig(path string) (*Config, error) {
	configFile, err := parseConfigFile(DefaultConfig)
	if err != nil {
		return nil, fmt.Errorf("default configuration is broken: %w", err)
	}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s file: %w", path, err)
		}
		if err := decodeConfigFile(string(content), configFile); err != nil {
			return nil, fmt.Errorf("failed to parse %s file: %w", path, err)
		}
	}

	var lintFile *LintFile
	if configFile.Lint.File == "" {
		lintFile, err = parseLintFile(DefaultLint)
		if err != nil {
			return nil, fmt.Errorf("default lint rules are broken: %w", err)
		}
	} else {
		lintPath := configFile.Lint.File
		if !filepath.IsAbs(lintPath) && path != "" {
			lintPath = filepath.Join(filepath.Dir(path), lintPath)
		}
		content, err := os.ReadFile(lintPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read lint file %s: %w", lintPath, err)
		}
		lintFile, err = parseLintFile(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse lint file %s: %w", lintPath, err)
		}
	}

	config := &Config{
		Path:       path,
		ConfigFile: *configFile,
		LintFile:   *lintFile,
	}
	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	var result ConfigFile
	err := decodeConfigFile(content, &result)
	return &result, err
}

// decodeConfigFile overrides only the keys present in the content.
func decodeConfigFile(content string, result *ConfigFile) error {
	d := toml.NewDecoder(strings.NewReader(content))
	d.DisallowUnknownFields()
	return d.Decode(result)
}

func parseLintFile(content string) (*LintFile, error) {
	d := yaml.NewDecoder(strings.NewReader(content))
	var result LintFile
	if err := d.Decode(&result); err != nil {
		return nil, err
	}

	// Apply default values
	for i, rule := range result.Rules {
		if rule.Severity == "" {
			result.Rules[i].Severity = "error"
		}
	}

	return &result, nil
}

// Check validates the values that cannot be validated by the decoders.
func (c *Config) Check() error {
	for _, rule := range c.LintFile.Rules {
		if rule.Name == "" {
			return errors.New("missing name for lint rule")
		}
		if !slices.Contains(Severities, rule.Severity) {
			return fmt.Errorf("unknown severity %q for lint rule %q", rule.Severity, rule.Name)
		}
	}
	if level := c.ConfigFile.TOC.MaxLevel; level < 0 || level > 6 {
		return fmt.Errorf("invalid toc max level %d: must be between 0 and 6", level)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, c.ConfigFile.Render.Color) {
		return fmt.Errorf("invalid color mode %q: must be auto, always or never", c.ConfigFile.Render.Color)
	}
	if !slices.Contains(render.Formats(), c.ConfigFile.Render.Format) {
		return fmt.Errorf("unknown render format %q", c.ConfigFile.Render.Format)
	}
	return nil
}

// SetParallel overrides the number of workers.
func (c *Config) SetParallel(parallel int) *Config {
	c.ConfigFile.Core.Parallel = parallel
	return c
}

// Parallel returns the number of files to process concurrently.
func (c *Config) Parallel() int {
	if c.ConfigFile.Core.Parallel > 0 {
		return c.ConfigFile.Core.Parallel
	}
	return runtime.NumCPU()
}

func (c *Config) Parser() markdown.Parser {
	return markdown.Parser{
		LegacyTableSeparator: c.ConfigFile.Parser.LegacyTableSeparator,
	}
}

func (c *Config) TOCOptions() toc.Options {
	return toc.Options{
		MaxLevel: c.ConfigFile.TOC.MaxLevel,
		Unique:   c.ConfigFile.TOC.Unique,
		ASCII:    c.ConfigFile.TOC.ASCII,
	}
}

// RenderOptions returns the renderer options. The terminal flag is used when the color mode is auto.
func (c *Config) RenderOptions(terminal bool) render.Options {
	color := terminal
	switch c.ConfigFile.Render.Color {
	case "always":
		color = true
	case "never":
		color = false
	}
	anchors := c.TOCOptions()
	anchors.MaxLevel = 0 // All headings get an id
	return render.Options{
		Parser:    c.Parser(),
		Anchors:   anchors,
		NestLists: c.ConfigFile.Render.NestLists,
		Color:     color,
		Width:     c.ConfigFile.Render.Width,
	}
}

func (c *Config) ExportOptions(inline bool) export.Options {
	anchors := c.TOCOptions()
	anchors.MaxLevel = 0
	return export.Options{
		Parser:  c.Parser(),
		Inline:  inline,
		Anchors: anchors,
	}
}
