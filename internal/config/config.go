// Package config loads the settings of the infix command from YAML or TOML
// files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileFormat is the syntax of a configuration file
type FileFormat int

// Supported configuration file formats
const (
	FormatAuto FileFormat = iota
	FormatYAML
	FormatTOML
)

func (f FileFormat) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "auto"
}

// Output formats for parsed declarations
const (
	OutputEncode = "encode"
	OutputTree   = "tree"
	OutputSource = "source"
	OutputDump   = "dump"
)

var outputs = []string{OutputEncode, OutputTree, OutputSource, OutputDump}

// Config holds the settings of a run. Zero values are not defaults, use
// Default.
type Config struct {
	// Echo copies the source text to stdout before lexing.
	Echo bool `yaml:"echo" toml:"echo"`
	// Tokens dumps every token to stderr, one per line.
	Tokens bool `yaml:"tokens" toml:"tokens"`
	// Trace logs every consumed token and produced node.
	Trace bool `yaml:"trace" toml:"trace"`
	// Output selects how declarations are printed.
	Output string `yaml:"output" toml:"output"`
	// Color enables colored diagnostics.
	Color bool `yaml:"color" toml:"color"`
	// Quiet disables logging.
	Quiet bool `yaml:"quiet" toml:"quiet"`
}

// Default returns the settings used when no file or flag says otherwise
func Default() *Config {
	return &Config{
		Output: OutputEncode,
		Color:  true,
	}
}

// Load reads a configuration file, the format is detected from the file
// extension. Keys missing from the file keep their default value.
func Load(filePath string) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.New("config file path cannot be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	conf, err := LoadFromString(string(content), detectFormat(filePath))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", filePath)
	}
	return conf, nil
}

// LoadFromString parses configuration content in the given format. FormatAuto
// is treated as TOML.
func LoadFromString(content string, format FileFormat) (*Config, error) {
	conf := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader([]byte(content)))
		dec.KnownFields(true)
		if err := dec.Decode(conf); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "YAML parse error")
		}

	case FormatTOML, FormatAuto:
		md, err := toml.Decode(content, conf)
		if err != nil {
			return nil, errors.Wrap(err, "TOML parse error")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("TOML parse error: unknown key %q", undecoded[0].String())
		}

	default:
		return nil, errors.Errorf("unsupported format: %v", format)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks that every setting holds an accepted value
func (c *Config) Validate() error {
	for _, o := range outputs {
		if c.Output == o {
			return nil
		}
	}
	return errors.Errorf("invalid output %q, must be one of: %s", c.Output, strings.Join(outputs, ", "))
}

func detectFormat(filePath string) FileFormat {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}
	return FormatAuto
}
