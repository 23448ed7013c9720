// Package config loads the optional TOML configuration file of the compiler.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"pl0dash/common"
	"pl0dash/emit"
	"pl0dash/report"
	"pl0dash/syntax"
)

// Config is the configuration of a compiler run.
type Config struct {
	// MaxDepth bounds how deeply productions may nest in a source file.
	MaxDepth int

	// SourceExt is the extension of the source files picked up from
	// directories.
	SourceExt string

	// OutputExt is the extension of all written output files.
	OutputExt string

	// TokensSuffix is appended to the stem of token listing files.
	TokensSuffix string

	// Indent is the indentation written per nesting level of a tree.
	Indent string

	// LogLevel is the name of the reporter log level.
	LogLevel string

	// Recursive indicates whether source directories are searched
	// recursively.
	Recursive bool
}

// Default returns the configuration used when no configuration file exists.
func Default() *Config {
	return &Config{
		MaxDepth:     syntax.DefaultMaxDepth,
		SourceExt:    common.SrcFileExt,
		OutputExt:    common.OutFileExt,
		TokensSuffix: common.TokensSuffix,
		Indent:       emit.DefaultIndent,
		LogLevel:     "verbose",
	}
}

// tomlConfigFile represents the configuration file as it is encoded in TOML.
type tomlConfigFile struct {
	Compiler *tomlCompiler `toml:"compiler"`
}

// tomlCompiler represents the `compiler` table.  Every field is optional:
// missing fields keep their default value.
type tomlCompiler struct {
	MaxDepth     *int    `toml:"max-depth"`
	SourceExt    *string `toml:"source-ext"`
	OutputExt    *string `toml:"output-ext"`
	TokensSuffix *string `toml:"tokens-suffix"`
	Indent       *string `toml:"indent"`
	LogLevel     *string `toml:"log-level"`
	Recursive    *bool   `toml:"recursive"`
}

// Load loads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, fmt.Errorf("error parsing %s: %s", path, err)
	}

	conf := Default()
	if tc := tcf.Compiler; tc != nil {
		if tc.MaxDepth != nil {
			conf.MaxDepth = *tc.MaxDepth
		}

		if tc.SourceExt != nil {
			conf.SourceExt = *tc.SourceExt
		}

		if tc.OutputExt != nil {
			conf.OutputExt = *tc.OutputExt
		}

		if tc.TokensSuffix != nil {
			conf.TokensSuffix = *tc.TokensSuffix
		}

		if tc.Indent != nil {
			conf.Indent = *tc.Indent
		}

		if tc.LogLevel != nil {
			conf.LogLevel = *tc.LogLevel
		}

		if tc.Recursive != nil {
			conf.Recursive = *tc.Recursive
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %s", path, err)
	}

	return conf, nil
}

// Find loads the configuration file in dir if there is one.  Otherwise, the
// default configuration is returned.
func Find(dir string) (*Config, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, err
	}

	return Load(path)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max-depth must be positive, not %d", c.MaxDepth)
	}

	for _, ext := range []string{c.SourceExt, c.OutputExt} {
		if len(ext) < 2 || ext[0] != '.' || strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("`%s` is not a valid file extension", ext)
		}
	}

	if c.SourceExt == c.OutputExt {
		return errors.New("source-ext and output-ext must differ")
	}

	if strings.Trim(c.Indent, " \t") != "" {
		return errors.New("indent may only contain spaces and tabs")
	}

	if _, ok := report.LogLevelFromName(c.LogLevel); !ok {
		return fmt.Errorf("unknown log-level `%s`: must be one of %s", c.LogLevel, strings.Join(report.LogLevelNames, ", "))
	}

	return nil
}

// WriteDefault writes a configuration file holding the default configuration
// to dir.  An existing configuration file is never overwritten.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%s already exists", path)
		}

		return "", fmt.Errorf("error creating configuration file: %s", err)
	}
	defer f.Close()

	def := Default()
	tcf := &tomlConfigFile{
		Compiler: &tomlCompiler{
			MaxDepth:     &def.MaxDepth,
			SourceExt:    &def.SourceExt,
			OutputExt:    &def.OutputExt,
			TokensSuffix: &def.TokensSuffix,
			Indent:       &def.Indent,
			LogLevel:     &def.LogLevel,
			Recursive:    &def.Recursive,
		},
	}

	if err := toml.NewEncoder(f).Encode(tcf); err != nil {
		return "", fmt.Errorf("error encoding TOML %s", err)
	}

	return path, nil
}
