// Package config resolves weaver's settings from weaver.yml in the project
// directory, WEAVER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/weaver/internal/ignore"
)

// FileName is the config file looked up in the project directory, without
// its extension.
const FileName = "weaver"

// EnvPrefix prefixes every environment override, e.g. WEAVER_TARGET.
const EnvPrefix = "WEAVER"

// Config keys.
const (
	KeyTarget      = "target"
	KeyCompiler    = "compiler"
	KeyOutput      = "output"
	KeyIgnoreFile  = "ignore_file"
	KeyGitignore   = "gitignore"
	KeyMagic       = "magic"
	KeyInteractive = "interactive"
	KeyInitIgnore  = "init_ignore"
)

// flagNames maps config keys to the flags that override them.
var flagNames = map[string]string{
	KeyTarget:     "target",
	KeyCompiler:   "compiler",
	KeyOutput:     "output",
	KeyIgnoreFile: "ignore-file",
	KeyGitignore:  "gitignore",
	KeyMagic:      "magic",
	KeyInitIgnore: "init-ignore",
}

// NonInteractiveFlag turns off prompting. It inverts KeyInteractive, so it
// is applied by hand rather than bound.
const NonInteractiveFlag = "yes"

// Config is the resolved configuration for one invocation.
type Config struct {
	Target      string // empty means prompt, guess or use the default
	Compiler    string // "compiler flags..."; empty means the language default
	Output      string
	IgnoreFile  string
	Gitignore   bool
	Magic       bool
	Interactive bool
	InitIgnore  bool

	File string // config file that was read, empty when none
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Output:      "Makefile",
		IgnoreFile:  ignore.DefaultFileName,
		Interactive: true,
		InitIgnore:  true,
	}
}

// Load resolves the configuration for the project in dir. flags may be nil;
// only the flags it defines are bound.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyTarget, d.Target)
	v.SetDefault(KeyCompiler, d.Compiler)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyIgnoreFile, d.IgnoreFile)
	v.SetDefault(KeyGitignore, d.Gitignore)
	v.SetDefault(KeyMagic, d.Magic)
	v.SetDefault(KeyInteractive, d.Interactive)
	v.SetDefault(KeyInitIgnore, d.InitIgnore)

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
		if yes, err := flags.GetBool(NonInteractiveFlag); err == nil && yes {
			v.Set(KeyInteractive, false)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.yml: %w", FileName, err)
		}
	}

	return &Config{
		Target:      v.GetString(KeyTarget),
		Compiler:    v.GetString(KeyCompiler),
		Output:      v.GetString(KeyOutput),
		IgnoreFile:  v.GetString(KeyIgnoreFile),
		Gitignore:   v.GetBool(KeyGitignore),
		Magic:       v.GetBool(KeyMagic),
		Interactive: v.GetBool(KeyInteractive),
		InitIgnore:  v.GetBool(KeyInitIgnore),
		File:        v.ConfigFileUsed(),
	}, nil
}
