package configutils

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"yoho/internal/pkg/fs"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	GlobalConfigDir = "~/.config/yoho"
	LocalConfigName = ".yohocfg"
	TokenEnv        = "GITHUB_ACCESS_TOKEN"
)

type FlagSet interface {
	GetString(string) (string, error)
	GetBool(string) (bool, error)
}

type configMerger interface {
	MergeConfig(io.Reader) error
	SetConfigType(string)
}

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

var filetypes = []string{"yaml", "json", "toml"}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	return cm.MergeConfig(in)
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) ([]byte, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	return fs.ReadFile(filename)
}

// mergeAnyType merges data trying every supported format in turn.
var mergeAnyType = func(data []byte, types []string, cm configMerger) error {
	var err error
	for _, ft := range types {
		cm.SetConfigType(ft)
		if err = mergeConfig(bytes.NewReader(data), cm); err == nil {
			return nil
		}
		log.Debug().Err(err).Msgf("config is not %s, trying next type", ft)
	}

	return err
}

var getGlobalConfigDir = func() (string, error) {
	dir, err := homedir.Expand(GlobalConfigDir)
	if err != nil {
		return "", ErrHomeDirNotFound
	}

	return dir, nil
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("workflow.base", "dev")
	v.SetDefault("workflow.remote", "origin")
	v.SetDefault("poll.interval", "3s")
	v.SetDefault("workflow.merge_method", "squash")
	v.SetDefault("poll.timeout", "30m")
	v.SetDefault("poll.max_attempts", 0)
	v.SetDefault("poll.backoff", 1.0)
	v.SetDefault("poll.max_interval", "30s")
	v.SetDefault("poll.mergeable_grace", 1)
	v.SetDefault("tracker.kind", "cli")
	v.SetDefault("tracker.command", "jira")
	v.SetDefault("tracker.view_args", []string{"view", "{key}", "--json"})
	v.SetDefault("tracker.delete_args", []string{"delete", "{key}"})
	v.SetDefault("tracker.title_path", "fields.summary")
	v.SetDefault("tracker.key_pattern", `[A-Z][A-Z0-9]+-[0-9]+`)
	v.SetDefault("notify.enabled", true)
	v.SetDefault("log.level", "warn")
}

// MergeGlobalConfig merges ~/.config/yoho/config.{yaml,json,toml}, the first
// one found wins. No global config at all is fine.
func MergeGlobalConfig(v *viper.Viper, fsys fs.Filesystem) error {
	dir, err := getGlobalConfigDir()
	if err != nil {
		return err
	}

	for _, ft := range filetypes {
		f := filepath.Join(dir, fmt.Sprintf("config.%s", ft))
		data, err := loadFile(f, fsys)
		if err != nil {
			log.Debug().Str("file", f).Msg("no global config")
			continue
		}

		return errors.Wrapf(mergeAnyType(data, []string{ft}, v), "could not load %s", f)
	}

	return nil
}

// MergeLocalConfig merges the .yohocfg file found in path, in any of the
// supported formats.
func MergeLocalConfig(v *viper.Viper, fsys fs.Filesystem, path string) error {
	f := filepath.Join(path, LocalConfigName)
	data, err := loadFile(f, fsys)
	if err != nil {
		return nil
	}

	return errors.Wrapf(mergeAnyType(data, filetypes, v), "could not load %s", f)
}

// MergeFile merges an explicitly requested config file. Unlike the global and
// local files it must exist.
func MergeFile(v *viper.Viper, fsys fs.Filesystem, filename string) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}

	data, err := loadFile(path, fsys)
	if err != nil {
		return errors.Wrapf(err, "could not load %s", filename)
	}

	types := filetypes
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "yml" {
		types = []string{"yaml"}
	} else if ext != "" {
		types = []string{ext}
	}

	return errors.Wrapf(mergeAnyType(data, types, v), "could not load %s", filename)
}

type LoadOptions struct {
	// Dir is where the repository local config is looked up.
	Dir string
	// File is the --config flag value, empty when not given.
	File  string
	Flags *pflag.FlagSet
}

// Load layers defaults, global config, local config, the explicit config
// file, the environment and finally flags into v.
func Load(v *viper.Viper, fsys fs.Filesystem, o LoadOptions) error {
	SetDefaults(v)

	if err := MergeGlobalConfig(v, fsys); err != nil {
		return err
	}

	if o.Dir != "" {
		if err := MergeLocalConfig(v, fsys, o.Dir); err != nil {
			return err
		}
	}

	if o.File != "" {
		if err := MergeFile(v, fsys, o.File); err != nil {
			return err
		}
	}

	if err := v.BindEnv("github.token", TokenEnv); err != nil {
		return err
	}

	return BindFlags(v, o.Flags)
}

var flagKeys = map[string]string{
	"interval": "poll.interval",
	"timeout":  "poll.timeout",
	"base":     "workflow.base",
}

// BindFlags binds the flags that override config keys. Flags that are not
// defined on fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	if GetBoolFlagOrDefault(fs, "debug", false) {
		v.Set("log.level", "debug")
	}

	return nil
}

func GetBoolFlagOrDefault(fs FlagSet, flag string, d bool) bool {
	v, err := fs.GetBool(flag)
	if err != nil {
		return d
	}

	return v
}

func GetStringFlagOrDefault(fs FlagSet, flag, d string) string {
	s, err := fs.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}
