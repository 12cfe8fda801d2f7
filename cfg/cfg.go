package cfg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/UnsavedDragon/RedBlackTree/merrs"
	"github.com/spf13/cast"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DemoConfig drives cmd/rbdemo: the values to insert, the values to
// delete afterwards, and the output options.
type DemoConfig struct {
	Sequence []int  `yaml:"sequence"`
	Deletes  []int  `yaml:"deletes"`
	Color    *bool  `yaml:"color"`
	Level    string `yaml:"level"`
}

// Load reads a demo configuration. The format follows the file
// extension: .yaml/.yml or .ini/.conf.
func Load(path string) (*DemoConfig, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, merrs.NotExistError.New("read %s: %v", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YamlParse(bs)
	case ".ini", ".conf":
		return IniParse(bs)
	default:
		return nil, merrs.ErrParams.New("unsupported config format %q", filepath.Ext(path))
	}
}

// YamlParse decodes a YAML demo configuration.
func YamlParse(bs []byte) (*DemoConfig, error) {
	dc := &DemoConfig{}
	if err := yaml.Unmarshal(bs, dc); err != nil {
		return nil, merrs.ErrParams.New("yaml: %v", err)
	}
	return dc, nil
}

// IniParse decodes an INI demo configuration. Keys may live in a
// [demo] section or at the top level; list values are comma separated.
func IniParse(bs []byte) (*DemoConfig, error) {
	fcfg, err := ini.Load(bs)
	if err != nil {
		return nil, merrs.ErrParams.New("ini: %v", err)
	}
	section := fcfg.Section("demo")
	if len(section.Keys()) == 0 {
		section = fcfg.Section(ini.DefaultSection)
	}
	dc := &DemoConfig{}
	if key := section.Key("sequence"); key.String() != "" {
		if dc.Sequence, err = parseInts(key.String()); err != nil {
			return nil, err
		}
	}
	if key := section.Key("deletes"); key.String() != "" {
		if dc.Deletes, err = parseInts(key.String()); err != nil {
			return nil, err
		}
	}
	if key := section.Key("color"); key.String() != "" {
		b := key.MustBool(true)
		dc.Color = &b
	}
	dc.Level = section.Key("level").String()
	return dc, nil
}

func parseInts(s string) ([]int, error) {
	vals := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := cast.ToIntE(part)
		if err != nil {
			return nil, merrs.ErrParams.New("not an integer: %q", part)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
