package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// 输出格式。
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var (
	errUnsupportedConfig = errors.New("unsupported config format")
	errInvalidOutput     = errors.New("invalid output format")
)

// config 是 xenumctl 的配置。命令行参数优先于配置文件。
type config struct {
	Output string    `koanf:"output"`
	Log    logConfig `koanf:"log"`
}

type logConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() config {
	return config{
		Output: outputTable,
		Log: logConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// loadConfig 读取配置文件；path 为空时返回默认配置。
// 格式由扩展名决定（.yaml/.yml 或 .json），未出现的字段保留默认值。
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, fmt.Errorf("%w: %s", errUnsupportedConfig, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	var loaded config
	if err := k.UnmarshalWithConf("", &loaded, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	cfg.merge(loaded)
	return cfg, nil
}

// merge 用 other 中的非空字段覆盖 c。
func (c *config) merge(other config) {
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}

// normalize 规范化并校验输出格式。
func (c *config) normalize() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected table, json or yaml)", errInvalidOutput, c.Output)
	}
}
