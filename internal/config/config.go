package config

import (
	"fmt"
	"os"

	"github.com/mdwit/openapi2omg/internal/omg"
	"sigs.k8s.io/yaml"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	// StdStream — "-" означает stdin для source и stdout для output
	StdStream = "-"
)

type Config struct {
	Source         string `json:"source"`
	Output         string `json:"output"`
	Format         string `json:"format"`         // json, yaml
	Indent         int    `json:"indent"`         // отступ JSON, 0 — в одну строку
	ServerIndex    *int   `json:"serverIndex"`    // нужен, если в спеке больше одного сервера
	OnCollision    string `json:"onCollision"`    // overwrite, error
	SkipValidation bool   `json:"skipValidation"` // пропустить валидацию OpenAPI
	SkipSchema     bool   `json:"skipSchema"`     // не проверять манифест JSON схемой
	Verbose        bool   `json:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:      StdStream,
		Format:      FormatJSON,
		Indent:      2,
		OnCollision: string(omg.CollisionOverwrite),
	}
}

// LoadFromFile читает конфиг в JSON или YAML
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrSourceRequired
	}
	if c.Format != FormatJSON && c.Format != FormatYAML {
		return fmt.Errorf("%w: %q (expected json or yaml)", ErrInvalidFormat, c.Format)
	}
	switch omg.CollisionPolicy(c.OnCollision) {
	case omg.CollisionOverwrite, omg.CollisionError:
	default:
		return fmt.Errorf("%w: %q (expected overwrite or error)", ErrInvalidCollision, c.OnCollision)
	}
	if c.ServerIndex != nil && *c.ServerIndex < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidServerIndex, *c.ServerIndex)
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, c.Indent)
	}
	return nil
}

// Properties собирает настройки конвертации
func (c *Config) Properties() omg.Properties {
	return omg.Properties{
		ServerIndex: c.ServerIndex,
		OnCollision: omg.CollisionPolicy(c.OnCollision),
	}
}
