package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdwit/openapi2omg/internal/config"
	"github.com/mdwit/openapi2omg/internal/omg"
	"gopkg.in/yaml.v3"
)

// Generator сериализует OMG манифест и пишет его в файл или stdout
type Generator struct {
	cfg      *config.Config
	manifest *omg.Manifest
	stdout   io.Writer
	logger   *slog.Logger
}

// Option настраивает Generator
type Option func(*Generator)

// WithStdout подменяет stdout для output "-"
func WithStdout(w io.Writer) Option {
	return func(g *Generator) { g.stdout = w }
}

// WithLogger задаёт логгер
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New создаёт новый генератор
func New(cfg *config.Config, manifest *omg.Manifest, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		manifest: manifest,
		stdout:   os.Stdout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate проверяет манифест и записывает его в cfg.Output
func (g *Generator) Generate() error {
	content, err := g.Render()
	if err != nil {
		return err
	}

	if g.cfg.Output == "" || g.cfg.Output == config.StdStream {
		if _, err := g.stdout.Write(content); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(g.cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.cfg.Output, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.cfg.Output, err)
	}

	g.logger.Debug("manifest written", "path", g.cfg.Output, "bytes", len(content))
	return nil
}

// Render возвращает манифест в формате cfg.Format
func (g *Generator) Render() ([]byte, error) {
	if g.manifest == nil {
		return nil, fmt.Errorf("manifest is nil")
	}

	data, err := g.renderJSON()
	if err != nil {
		return nil, err
	}

	if !g.cfg.SkipSchema {
		if err := validateManifest(data); err != nil {
			return nil, err
		}
		g.logger.Debug("manifest matches schema", "actions", len(g.manifest.Actions))
	}

	switch g.cfg.Format {
	case config.FormatYAML:
		return g.renderYAML()
	case config.FormatJSON, "":
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidFormat, g.cfg.Format)
	}
}

func (g *Generator) renderJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// URL не экранируем: & и < в query должны остаться как есть
	enc.SetEscapeHTML(false)
	if g.cfg.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", g.cfg.Indent))
	}
	if err := enc.Encode(g.manifest); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderYAML() ([]byte, error) {
	indent := g.cfg.Indent
	if indent <= 0 {
		indent = 2
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(g.manifest); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}
