package main

import (
	"fmt"
	"os"

	"github.com/mdwit/openapi2omg/internal/config"
	"github.com/mdwit/openapi2omg/internal/generator"
	"github.com/mdwit/openapi2omg/internal/logging"
	"github.com/mdwit/openapi2omg/internal/omg"
	"github.com/mdwit/openapi2omg/internal/parser"
	"github.com/spf13/cobra"
)

var version = "dev"

type flags struct {
	cfgFile        string
	output         string
	format         string
	indent         int
	serverIndex    int
	onCollision    string
	skipValidation bool
	skipSchema     bool
	verbose        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "openapi2omg [source]",
		Short: "Convert an OpenAPI specification into an OMG action manifest",
		Long: `openapi2omg converts OpenAPI 3.x specifications into OMG manifests:
a flat list of named HTTP actions with resolved absolute URLs.

The source is a file path, an http(s) URL or - for stdin.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	rootCmd.Flags().StringVarP(&f.cfgFile, "config", "c", "", "config file (openapi2omg.json or .yaml)")
	rootCmd.Flags().StringVarP(&f.output, "output", "o", "", "output file, - for stdout (default -)")
	rootCmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: json, yaml (default json)")
	rootCmd.Flags().IntVar(&f.indent, "indent", 2, "indentation width, 0 for compact JSON")
	rootCmd.Flags().IntVarP(&f.serverIndex, "server-index", "s", 0, "server to use when the spec declares more than one")
	rootCmd.Flags().StringVar(&f.onCollision, "on-collision", "", "duplicate action names: overwrite, error (default overwrite)")
	rootCmd.Flags().BoolVar(&f.skipValidation, "skip-validation", false, "skip OpenAPI spec validation")
	rootCmd.Flags().BoolVar(&f.skipSchema, "skip-schema", false, "skip manifest schema check")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := loadConfig(cmd, f, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), "openapi2omg", cfg.Verbose)

	logger.Debug("parsing OpenAPI spec", "source", cfg.Source, "skipValidation", cfg.SkipValidation)
	doc, err := parser.Parse(cmd.Context(), cfg.Source, &parser.ParseOptions{
		SkipValidation: cfg.SkipValidation,
		Stdin:          cmd.InOrStdin(),
	})
	if err != nil {
		return fmt.Errorf("failed to parse spec: %w", err)
	}

	manifest, err := omg.Convert(doc, cfg.Properties())
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}
	logger.Debug("converted", "version", manifest.FromOpenAPIVersion, "actions", len(manifest.Actions))

	gen := generator.New(cfg, manifest,
		generator.WithStdout(cmd.OutOrStdout()),
		generator.WithLogger(logger),
	)
	if err := gen.Generate(); err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	if cfg.Output != config.StdStream {
		logger.Info("manifest generated", "output", cfg.Output, "actions", len(manifest.Actions))
	}
	return nil
}

func loadConfig(cmd *cobra.Command, f *flags, args []string) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if f.cfgFile != "" {
		cfg, err = config.LoadFromFile(f.cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	// Флаги CLI переопределяют конфиг
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.format != "" {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = f.indent
	}
	if cmd.Flags().Changed("server-index") {
		idx := f.serverIndex
		cfg.ServerIndex = &idx
	}
	if f.onCollision != "" {
		cfg.OnCollision = f.onCollision
	}
	if f.skipValidation {
		cfg.SkipValidation = true
	}
	if f.skipSchema {
		cfg.SkipSchema = true
	}
	if f.verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}
