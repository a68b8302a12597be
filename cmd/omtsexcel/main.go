// Package main provides the command-line interface for generating OMTS
// Excel authoring templates.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/omts-format/omtsexcel-go/cmd/omtsexcel/config"
	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel"
	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/output"
)

var (
	configPath string
	outputDir  string
	author     string
	verbose    bool

	variantFlag  string
	withExamples bool
	outFile      string

	schemaVariant string
	prettyJSON    bool
	schemaFile    string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "omtsexcel",
	Short: "Generate OMTS Excel authoring templates",
	Long: `omtsexcel generates the Excel authoring templates for the OMTS
supply-chain disclosure format: the normalized multi-sheet graph template
and the simplified single-sheet supplier list, each with an optional worked
example dataset.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if author != "" {
			cfg.Author = author
		}
		logger.Debug("configuration loaded",
			zap.String("config", configPath),
			zap.String("output_dir", cfg.OutputDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single template workbook",
	RunE:  runGenerate,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate all four standard artifacts",
	RunE:  runAll,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print a template's declared schema as JSON",
	RunE:  runSchema,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name := outFile
	if name == "" {
		name = cfg.FileName(variantFlag, withExamples)
	}
	return writeArtifact(omtsexcel.Variant(variantFlag), name, withExamples)
}

func runAll(cmd *cobra.Command, args []string) error {
	artifacts := []struct {
		variant  omtsexcel.Variant
		examples bool
		name     string
	}{
		{omtsexcel.VariantFull, false, cfg.Files.Template},
		{omtsexcel.VariantFull, true, cfg.Files.Example},
		{omtsexcel.VariantSupplierList, false, cfg.Files.SupplierList},
		{omtsexcel.VariantSupplierList, true, cfg.Files.SupplierListExample},
	}
	for _, a := range artifacts {
		if err := writeArtifact(a.variant, a.name, a.examples); err != nil {
			return err
		}
	}
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	spec, err := omtsexcel.Template(omtsexcel.Variant(schemaVariant))
	if err != nil {
		return err
	}
	data, err := output.SpecToJSON(spec, prettyJSON)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if schemaFile != "" {
		if err := os.WriteFile(schemaFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("schema written",
			zap.String("variant", schemaVariant),
			zap.String("path", schemaFile))
		return nil
	}
	fmt.Println(string(data))
	return nil
}

// writeArtifact generates one workbook under the configured output
// directory, stamped with a fresh build id.
func writeArtifact(variant omtsexcel.Variant, name string, examples bool) error {
	opts := omtsexcel.Options{
		WithExamples: examples,
		Author:       cfg.Author,
		BuildID:      uuid.NewString(),
	}
	path := filepath.Join(cfg.OutputDir, name)
	if err := omtsexcel.Write(variant, path, opts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	logger.Info("template written",
		zap.String("variant", string(variant)),
		zap.String("path", path),
		zap.Bool("examples", examples),
		zap.String("build_id", opts.BuildID))
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&author, "author", "", "Comment author (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.Flags().StringVar(&variantFlag, "variant", string(omtsexcel.VariantFull), "Template variant: full, supplier-list")
	generateCmd.Flags().BoolVar(&withExamples, "examples", false, "Populate the worked example dataset")
	generateCmd.Flags().StringVar(&outFile, "file", "", "Output file name (default: per config)")

	schemaCmd.Flags().StringVar(&schemaVariant, "variant", string(omtsexcel.VariantFull), "Template variant: full, supplier-list")
	schemaCmd.Flags().BoolVar(&prettyJSON, "pretty", false, "Pretty-print the JSON output")
	schemaCmd.Flags().StringVarP(&schemaFile, "file", "f", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(generateCmd, allCmd, schemaCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
