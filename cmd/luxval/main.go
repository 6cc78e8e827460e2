package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Spectral-Finance/lux-go/catalog"
	"github.com/Spectral-Finance/lux-go/schema"
	"github.com/Spectral-Finance/lux-go/signal"
)

var (
	version = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "luxval",
		Short: "Validate lux signal payloads against schema definitions",
		Long: `luxval validates signal payloads against schema definitions.
Schemas come from a definition document (JSON or YAML) or from the
built-in catalog of lux schemas.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSchemasCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	var (
		schemaPath  string
		catalogName string
	)

	cmd := &cobra.Command{
		Use:   "validate [payload file]",
		Short: "Validate a payload file against a schema",
		Long: `Validate a JSON or YAML payload file against a schema definition.
The schema comes from --schema (a definition document) or --catalog
(a built-in catalog schema name); exactly one must be given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := resolveSchema(schemaPath, catalogName)
			if err != nil {
				return err
			}

			payload, err := loadPayload(args[0])
			if err != nil {
				return err
			}

			slog.Debug("validating payload",
				"schema", def.Name(),
				"version", def.Version(),
				"payload", args[0])

			sig, err := signal.New(def, payload)
			if err != nil {
				return fmt.Errorf("payload does not conform to schema %q: %w", def.Name(), err)
			}

			fmt.Printf("OK: payload conforms to %s %s (signal %s)\n", def.Name(), def.Version(), sig.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to a schema definition document (JSON or YAML)")
	cmd.Flags().StringVarP(&catalogName, "catalog", "c", "", "Name of a built-in catalog schema")
	return cmd
}

func newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List built-in catalog schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range catalog.All() {
				fmt.Printf("%-22s %-6s %s\n", def.Name(), def.Version(), def.Description())
			}
			return nil
		},
	}
}

func resolveSchema(schemaPath, catalogName string) (*schema.Definition, error) {
	switch {
	case schemaPath != "" && catalogName != "":
		return nil, fmt.Errorf("--schema and --catalog are mutually exclusive")
	case schemaPath != "":
		return schema.Load(schemaPath)
	case catalogName != "":
		def, ok := catalog.Lookup(catalogName)
		if !ok {
			return nil, fmt.Errorf("unknown catalog schema %q; run 'luxval schemas' for the list", catalogName)
		}
		return def, nil
	default:
		return nil, fmt.Errorf("one of --schema or --catalog is required")
	}
}

func loadPayload(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	payload := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
	}
	return payload, nil
}
