// Command svgschema inspects the compiled SVG schema used by the normalizer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/NestorMonroy/svgo"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// usageError marks command line mistakes, reported with exit code 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

type app struct {
	schemaPath string
	logLevel   string

	stdout io.Writer
	logger *log.Logger
	schema *svgo.Schema
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout}
	root := a.rootCommand(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if _, writeErr := fmt.Fprintf(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		var uerr *usageError
		if errors.As(err, &uerr) {
			return 2
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand(stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "svgschema",
		Short:         "Inspect the SVG element schema",
		Long:          `Lists known SVG elements, prints their compiled attribute sets, content models and defaults, and shows effective normalizer options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(stderr)
		},
	}
	root.PersistentFlags().StringVar(&a.schemaPath, "schema", "", "path to an alternative knowledge base (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(a.elementsCommand(), a.showCommand(), a.optionsCommand())
	return root
}

func (a *app) setup(stderr io.Writer) error {
	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return &usageError{err: fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)}
	}
	a.logger = log.NewWithOptions(stderr, log.Options{Level: level, Prefix: "svgschema"})

	if a.schemaPath == "" {
		a.schema = svgo.DefaultSchema()
		a.logger.Debug("using embedded schema", "elements", len(a.schema.Elements()))
		return nil
	}
	schema, err := svgo.LoadSchemaFile(a.schemaPath)
	if err != nil {
		return err
	}
	a.schema = schema
	a.logger.Debug("loaded schema", "path", a.schemaPath, "elements", len(schema.Elements()))
	return nil
}

func (a *app) elementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List known element names",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range a.schema.Elements() {
				if _, err := fmt.Fprintln(a.stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <element>...",
		Short: "Print compiled element definitions as YAML",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			infos := make([]svgo.ElementInfo, 0, len(args))
			for _, name := range args {
				info, ok := a.schema.Element(name)
				if !ok {
					return fmt.Errorf("unknown element %q", name)
				}
				infos = append(infos, info)
			}
			return writeYAML(a.stdout, infos)
		},
	}
}

func (a *app) optionsCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print effective normalizer options as YAML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := svgo.DefaultOptions()
			if configPath != "" {
				loaded, err := svgo.LoadOptionsFile(configPath)
				if err != nil {
					return err
				}
				opts = loaded
				a.logger.Debug("loaded options", "path", configPath)
			}
			return writeYAML(a.stdout, opts)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "options file (YAML)")
	return cmd
}

// usageArgs reports positional argument mistakes as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
