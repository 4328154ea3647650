package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootConfig holds the persistent flags shared by every subcommand.
type rootConfig struct {
	LogLevel  string `flag:"log-level" validate:"required,oneof=debug info warn error"`
	LogFormat string `flag:"log-format" validate:"required,oneof=text json"`
}

// app carries parsed flags and shared services into subcommands.
type app struct {
	root     rootConfig
	solve    solveConfig
	logger   *slog.Logger
	validate *validator.Validate
}

func newApp() *app {
	v := validator.New()
	// Report flag names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return fld.Name
	})

	return &app{validate: v, logger: slog.New(slog.DiscardHandler)}
}

func newRootCmd() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:           "pathfinder",
		Short:         "Shortest paths over weighted adjacency matrices",
		Long:          "pathfinder computes the shortest directed path between two vertices of a graph\ngiven as a square matrix of non-negative weights (0 = no edge).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFlags(a.root); err != nil {
				return err
			}
			a.logger = newLogger(cmd.ErrOrStderr(), a.root.LogLevel, a.root.LogFormat)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.root.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.root.LogFormat, "log-format", "text", "log format: text, json")

	root.AddCommand(a.newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pathfinder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "pathfinder", version)
			return err
		},
	}
}

// errInvalidFlags groups every flag validation failure.
var errInvalidFlags = errors.New("invalid flags")

// checkFlags validates a flag struct and rewrites validator errors as
// "--flag must be one of [...]" messages.
func (a *app) checkFlags(cfg any) error {
	err := a.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", errInvalidFlags, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("--%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("--%s failed %q", fe.Field(), fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", errInvalidFlags, strings.Join(msgs, "; "))
}

// newLogger builds the CLI logger. level and format are already validated.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
