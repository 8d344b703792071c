// Package main implements the pathc CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	pathc "github.com/YuniqueUnic/pathc"
	"github.com/YuniqueUnic/pathc/internal/except"
	"github.com/YuniqueUnic/pathc/internal/fspath"
	"github.com/YuniqueUnic/pathc/internal/gen"
)

// init initializes the default logger.
func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("pathc/log")
		if err != nil {
			errs = append(errs, err)
			fp = "pathc.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

func main() {
	genCmd := &cobra.Command{
		Use:   "gen [PATH]",
		Short: "Generate path constants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return gen.Generate(manifestPath(args))
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [PATH]",
		Short: "Verify generated path constants are up to date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mismatches, err := gen.Check(manifestPath(args))
			if err != nil {
				return err
			}
			for _, mismatch := range mismatches {
				fmt.Fprintln(cmd.OutOrStdout(), mismatch)
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("%d generated file(s) out of date", len(mismatches))
			}
			return nil
		},
	}

	var (
		sepName  string
		varFlags []string
	)
	evalCmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Join a path expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			flavor, err := fspath.FlavorString(sepName)
			if err != nil {
				return fmt.Errorf("bad separator %q", sepName)
			}
			vars := make(pathc.Vars, len(varFlags))
			for _, kv := range varFlags {
				name, value, found := strings.Cut(kv, "=")
				if !found {
					return fmt.Errorf("bad variable %q, expected name=value", kv)
				}
				vars[name] = value
			}
			buf := pathc.NewBuffer(flavor)
			if err := buf.PushExpr(args[0], vars); err != nil {
				return err
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Println(buf.String()) //nolint:forbidigo
			} else {
				// No trailing newline when piped, so $(pathc eval ...) substitutes cleanly.
				fmt.Print(buf.String()) //nolint:forbidigo
			}
			return nil
		},
	}
	evalCmd.Flags().StringVar(&sepName, "sep", fspath.FlavorOS.String(), "separator flavor (os, slash, or backslash)")
	evalCmd.Flags().StringArrayVar(&varFlags, "var", nil, "interpolation variable, name=value")

	rootCmd := &cobra.Command{Use: "pathc", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.AddCommand(genCmd, checkCmd, evalCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func manifestPath(args []string) fspath.Local {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
