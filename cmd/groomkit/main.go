// Package main is the entry point for the groomkit CLI: extract typed grooming
// records from JSON/YAML state maps and print type descriptions.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/groomkit/i18n"
	"github.com/reoring/groomkit/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries per-invocation state shared by subcommands.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "groomkit",
		Short: "Validate grooming state maps into typed records",
		Long: `groomkit converts a loosely-typed grooming state map (JSON or YAML object)
into a GroomingRecord, reporting the first missing or invalid field in
declaration order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./groomkit.yaml or ~/.config/groomkit/groomkit.yaml)")
	root.PersistentFlags().String("lang", "en", "message language (en, ja)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cobra.CheckErr(a.v.BindPFlag("lang", root.PersistentFlags().Lookup("lang")))
	cobra.CheckErr(a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level")))

	root.AddCommand(
		newExtractCmd(a),
		newDescribeCmd(a),
		newDefaultsCmd(),
		newVersionCmd(),
	)
	return root
}

// configure loads configuration and applies it. Flags win over env, env over file.
func (a *app) configure(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("groomkit")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "groomkit"))
		}
	}
	a.v.SetEnvPrefix("GROOMKIT")
	a.v.AutomaticEnv()

	readErr := a.v.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(readErr, &notFound) {
			return fmt.Errorf("read config: %w", readErr)
		}
	}

	lvl, err := logging.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = logging.New(cmd.ErrOrStderr(), lvl)
	if readErr == nil {
		a.log.Debug("using config file", "path", a.v.ConfigFileUsed())
	}

	i18n.SetLanguage(a.v.GetString("lang"))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
