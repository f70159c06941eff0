package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	groomkit "github.com/reoring/groomkit"
)

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract a GroomingRecord from a state map",
		Long: `Reads a grooming state map (a JSON or YAML object) from file, or stdin when
no file is given, and prints the typed record as JSON. The first missing or
invalid field in declaration order fails the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args)
		},
	}
	cmd.Flags().String("format", "auto", "input format (auto, json, yaml)")
	cobra.CheckErr(a.v.BindPFlag("format", cmd.Flags().Lookup("format")))
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		name = "-"
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	format, err := inputFormat(a.v.GetString("format"), name)
	if err != nil {
		return err
	}
	a.log.Debug("decoding state map", "input", name, "format", format)

	var m groomkit.DynamicMap
	switch format {
	case "yaml":
		m, err = groomkit.DecodeYAML(data)
	default:
		m, err = groomkit.DecodeJSON(data)
	}
	if err != nil {
		return err
	}

	rec, err := m.ToTyped()
	if err != nil {
		if ee, ok := groomkit.AsExtractionError(err); ok {
			a.log.Error("extraction failed", "code", ee.Code(), "path", ee.Path(), "error", err)
		}
		return err
	}
	return writeJSON(cmd.OutOrStdout(), rec)
}

func inputFormat(flag, name string) (string, error) {
	switch strings.ToLower(flag) {
	case "json", "yaml":
		return strings.ToLower(flag), nil
	case "", "auto":
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			return "yaml", nil
		}
		return "json", nil
	}
	return "", errors.New("unsupported format " + flag + " (want auto, json or yaml)")
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
