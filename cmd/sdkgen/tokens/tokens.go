/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokens

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/sdkgen/cmd/sdkgen/parse"
	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
	"github.com/dburkart/sdkgen/pkg/sdkgen/scanner"
)

var Command = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		path := "-"
		if len(args) == 1 {
			path = args[0]
		}

		output, _ := cmd.Flags().GetString("output")
		switch output {
		case "text", "table", "csv", "json":
		default:
			return errors.Errorf("unsupported output format '%s'", output)
		}

		source, err := loader.ReadSource(path)
		if err != nil {
			return err
		}

		toks, err := scanner.New(path, source).Tokens()
		if err != nil {
			parse.Report(cmd.ErrOrStderr(), &loader.SourceError{Path: path, Source: source, Err: err})
			return errors.New("scanning failed")
		}

		log.Debug().Str("file", path).Int("tokens", len(toks)).Msg("scanned file")

		return encoding.NewOutputWriter(cmd.OutOrStdout(), output).Write(encoding.TokenTable(toks))
	},
}

func init() {
	Command.Flags().StringP("output", "o", "text", "Output format [csv, json, table, text]")
}
