/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sdkgen "github.com/dburkart/sdkgen/api"
	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
)

var Command = &cobra.Command{
	Use:   "parse [file ...]",
	Short: "Parse sources and print the resulting documents",
	Long: `Parse each source and print its document in the selected format.
A file named "-" (or no file at all) reads from stdin.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		if len(args) == 0 {
			args = []string{"-"}
		}

		output := viper.GetString("sdkgen.output")
		if !supported(output) {
			return errors.Errorf("unsupported output format '%s'", output)
		}

		target, err := sdkgen.ParseConnectionString(viper.GetString("sdkgen.host"))
		if err != nil {
			return err
		}

		if !target.Local {
			return parseRemote(cmd, viper.GetString("sdkgen.host"), output, args)
		}

		results, err := loader.ParseFiles(cmd.Context(), log, args, viper.GetInt("sdkgen.jobs"))
		if err != nil {
			Report(cmd.ErrOrStderr(), err)
			return errors.New("parsing failed")
		}

		for _, result := range results {
			if err := encoding.WriteDocument(cmd.OutOrStdout(), output, result.Document); err != nil {
				return err
			}
		}

		if viper.GetBool("sdkgen.stats") {
			return writeStats(cmd.OutOrStdout(), log, results)
		}

		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", fmt.Sprintf("Output format %v", encoding.Formats))
	Command.Flags().IntP("jobs", "j", 0, "Number of files parsed at once (default GOMAXPROCS)")
	Command.Flags().Bool("stats", false, "Print a summary of every declaration")

	// Bind flags to viper
	viper.BindPFlag("sdkgen.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("sdkgen.jobs", Command.Flags().Lookup("jobs"))
	viper.BindPFlag("sdkgen.stats", Command.Flags().Lookup("stats"))
}

func supported(format string) bool {
	for _, f := range encoding.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func parseRemote(cmd *cobra.Command, host, output string, paths []string) error {
	client, err := sdkgen.NewClient(host)
	if err != nil {
		return err
	}
	defer client.Close()

	for _, path := range paths {
		doc, err := client.ParseFile(path)
		if err != nil {
			Report(cmd.ErrOrStderr(), err)
			return errors.New("parsing failed")
		}

		if err := encoding.WriteEncoded(cmd.OutOrStdout(), output, doc); err != nil {
			return err
		}
	}

	return nil
}

func writeStats(w io.Writer, log zerolog.Logger, results []loader.Result) error {
	var size uint64
	docs := make(encoding.Summary, 0, len(results))
	total := ast.Stats{}

	for _, result := range results {
		size += uint64(len(result.Source))
		docs = append(docs, result.Document)

		s := result.Document.Stats()
		total.Options += s.Options
		total.Imports += s.Imports
		total.Errors += s.Errors
		total.Enums += s.Enums
		total.Types += s.Types
		total.Gets += s.Gets
		total.Functions += s.Functions
	}

	if err := encoding.NewOutputWriter(w, "text").Write(docs); err != nil {
		return err
	}

	log.Info().
		Int("files", len(results)).
		Str("size", humanize.Bytes(size)).
		Int("types", total.Types).
		Int("operations", total.Gets+total.Functions).
		Msg("parsed")

	return nil
}

// Report prints err to w. Parse failures are shown with the offending line
// of source underlined.
func Report(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)

	var sourceError *loader.SourceError
	if errors.As(err, &sourceError) {
		red.Fprintf(w, "%s error in %s\n", sourceError.Kind(), sourceError.Path)
		fmt.Fprint(w, sourceError.Diagnostic())
		return
	}

	var parseError *sdkgen.ParseError
	if errors.As(err, &parseError) {
		red.Fprintf(w, "%s error in %s\n", parseError.Kind, parseError.Filename)
		fmt.Fprint(w, parseError.Diagnostic)
		return
	}

	red.Fprintln(w, err.Error())
}
