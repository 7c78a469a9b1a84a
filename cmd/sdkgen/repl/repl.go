/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sdkgen "github.com/dburkart/sdkgen/api"
	"github.com/dburkart/sdkgen/cmd/sdkgen/parse"
	"github.com/dburkart/sdkgen/pkg/repl"
	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
	"github.com/dburkart/sdkgen/pkg/sdkgen/scanner"
)

const (
	prompt         = "\033[31m>\033[0m "
	continuePrompt = "\033[31m.\033[0m "
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse declarations",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		output, _ := cmd.Flags().GetString("output")
		host := viper.GetString("sdkgen.host")

		target, err := sdkgen.ParseConnectionString(host)
		if err != nil {
			return err
		}

		var client sdkgen.Client
		if !target.Local {
			if output == "text" || output == "sdkgen" {
				output = "yaml"
			}
			client, err = sdkgen.NewClient(host)
			if err != nil {
				return err
			}
			defer client.Close()
			log.Debug().Str("address", target.Address).Msg("sending sources to parse service")
		}

		return readlinePrompt(cmd.OutOrStdout(), client, output)
	},
}

func init() {
	Command.Flags().StringP("output", "o", "text", fmt.Sprintf("Output format %v", encoding.Formats))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(out io.Writer, client sdkgen.Client, output string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    repl.NewCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return errors.Wrap(err, "unable to start prompt")
	}
	defer rl.Close()

	session := repl.Session{}

	for {
		ln := rl.Line()
		if ln.CanContinue() {
			session.Reset()
			rl.SetPrompt(prompt)
			continue
		} else if ln.CanBreak() {
			break
		}

		cmd := repl.ParseREPLCommand(ln.Line)
		switch cmd.Kind {
		case repl.CommandSource:
			session.Feed(ln.Line)
			rl.SetPrompt(continuePrompt)
			continue
		case repl.CommandSubmit:
			if session.Pending() {
				name, source := session.Take()
				evaluate(out, rl.Stderr(), client, output, name, source)
			}
		case repl.CommandTokens:
			printTokens(out, rl.Stderr(), session.Peek())
		case repl.CommandClear:
			session.Reset()
		case repl.CommandHelp:
			printHelp(out)
		case repl.CommandExit:
			return nil
		case repl.CommandUnknown:
			fmt.Fprintf(rl.Stderr(), "unknown command %s, try .help\n", cmd.Data)
		}

		rl.SetPrompt(prompt)
	}
	rl.Clean()

	return nil
}

func evaluate(out, errOut io.Writer, client sdkgen.Client, output, name, source string) {
	if client != nil {
		doc, err := client.Parse(name, source)
		if err != nil {
			parse.Report(errOut, err)
			return
		}
		if err := encoding.WriteEncoded(out, output, doc); err != nil {
			parse.Report(errOut, err)
		}
		return
	}

	result, err := loader.ParseSource(name, source)
	if err != nil {
		parse.Report(errOut, err)
		return
	}

	if err := encoding.WriteDocument(out, output, result.Document); err != nil {
		parse.Report(errOut, err)
	}
}

func printTokens(out, errOut io.Writer, source string) {
	toks, err := scanner.New("repl", source).Tokens()
	if err != nil {
		parse.Report(errOut, &loader.SourceError{Path: "repl", Source: source, Err: err})
		return
	}

	encoding.NewOutputWriter(out, "text").Write(encoding.TokenTable(toks))
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Type declarations; an empty line parses everything entered so far.")
	fmt.Fprintln(out, "usage:")
	for _, line := range []string{
		".tokens  show the tokens of the pending source",
		".clear   discard the pending source",
		".help    show this message",
		".exit    leave the prompt",
	} {
		fmt.Fprintln(out, strings.Repeat(" ", 4)+line)
	}
}
