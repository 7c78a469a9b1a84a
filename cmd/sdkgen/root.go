/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sdkgen

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/sdkgen/cmd/sdkgen/parse"
	"github.com/dburkart/sdkgen/cmd/sdkgen/repl"
	"github.com/dburkart/sdkgen/cmd/sdkgen/serve"
	"github.com/dburkart/sdkgen/cmd/sdkgen/tokens"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "sdkgen",
		Short: "sdkgen parses API description sources",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("host", "H", "", "Parse service to send sources to (default parses in-process)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the sdkgen config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("sdkgen.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("sdkgen.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("sdkgen.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("sdkgen version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{parse.Command, tokens.Command, repl.Command, serve.Command} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
