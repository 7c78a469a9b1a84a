/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package serve

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/dburkart/sdkgen/pkg/server"
)

var Command = &cobra.Command{
	Use:   "serve",
	Short: "Serve parse requests over HTTP",

	RunE: func(cmd *cobra.Command, args []string) error {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(
			logger,
			viper.GetInt("sdkgen.port"),
			viper.GetInt("sdkgen.prom-port"),
			viper.GetInt64("sdkgen.max-bytes"),
		)

		// Serve parse requests and the metrics endpoint until either stops
		var g errgroup.Group
		g.Go(srv.ServeParse)
		g.Go(srv.ServeMetrics)

		return g.Wait()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port to serve parse requests on")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")
	Command.Flags().Int64("max-bytes", 1<<20, "Largest source accepted, in bytes")

	// Bind flags to viper
	viper.BindPFlag("sdkgen.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("sdkgen.prom-port", Command.Flags().Lookup("prom-port"))
	viper.BindPFlag("sdkgen.max-bytes", Command.Flags().Lookup("max-bytes"))
}
