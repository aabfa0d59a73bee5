// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solarsite",
	Short: "solarsite - Harish Solar Systems product website",
	Long: `solarsite serves the Harish Solar Systems catalog of all-in-one solar
street lights: a single-page product showcase with per-product detail pages
and an inquiry form.

It also manages the site's configuration, stored inquiries, image thumbnails,
TLS certificates and database backups.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
