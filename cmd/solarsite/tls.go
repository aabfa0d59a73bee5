// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harishsolar/solarsite/internal/config"
	"github.com/harishsolar/solarsite/internal/tls"
	"github.com/spf13/cobra"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Manage SSL/TLS certificates for the site's domains",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Long:  "Display the status of all managed SSL/TLS certificates",
	Run: func(cmd *cobra.Command, args []string) {
		// Initialize config
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Check if TLS is enabled
		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is disabled. Enable it with: solarsite config set server.tls_enabled true")
			os.Exit(0)
		}

		// Load TLS config
		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
			os.Exit(1)
		}

		// Create TLS manager
		tlsManager, err := tls.NewManager(tlsCfg, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create TLS manager: %v\n", err)
			os.Exit(1)
		}

		// Get certificate status
		statuses, err := tlsManager.GetCertificateStatus(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get certificate status: %v\n", err)
			os.Exit(1)
		}

		if len(statuses) == 0 {
			fmt.Println("No certificates found. Certificates are provisioned when the server starts.")
			fmt.Println("\nConfigured domains:")
			for _, domain := range tlsManager.Domains() {
				fmt.Printf("  - %s (not yet provisioned)\n", domain)
			}
			os.Exit(0)
		}

		now := time.Now()
		fmt.Printf("%-30s %-20s %-12s %-10s %s\n", "Domain", "Issuer", "Expires", "Days Left", "State")
		fmt.Println(strings.Repeat("-", 90))
		for _, status := range statuses {
			if status.Err != nil {
				fmt.Printf("%-30s %v\n", status.Domain, status.Err)
				continue
			}

			state := "ok"
			switch {
			case status.Expired(now):
				state = "EXPIRED"
			case status.RenewalDue(now):
				state = "renewal due"
			}
			fmt.Printf("%-30s %-20s %-12s %-10d %s\n",
				status.Domain,
				status.Issuer,
				status.NotAfter.Format("2006-01-02"),
				status.DaysUntilExpiry,
				state,
			)
		}
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
