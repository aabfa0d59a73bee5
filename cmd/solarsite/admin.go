// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harishsolar/solarsite/internal/auth"
	"github.com/harishsolar/solarsite/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the admin inquiry inbox",
	Long:  "The admin inbox at /admin lists contact form inquiries. It is disabled until a password is set.",
}

var adminSetPasswordCmd = &cobra.Command{
	Use:   "set-password [username]",
	Short: "Set the admin password and enable the inbox",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		username := config.GetString("admin.username")
		if len(args) == 1 {
			username = args[0]
		}

		password, err := readPassword("New password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read password: %v\n", err)
			os.Exit(1)
		}
		if len(password) < 8 {
			fmt.Fprintln(os.Stderr, "Error: password must be at least 8 characters")
			os.Exit(1)
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set("admin.username", username); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}
		if err := config.Set("admin.password_hash", hash); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		// A new secret signs out existing sessions
		secret, err := auth.GenerateSecret()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := config.Set("auth.jwt_secret", secret); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Admin password set for %s. Restart the server and sign in at /admin/login\n", username)
	},
}

var adminDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the admin inbox",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set("admin.password_hash", ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Admin inbox disabled. Restart the server to apply.")
	},
}

// readPassword prompts without echo on a terminal and reads a line otherwise
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		return string(b), err
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	adminCmd.AddCommand(adminSetPasswordCmd)
	adminCmd.AddCommand(adminDisableCmd)
	rootCmd.AddCommand(adminCmd)
}
