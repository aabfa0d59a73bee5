// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/harishsolar/solarsite/internal/db"
	"github.com/harishsolar/solarsite/internal/inquiries"
	"github.com/spf13/cobra"
)

var inquiryLimit int

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "Manage contact form inquiries",
}

var inquiriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent inquiries, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store := inquiries.NewStore(db.GetDB())
		ctx := context.Background()

		list, err := store.List(ctx, inquiryLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(list) == 0 {
			fmt.Println("No inquiries found")
			return
		}

		total, _ := store.Count(ctx)
		fmt.Printf("Showing %d of %d inquiries:\n\n", len(list), total)
		for _, inq := range list {
			notified := ""
			if inq.Notified {
				notified = " (notified)"
			}
			fmt.Printf("#%d  %s  %s <%s>%s\n", inq.ID, inq.CreatedAt.Format("2006-01-02 15:04"), inq.Name, inq.Phone, notified)
			if inq.ProductID != "" {
				fmt.Printf("    Product: %s\n", inq.ProductID)
			}
			if inq.Message != "" {
				fmt.Printf("    %s\n", inq.Message)
			}
		}
	},
}

var inquiriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an inquiry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid inquiry ID: %s\n", args[0])
			os.Exit(1)
		}

		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store := inquiries.NewStore(db.GetDB())
		if err := store.Delete(context.Background(), uint(id)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted inquiry #%d\n", id)
	},
}

func init() {
	inquiriesListCmd.Flags().IntVarP(&inquiryLimit, "limit", "n", 20, "Maximum number of inquiries to show")
	inquiriesCmd.AddCommand(inquiriesListCmd)
	inquiriesCmd.AddCommand(inquiriesDeleteCmd)
	rootCmd.AddCommand(inquiriesCmd)
}
