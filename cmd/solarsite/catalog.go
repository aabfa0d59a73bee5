// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product catalog",
	Long:  "Show the products served by the site, from catalog.path or the built-in catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cat, err := loadCatalog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%-10s %-8s %-45s %s\n", "ID", "Model", "Name", "Rear Image")
		fmt.Println("---------------------------------------------------------------------------")
		for _, p := range cat.Products {
			rear := "no"
			if p.HasBackImage() {
				rear = "yes"
			}
			fmt.Printf("%-10s %-8s %-45s %s\n", p.ID, p.Model(), p.Name, rear)
		}
		fmt.Printf("\n%d products, %d features, %d applications\n",
			len(cat.Products), len(cat.Features), len(cat.Applications))
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a product's details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cat, err := loadCatalog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, ok := cat.Product(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: product not found: %s\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("%s (%s)\n", p.Name, p.Model())
		fmt.Printf("  Image:      %s\n", p.Image)
		fmt.Printf("  Rear image: %s\n", maskIfEmpty(p.BackImage))
		if p.Description != "" {
			fmt.Printf("\n  %s\n", p.Description)
		}

		fmt.Println("\nSpecs:")
		for _, s := range p.Specs {
			fmt.Printf("  - %s\n", s)
		}

		if len(p.Details) > 0 {
			fmt.Println("\nTechnical details:")
			for _, d := range p.Details {
				fmt.Printf("  %-22s %s\n", d.Feature+":", d.Value)
			}
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
