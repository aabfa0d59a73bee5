// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/harishsolar/solarsite/internal/config"
	"github.com/harishsolar/solarsite/internal/media"
	"github.com/spf13/cobra"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage product images",
}

var mediaThumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Generate catalog card thumbnails",
	Long: `Generate square thumbnails for every catalog image under
storage.static_dir. Cards use /images/thumbs/<name>.png when it exists.`,
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

		var refs []string
		for _, p := range cat.Products {
			refs = append(refs, p.Image)
			if p.HasBackImage() {
				refs = append(refs, p.BackImage)
			}
		}

		resolver := media.NewResolver(config.GetString("storage.static_dir"))
		generated, missing, err := resolver.GenerateThumbnails(refs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Generated %d thumbnails in %s\n", generated, resolver.Dir)
		if len(missing) > 0 {
			fmt.Printf("\n%d images not found (pages will show a placeholder):\n", len(missing))
			for _, ref := range missing {
				fmt.Printf("  - %s\n", ref)
			}
		}
	},
}

func init() {
	mediaCmd.AddCommand(mediaThumbsCmd)
	rootCmd.AddCommand(mediaCmd)
}
