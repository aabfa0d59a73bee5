// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/harishsolar/solarsite/internal/backup"
	"github.com/harishsolar/solarsite/internal/config"
	"github.com/harishsolar/solarsite/internal/db"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
	Long:  "Commands for managing inquiry database backups: create, list, restore, delete, and status",
}

// backupManager returns the manager for the configured backup directory
func backupManager() *backup.BackupManager {
	return backup.NewBackupManager(config.GetString("backups.path"), config.GetInt("backups.retention"))
}

// newUploader returns the off-site uploader from backups.s3.*, or nil when
// no bucket is configured
func newUploader() (backup.Uploader, error) {
	bucket := config.GetString("backups.s3.bucket")
	if bucket == "" {
		return nil, nil
	}
	uploader, err := backup.NewS3Uploader(backup.S3Config{
		Bucket:          bucket,
		Region:          config.GetString("backups.s3.region"),
		Endpoint:        config.GetString("backups.s3.endpoint"),
		Prefix:          config.GetString("backups.s3.prefix"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		return nil, err
	}
	return uploader, nil
}

// confirm asks the user to type yes
func confirm(prompt string) bool {
	fmt.Printf("%s (type 'yes' to confirm): ", prompt)

	var confirmation string
	fmt.Scanln(&confirmation)
	return confirmation == "yes"
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup now",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		path, err := backupManager().CreateBackup(ctx, db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created %s\n", path)

		uploader, err := newUploader()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: off-site upload: %v\n", err)
			os.Exit(1)
		}
		if uploader == nil {
			return
		}

		location, err := uploader.Upload(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Uploaded to %s\n", location)
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backups",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		backups, err := backupManager().ListBackups()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(backups) == 0 {
			fmt.Println("No backups found")
			return
		}

		fmt.Println("Available backups:")
		for i, b := range backups {
			fmt.Printf("%d. %s (%s, %s)\n", i+1, b.Name, b.CreatedAt.Local().Format("2006-01-02 15:04:05"), formatBytes(b.Size))
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Restore the database from a backup",
	Long:  "Replace the SQLite database with a backup. Stop the server first.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if config.GetString("database.type") != "sqlite" {
			fmt.Fprintln(os.Stderr, "Error: restore is only supported for sqlite databases")
			os.Exit(1)
		}

		filename := args[0]

		// Confirm restore (safety check)
		fmt.Printf("WARNING: This will overwrite %s.\n", config.GetString("database.path"))
		if !confirm(fmt.Sprintf("Are you sure you want to restore from '%s'?", filename)) {
			fmt.Println("Restore cancelled.")
			return
		}

		// Perform restore
		if err := backupManager().RestoreBackup(filename, config.GetString("database.path")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: restore failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Successfully restored from %s\n", filename)
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		filename := args[0]

		// Confirm deletion
		if !confirm(fmt.Sprintf("Are you sure you want to delete '%s'?", filename)) {
			fmt.Println("Deletion cancelled.")
			return
		}

		if err := backupManager().DeleteBackup(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Successfully deleted %s\n", filename)
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backup status and statistics",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		backups, err := backupManager().ListBackups()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var totalSize int64
		for _, b := range backups {
			totalSize += b.Size
		}

		fmt.Println("Backup Status:")
		fmt.Printf("  Directory: %s\n", config.GetString("backups.path"))
		fmt.Printf("  Automatic: %v (every %s, keeping %d)\n",
			config.GetBool("backups.enable_auto_backup"),
			config.GetDuration("backups.interval"),
			config.GetInt("backups.retention"))
		if bucket := config.GetString("backups.s3.bucket"); bucket != "" {
			fmt.Printf("  Off-site: s3://%s/%s\n", bucket, config.GetString("backups.s3.prefix"))
		}
		fmt.Printf("  Total backups: %d\n", len(backups))
		fmt.Printf("  Total size: %s\n", formatBytes(totalSize))
		if len(backups) > 0 {
			// ListBackups is newest first
			fmt.Printf("  Oldest backup: %s\n", backups[len(backups)-1].CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("  Newest backup: %s\n", backups[0].CreatedAt.Local().Format("2006-01-02 15:04:05"))
		}
	},
}

// formatBytes converts bytes to human-readable format
func formatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)

	for _, unit := range units {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.2f TB", size)
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupDeleteCmd)
	backupCmd.AddCommand(backupStatusCmd)
}
