/*
Copyright © 2025 trungle-dev
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trungle-dev/docqa-be/config"
	"github.com/trungle-dev/docqa-be/service"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Ingest local documents into the content store",
	Long: `Reads one or more local files (PDF, PPTX or TXT), persists them to the
configured upload directory and extracts their text, exactly as the /upload
endpoint would. Useful for seeding the store without a running server.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		store, err := service.NewDocumentStore(cfg.UploadDir, service.NewExtractService())
		if err != nil {
			log.Fatalf("Failed to create document store: %v", err)
		}

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", path, err)
			}
			text, err := store.Put(filepath.Base(path), data)
			if err != nil {
				log.Fatalf("Failed to ingest %s: %v", path, err)
			}
			fmt.Printf("Ingested %s (%d characters of text)\n", filepath.Base(path), len(text))
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
