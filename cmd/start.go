/*
Copyright © 2025 trungle-dev
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/trungle-dev/docqa-be/config"
	"github.com/trungle-dev/docqa-be/handler"
	"github.com/trungle-dev/docqa-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document question-answering server",
	Long:  `Starts a server that accepts document uploads and answers questions about them`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		extractService := service.NewExtractService()
		store, err := service.NewDocumentStore(cfg.UploadDir, extractService)
		if err != nil {
			log.Fatalf("Failed to create document store: %v", err)
		}

		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}
		chatService := service.NewChatService(store, aiService, cfg.AnswerTimeout)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		healthHandler := handler.NewHealthHandler()
		uploadHandler := handler.NewUploadHandler(store)
		chatHandler := handler.NewChatHandler(chatService)
		documentHandler := handler.NewDocumentHandler(store)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", healthHandler.HandleHealth)
		router.POST("/upload", uploadHandler.HandleUpload)
		router.POST("/chat", chatHandler.HandleChat)
		router.GET("/documents", documentHandler.HandleList)
		router.GET("/documents/raw", documentHandler.ServeDocument)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// newAIService picks the completion provider from config. OpenAI-compatible
// endpoints (OpenAI, Groq, local llama servers) are the default.
func newAIService(cfg *config.Config) (service.AIService, error) {
	if cfg.Provider == "gemini" {
		return service.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.Model)
	}
	return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
