/*
Copyright © 2025 trungle-dev
*/
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/trungle-dev/docqa-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}
