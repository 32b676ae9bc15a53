package main

import (
	"os"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/routes"
	"github.com/Brayern/bibo-health-hub/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
