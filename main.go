package main

import (
	"FileTransfer/config"
	"FileTransfer/internal/repo"
	"FileTransfer/internal/storage"
	"FileTransfer/router"
	"log"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	storage.InitBlobStore()

	r := router.InitRouter()

	if err := r.Run(config.AppConfig.ListenAddr); err != nil {
		log.Fatal("server stopped:", err)
	}
}
