package main

import (
	"FileHaven/config"
	"FileHaven/internal/repo"
	"FileHaven/internal/storage"
	"FileHaven/router"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitDB()
	repo.InitRedis()
	storage.InitStorage()

	router := router.InitRouter()

	router.Run(":8000")
}
