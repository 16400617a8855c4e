package main

import (
	"os"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/routes"
	"github.com/Sahithi-Sritha/FSAD-Project/services"
)

func main() {
	config.InitDB()
	services.SeedFoods()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
