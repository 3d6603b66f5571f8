package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Rohitsengar02/CivicConnect/config"
	"github.com/Rohitsengar02/CivicConnect/controllers"
	"github.com/Rohitsengar02/CivicConnect/models"
	"github.com/Rohitsengar02/CivicConnect/repositories"
	"github.com/Rohitsengar02/CivicConnect/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	adminCollection := config.GetCollection("admins")
	if err := models.EnsureAdminIndexes(adminCollection); err != nil {
		log.Fatalf("Failed to create admin indexes: %v", err)
	}

	controllers.InitRepositories(
		repositories.NewMongoIssueRepository(config.GetCollection("issues")),
		repositories.NewMongoAdminRepository(adminCollection, config.GetCollection("districtClaims")),
	)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	r.Use(cors.New(corsConfig))

	routes.IssueRoutes(r)
	routes.AdminRoutes(r)
	routes.RegionRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
