package main

import (
	"log"

	"github.com/srinitha06/Water-monitoring-system/config"
	"github.com/srinitha06/Water-monitoring-system/controllers"
	"github.com/srinitha06/Water-monitoring-system/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := config.Load()

	// Connect to the database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Database connected")

	if err := controllers.MigrateModels(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.AlertReceiver)

	auth := controllers.NewAuthController(db)
	dispensers := controllers.NewDispenserController(db, mailer)
	thingspeak := controllers.NewThingSpeakController(utils.NewThingSpeakClient())

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"https://water-monitoring-system-frontend-bb.vercel.app",
			"https://water-monitoring-system-frontend-ez.vercel.app",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	r.GET("/api/thingspeak", thingspeak.Latest)

	r.POST("/api/dispensers", dispensers.Create)
	r.GET("/api/dispensers", dispensers.List)
	r.DELETE("/api/dispensers/:id", dispensers.Delete)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
