package main

import (
	"context"
	"log"
	"time"

	"CareSphere/cache"
	"CareSphere/config"
	"CareSphere/database"
	"CareSphere/jobs"
	"CareSphere/routes"
	"CareSphere/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Invalid configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalln("Could not connect to mongo:", err)
	}
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatalln("Could not create indexes:", err)
	}

	cache.Init(cfg.RedisAddr)
	services.Init(cfg, buildMailer(cfg))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r, cfg)

	if !isTest {
		jobs.StartDeliveryScheduler()
	}

	if err := startServer(r, ":"+cfg.Port); err != nil {
		log.Fatalln("Server stopped:", err)
	}
}

// buildMailer returns the SMTP transport, or nil when mail is not configured
// so services fall back to the disabled mailer.
func buildMailer(cfg *config.Config) services.Mailer {
	if !cfg.MailEnabled() {
		log.Println("SMTP not configured, prescription email delivery disabled")
		return nil
	}
	return services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
}
