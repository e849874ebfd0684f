package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctors-portal/doctors-portal-api/internal/config"
	"github.com/doctors-portal/doctors-portal-api/internal/handlers"
	"github.com/doctors-portal/doctors-portal-api/internal/middleware"
	"github.com/doctors-portal/doctors-portal-api/internal/services"
	"github.com/doctors-portal/doctors-portal-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET; all requests will run as anonymous.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	// --- Initialize Services ---
	st := store.New(db)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	paymentSvc := services.NewPaymentService(cfg.StripeSecretKey)
	h := handlers.NewHandler(st, paymentSvc, cfg.JWTSecret)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	identify := middleware.Identify(cfg.JWTSecret)
	limiter := middleware.NewRateLimiter(5, 10)

	// --- Routes ---
	authRoutes := r.Group("/auth")
	authRoutes.Use(middleware.RateLimit(limiter))
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	r.GET("/appointments", identify, h.GetAppointments)
	r.GET("/appointments/:id", h.GetAppointment)
	r.POST("/appointments", h.CreateAppointment)
	r.PUT("/appointments/:id", h.AttachPayment)

	r.GET("/users/:email", h.GetAdminStatus)
	r.POST("/users", h.CreateUser)
	r.PUT("/users", h.UpsertUser)
	r.PUT("/users/admin", identify, h.MakeAdmin)

	r.GET("/doctors", h.GetDoctors)
	r.POST("/doctors", h.CreateDoctor)

	r.POST("/create-payment-intent", h.CreatePaymentIntent)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors Portal server is running")
	})

	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
