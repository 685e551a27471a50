package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/peepapp/chitter/internal/config"
	"github.com/peepapp/chitter/internal/database"
	postgresrepo "github.com/peepapp/chitter/internal/repository/postgres"
	"github.com/peepapp/chitter/internal/service"
	"github.com/peepapp/chitter/internal/transport/http/handlers"
	"github.com/peepapp/chitter/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(cfg); err != nil {
		log.Fatal(err)
	}

	// Templates
	if err := handlers.LoadTemplates(cfg.TemplatesDir); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	peepRepo := postgresrepo.NewPeepRepo(pool)
	tagRepo := postgresrepo.NewTagRepo(pool)
	sessionRepo := postgresrepo.NewSessionRepo(pool)

	// Services
	userService := service.NewUserService(userRepo)
	peepService := service.NewPeepService(peepRepo)
	tagService := service.NewTagService(tagRepo, userService)

	// Sessions
	sessions := middleware.NewSessionManager(sessionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, sessions)
	peepHandler := handlers.NewPeepHandler(peepService, tagService, sessions)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", peepHandler.Home)
	mux.HandleFunc("GET /peeps", peepHandler.List)
	mux.Handle("GET /peeps/new", sessions.RequireLogin(http.HandlerFunc(peepHandler.NewForm)))
	mux.Handle("POST /peeps", sessions.RequireLogin(http.HandlerFunc(peepHandler.Create)))
	mux.Handle("GET /peeps/{id}", sessions.RequireLogin(http.HandlerFunc(peepHandler.Show)))

	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
