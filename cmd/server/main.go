package main

import (
	"context"
	"log"
	"net/http"

	"github.com/member-portal/app/internal/auth"
	"github.com/member-portal/app/internal/config"
	"github.com/member-portal/app/internal/database"
	"github.com/member-portal/app/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db, err := database.InitDB(context.Background(), cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	renderer, err := handlers.LoadTemplates(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}

	sessions := auth.NewSessionManager(cfg.SessionSecret)
	app := handlers.NewApp(db, sessions, renderer)

	log.Printf("Server starting on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handlers.Routes(app, cfg.StaticDir)); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
