package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/nwpolishing/backend/internal/config"
	"github.com/nwpolishing/backend/internal/database"
	"github.com/nwpolishing/backend/internal/operators"
	"github.com/nwpolishing/backend/internal/settings"
)

// seed bootstraps a fresh deployment: it creates (or updates) the first
// operator account and writes the default site settings document when none
// exists yet. Safe to run repeatedly.
func main() {
	email := flag.String("email", os.Getenv("SEED_OPERATOR_EMAIL"), "operator email")
	name := flag.String("name", os.Getenv("SEED_OPERATOR_NAME"), "operator display name")
	password := flag.String("password", os.Getenv("SEED_OPERATOR_PASSWORD"), "operator password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required (flags or SEED_OPERATOR_* env)")
	}
	if *name == "" {
		*name = *email
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	opSvc := operators.NewService(operators.NewMongoRepository(db.Collection("operators")))
	op, err := opSvc.CreateOrUpdate(ctx, *email, *name, *password)
	if err != nil {
		log.Fatalf("operator upsert: %v", err)
	}
	log.Printf("operator %s (%s) ready", op.Email, op.ID)

	settingsRepo := settings.NewMongoRepository(db.Collection("siteSettings"))
	s, err := settingsRepo.Get(ctx)
	if err != nil {
		log.Fatalf("settings read: %v", err)
	}
	// Get falls back to defaults when the document is missing; persist them so
	// operators have something to edit.
	if s.ID == "" {
		if err := settingsRepo.Save(ctx, s); err != nil {
			log.Fatalf("settings write: %v", err)
		}
		log.Printf("default site settings written")
	} else {
		log.Printf("site settings already present, leaving unchanged")
	}
}
