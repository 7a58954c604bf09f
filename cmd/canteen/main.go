package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/AlenaMolokova/canteen/internal/config"
	"github.com/AlenaMolokova/canteen/internal/router"
	"github.com/AlenaMolokova/canteen/internal/storage"
	"github.com/AlenaMolokova/canteen/internal/web"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func applyMigrations(databaseURI, migrationsDir string) error {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsDir,
		"postgres",
		driver,
	)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	log.Println("Database migrations applied successfully")
	return nil
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := applyMigrations(cfg.DatabaseURI, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	db, err := pgxpool.New(context.Background(), cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store, err := storage.NewStorage(db)
	if err != nil {
		log.Fatalf("Failed to create storage: %v", err)
	}

	templates, err := web.NewTemplates(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	r := router.SetupRoutes(store, templates, cfg.StaticDir)

	log.Printf("Starting canteen server on %s", cfg.RunAddr)
	if err := http.ListenAndServe(cfg.RunAddr, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
