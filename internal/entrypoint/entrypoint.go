package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/config"
	"github.com/mrlokans/scripture/internal/database"
	"github.com/mrlokans/scripture/internal/database/translations"
	"github.com/mrlokans/scripture/internal/database/verses"
	http_controllers "github.com/mrlokans/scripture/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM with a bounded drain window.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Scripture API v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	catalog := books.NewCatalog()
	translationRepo := translations.NewRepository(db.DB)
	verseRepo := verses.NewRepository(db.DB)

	if available, err := translationRepo.GetAll(); err == nil && len(available) == 0 {
		log.Printf("WARNING: No translations found in %s. Run '%s import' or '%s seed-demo' first.",
			cfg.Database.Path, os.Args[0], os.Args[0])
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:        db,
		Catalog:         catalog,
		Translations:    translationRepo,
		Verses:          verseRepo,
		DefaultLanguage: cfg.API.DefaultLanguage,
		Version:         version,
	})

	Serve(router, cfg)
}
