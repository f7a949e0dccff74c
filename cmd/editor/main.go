package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sakatsuku04/internal/adapters/bridge"
	"sakatsuku04/internal/adapters/web"
	"sakatsuku04/internal/application"
	"sakatsuku04/internal/config"
	"sakatsuku04/internal/infrastructure/i18n"
	"sakatsuku04/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ configuration: %v", err)
	}

	localeFS := i18n.LocaleFS()
	if cfg.LocaleDir != "" {
		localeFS = os.DirFS(cfg.LocaleDir)
	}
	catalog, err := i18n.LoadCatalog(localeFS)
	if err != nil {
		log.Fatalf("❌ locale tables: %v", err)
	}
	translator := i18n.NewTranslator(cfg.DefaultLocale, localeFS)
	resolver := application.NewResolver(catalog, cfg.DefaultLocale)
	log.Printf("✅ %d lookup categories loaded, language %s", len(resolver.Categories()), resolver.Language())

	var opts []application.StoreOption
	if cfg.StrictModes {
		opts = append(opts, application.WithTransitionGuard())
	}
	store := application.NewStore(opts...)

	var backend output.Bridge
	if cfg.Offline {
		mem := bridge.NewMemoryBridge()
		bridge.NewDemoBackend().Register(mem)
		backend = mem
		log.Println("⚠️ offline mode: serving the demo save")
	} else {
		backend = bridge.NewHTTPBridge(cfg.BackendURL, cfg.BackendTimeout)
	}
	loader := application.NewLoader(backend, store)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	web.NewHandler(resolver, store, loader, translator).RegisterRoutes(e)

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ server: %v", err)
		}
	}()
	log.Printf("✅ editor listening on %s", cfg.ListenAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ shutdown: %v", err)
		os.Exit(1)
	}
}
