package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "backend-scaffold/docs"
	httpadp "backend-scaffold/internal/adapter/http"
	pgrepo "backend-scaffold/internal/adapter/repository/postgres"
	"backend-scaffold/internal/config"
	"backend-scaffold/internal/infrastructure/cache"
	"backend-scaffold/internal/infrastructure/db"
	probeuc "backend-scaffold/internal/usecase/probe"
)

// @title        Backend Scaffold API
// @version      1.0.0
// @description  Minimal backend scaffold: health check, system info, connectivity probes and generated API documentation.
// @contact.name API Support
// @contact.url  https://github.com/backend-scaffold
// @license.name MIT
// @license.url  https://opensource.org/licenses/MIT
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Open fails only on config-level problems (bad driver, malformed DSN).
	// Reachability is surfaced per request by /db-test.
	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb := cache.New(cfg.RedisAddr, cfg.RedisDB)
	defer rdb.Close()

	h := httpadp.NewHandler(cfg, time.Now())
	uc := probeuc.NewUsecase(pgrepo.NewProbeRepository(gdb), probeuc.DatabaseLabel(cfg.DBDriver))
	ph := httpadp.NewProbeHandler(uc, rdb)

	e := echo.New()
	e.HideBanner = true
	httpadp.RegisterRoutes(e, h, ph)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.AppEnv)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
