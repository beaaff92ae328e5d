package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	userauth "github.com/veloram/go-userauth"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := userauth.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg userauth.Config) error {
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := userauth.CreateUsersSchema(ctx, db); err != nil {
		return err
	}

	store := userauth.NewUsersRepository(db)
	hasher := userauth.NewBcryptHasher(cfg.BcryptCost, cfg.HashWorkers)
	provider := userauth.NewUserProvider(store, hasher)
	tokens := userauth.NewTokenService(
		[]byte(cfg.SigningSecret),
		time.Duration(cfg.TokenTTLHours)*time.Hour,
		cfg.Issuer,
		nil,
	)
	auther := userauth.NewAuthenticator(provider, tokens)

	app := fiber.New(fiber.Config{
		AppName:               "userauthd",
		DisableStartupMessage: true,
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	guard := userauth.NewTokenGuard(tokens, cfg.ContextKey)

	userauth.RegisterAuthRoutes(app, guard,
		userauth.WithAuthenticator(auther),
		userauth.WithRegisterer(provider),
		userauth.WithIdentityProvider(provider),
		userauth.WithContextKey(cfg.ContextKey),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.ListenAddr)
	}()
	log.Printf("listening on %s", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
		return app.ShutdownWithTimeout(5 * time.Second)
	}
}
