package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/folletto/vault/internal/config"
	"github.com/folletto/vault/internal/logger"
	"github.com/folletto/vault/internal/network/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	logToFile := flag.Bool("logfile", false, "log to ~/.folletto-vault/server.log instead of stderr")
	flag.Parse()

	if *logToFile {
		if err := logger.Init(); err != nil {
			log.Printf("file logging unavailable: %v", err)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("failed to load config, falling back to defaults: %v", err)
		cfg = config.Default()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down server...")
		srv.Shutdown()
		logger.Close()
		os.Exit(0)
	}()

	log.Println("🎲 Folletto's Vault server starting...")
	if err := srv.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
