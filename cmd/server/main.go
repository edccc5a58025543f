package main

import (
	"flag"

	httpapi "cuarenta/internal/api/http"
	"cuarenta/internal/api/ws"
	"cuarenta/internal/config"
	"cuarenta/internal/logger"
	"cuarenta/internal/registry"
	"cuarenta/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gin.SetMode(cfg.Server.Mode)

	reg := registry.New(log)
	sess := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	hub := ws.NewHub(reg, log)
	r := httpapi.NewRouter(reg, sess, hub, log)

	log.Info("listening", zap.String("addr", cfg.Server.Addr()))
	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
