package main

import (
	"authportal/internal/config"
	"authportal/internal/logger"
	"authportal/internal/mongo"
	"authportal/internal/mysql"
	"authportal/internal/routing"
	"authportal/pkg/middleware"
	"authportal/pkg/session"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load() // load env var from .env

	db := mysql.LoadDB(cfg.MySQLDSN)
	defer db.Close()

	mongoDB := mongo.LoadDB(cfg.MongoURI, cfg.MongoDBName)

	logger := logger.Load()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic)
	api.Use(middleware.CheckSession(session.NewManager(session.NewMySQLRepo(db)), logger))

	routing.InitRoutes(api, db, mongoDB, cfg, logger)
	routing.ServeStaticFiles(r)
	routing.ServeFallback(r, logger)
	routing.StartServer(r, cfg.Addr)
}
