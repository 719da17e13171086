package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"shopcatalog/internal/config"
	"shopcatalog/internal/db"
	"shopcatalog/internal/handlers"
	"shopcatalog/internal/logger"
	"shopcatalog/internal/store"
	"shopcatalog/internal/uploads"
)

func main() {
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle")
	}
	defer sqlDB.Close()

	files, err := uploads.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir")
	}

	h := handlers.New(store.New(gdb), files, log)

	r := gin.New()
	r.Use(gin.Recovery(), h.RequestLogger())

	// sessions: redis, если задан адрес, иначе cookie
	var sessStore sessions.Store
	if cfg.RedisAddr != "" {
		sessStore, err = redis.NewStore(10, "tcp", cfg.RedisAddr, "", []byte(cfg.SessionSecret))
		if err != nil {
			log.Fatal().Err(err).Msg("redis session store")
		}
	} else {
		sessStore = cookie.NewStore([]byte(cfg.SessionSecret))
	}
	sessStore.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("shop_session", sessStore))

	// раздача загруженных картинок
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	h.Routes(r)

	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
