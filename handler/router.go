package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-backend/httpmiddleware"
	"campus-backend/store"
)

// NewRouter assembles the full HTTP surface over the given store.
func NewRouter(s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestID())
	r.Use(httpmiddleware.CORS())
	r.Use(httpmiddleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	NewMetaHandler(s).Register(r)
	NewAuthHandler(s).Register(r)
	NewUserHandler(s).Register(r)
	NewEventHandler(s).Register(r)
	NewAttendanceHandler(s).Register(r)

	return r
}
