package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"campus-backend/entity"
	"campus-backend/store"
)

type metaHandler struct {
	s *store.Store
}

func NewMetaHandler(s *store.Store) *metaHandler {
	return &metaHandler{s: s}
}

func (h *metaHandler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/schema", h.Schema)
}

func (h *metaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Campus Portal API running"})
}

// TestDatabase probes store connectivity for the viewer tools. Always
// answers 200; every failure is reported inside the body instead.
func (h *metaHandler) TestDatabase(c *gin.Context) {
	res := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.s.Connected() {
		res["database"] = "✅ Available"
		res["connection_status"] = "Connected"

		if names, err := h.s.ListCollectionNames(c.Request.Context()); err != nil {
			res["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			res["collections"] = names
			res["database"] = "✅ Connected & Working"
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		res["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		res["database_name"] = "✅ Set"
	}

	c.JSON(http.StatusOK, res)
}

func (h *metaHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, entity.Schemas())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
