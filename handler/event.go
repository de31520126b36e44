package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"campus-backend/entity"
	"campus-backend/errs"
	"campus-backend/serialize"
	"campus-backend/store"
)

type eventHandler struct {
	s *store.Store
}

func NewEventHandler(s *store.Store) *eventHandler {
	return &eventHandler{s: s}
}

func (h *eventHandler) Register(r *gin.Engine) {
	r.GET("/events", h.List)
	r.POST("/events", h.Create)
	r.PUT("/events/:id", h.Update)
	r.DELETE("/events/:id", h.Delete)
}

// eventRequest is the full event shape. Update takes it whole again:
// events are replaced, never partially patched.
type eventRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   *string   `json:"description"`
	Date          time.Time `json:"date" binding:"required"`
	Location      *string   `json:"location"`
	CreatedByRole string    `json:"created_by_role" binding:"omitempty,oneof=teacher student"`
}

func (r *eventRequest) role() string {
	if r.CreatedByRole == "" {
		return "teacher"
	}
	return r.CreatedByRole
}

type listEventsQuery struct {
	Limit int64 `form:"limit,default=100" binding:"min=1,max=500"`
}

func (h *eventHandler) List(c *gin.Context) {
	var q listEventsQuery
	if !bindQuery(c, &q) {
		return
	}

	docs, err := h.s.Find(c.Request.Context(), store.Events, bson.M{}, "date", true, q.Limit)
	if err != nil {
		writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, serialize.ExternalList(docs))
}

func (h *eventHandler) Create(c *gin.Context) {
	var req eventRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	e := &entity.Event{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date.UTC(),
		Location:      req.Location,
		CreatedByRole: req.role(),
	}
	id, err := h.s.Insert(ctx, store.Events, e)
	if err != nil {
		writeError(c, err, "")
		return
	}

	oid, err := store.DecodeID(id)
	if err != nil {
		writeError(c, err, "")
		return
	}
	doc, err := h.s.FindOne(ctx, store.Events, bson.M{"_id": oid})
	if err != nil {
		writeError(c, err, "Event not found")
		return
	}

	c.JSON(http.StatusOK, serialize.External(doc))
}

func (h *eventHandler) Update(c *gin.Context) {
	oid, err := store.DecodeID(c.Param("id"))
	if err != nil {
		writeError(c, err, "")
		return
	}

	var req eventRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	set := bson.M{
		"title":           req.Title,
		"description":     req.Description,
		"date":            req.Date.UTC(),
		"location":        req.Location,
		"created_by_role": req.role(),
	}
	matched, err := h.s.UpdateOne(ctx, store.Events, bson.M{"_id": oid}, set)
	if err != nil {
		writeError(c, err, "")
		return
	}
	if matched == 0 {
		writeError(c, errs.ErrNotFound, "Event not found")
		return
	}

	doc, err := h.s.FindOne(ctx, store.Events, bson.M{"_id": oid})
	if err != nil {
		writeError(c, err, "Event not found")
		return
	}

	c.JSON(http.StatusOK, serialize.External(doc))
}

func (h *eventHandler) Delete(c *gin.Context) {
	oid, err := store.DecodeID(c.Param("id"))
	if err != nil {
		writeError(c, err, "")
		return
	}

	deleted, err := h.s.DeleteOne(c.Request.Context(), store.Events, bson.M{"_id": oid})
	if err != nil {
		writeError(c, err, "")
		return
	}
	if deleted == 0 {
		writeError(c, errs.ErrNotFound, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
