package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"campus-backend/entity"
	"campus-backend/errs"
	"campus-backend/serialize"
	"campus-backend/store"
)

type authHandler struct {
	s *store.Store
}

func NewAuthHandler(s *store.Store) *authHandler {
	return &authHandler{s: s}
}

func (h *authHandler) Register(r *gin.Engine) {
	r.POST("/auth/demo-login", h.DemoLogin)
}

type demoLoginRequest struct {
	Role   string  `json:"role" binding:"required,oneof=student teacher"`
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Mobile *string `json:"mobile"`
	Roll   *string `json:"roll"`
}

// DemoLogin upserts a user by email and returns the stored record.
// Sequential calls converge to one record per email; two concurrent
// first-time logins can both miss the lookup and insert twice, since
// email carries no unique index. Inherited behavior.
func (h *authHandler) DemoLogin(c *gin.Context) {
	var req demoLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	existing, err := h.s.FindOne(ctx, store.CampusUsers, bson.M{"email": req.Email})
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		writeError(c, err, "")
		return
	}

	var filter bson.M
	if existing != nil {
		// Full replace of the supplied fields plus the upsert timestamp.
		set := bson.M{
			"role":       req.Role,
			"name":       req.Name,
			"email":      req.Email,
			"mobile":     req.Mobile,
			"roll":       req.Roll,
			"updated_at": time.Now().UTC(),
		}
		if _, err := h.s.UpdateOne(ctx, store.CampusUsers, bson.M{"_id": existing["_id"]}, set); err != nil {
			writeError(c, err, "")
			return
		}
		filter = bson.M{"_id": existing["_id"]}
	} else {
		u := &entity.CampusUser{
			Role:   req.Role,
			Name:   req.Name,
			Email:  req.Email,
			Mobile: req.Mobile,
			Roll:   req.Roll,
		}
		id, err := h.s.Insert(ctx, store.CampusUsers, u)
		if err != nil {
			writeError(c, err, "")
			return
		}
		oid, err := store.DecodeID(id)
		if err != nil {
			writeError(c, err, "")
			return
		}
		filter = bson.M{"_id": oid}
	}

	user, err := h.s.FindOne(ctx, store.CampusUsers, filter)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, serialize.External(user))
}
