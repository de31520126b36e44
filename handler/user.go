package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"campus-backend/errs"
	"campus-backend/serialize"
	"campus-backend/store"
)

type userHandler struct {
	s *store.Store
}

func NewUserHandler(s *store.Store) *userHandler {
	return &userHandler{s: s}
}

func (h *userHandler) Register(r *gin.Engine) {
	r.PUT("/users/:id", h.Update)
}

type updateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Mobile *string `json:"mobile"`
	Roll   *string `json:"roll"`
}

// Update field-patches the named fields plus the update timestamp.
// An empty field subset acknowledges without touching the store.
func (h *userHandler) Update(c *gin.Context) {
	oid, err := store.DecodeID(c.Param("id"))
	if err != nil {
		writeError(c, err, "")
		return
	}

	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Mobile != nil {
		set["mobile"] = *req.Mobile
	}
	if req.Roll != nil {
		set["roll"] = *req.Roll
	}
	if len(set) == 0 {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}
	set["updated_at"] = time.Now().UTC()

	ctx := c.Request.Context()
	matched, err := h.s.UpdateOne(ctx, store.CampusUsers, bson.M{"_id": oid}, set)
	if err != nil {
		writeError(c, err, "")
		return
	}
	if matched == 0 {
		writeError(c, errs.ErrNotFound, "User not found")
		return
	}

	user, err := h.s.FindOne(ctx, store.CampusUsers, bson.M{"_id": oid})
	if err != nil {
		writeError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, serialize.External(user))
}
