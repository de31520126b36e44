package handler

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"campus-backend/entity"
	"campus-backend/errs"
	"campus-backend/serialize"
	"campus-backend/store"
)

const dateLayout = "2006-01-02"

type attendanceHandler struct {
	s *store.Store
}

func NewAttendanceHandler(s *store.Store) *attendanceHandler {
	return &attendanceHandler{s: s}
}

func (h *attendanceHandler) Register(r *gin.Engine) {
	r.POST("/attendance/mark", h.Mark)
	r.GET("/attendance/recent", h.Recent)
	r.POST("/attendance/manual-percentage", h.SetManualPercentage)
	r.GET("/attendance/summary", h.Summary)
}

type markEntry struct {
	Roll   string `json:"roll" binding:"required"`
	Status string `json:"status" binding:"required,oneof=present absent"`
}

type markRequest struct {
	Date    string      `json:"date" binding:"required,datetime=2006-01-02"`
	Entries []markEntry `json:"entries" binding:"required,dive"`
}

// Mark inserts one record per entry. Inserts are sequential and not
// transactional: a failure at entry K leaves entries before it
// persisted and surfaces the error.
func (h *attendanceHandler) Mark(c *gin.Context) {
	var req markRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.Entries) == 0 {
		writeError(c, errs.ErrEmptyBatch, "")
		return
	}

	day, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		writeBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	ids := make([]string, 0, len(req.Entries))
	for _, e := range req.Entries {
		rec := &entity.AttendanceRecord{
			Roll:           e.Roll,
			AttendanceDate: day,
			Status:         e.Status,
			MarkedByRole:   "teacher",
		}
		id, err := h.s.Insert(ctx, store.AttendanceRecords, rec)
		if err != nil {
			writeError(c, err, "")
			return
		}
		ids = append(ids, id)
	}

	c.JSON(http.StatusOK, gin.H{"inserted": len(ids), "ids": ids})
}

type recentQuery struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=200"`
}

func (h *attendanceHandler) Recent(c *gin.Context) {
	var q recentQuery
	if !bindQuery(c, &q) {
		return
	}

	docs, err := h.s.Find(c.Request.Context(), store.AttendanceRecords, bson.M{}, "attendance_date", false, q.Limit)
	if err != nil {
		writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, serialize.ExternalList(docs))
}

type manualPercentageRequest struct {
	Roll             string   `json:"roll" binding:"required"`
	ManualPercentage *float64 `json:"manual_percentage" binding:"required,min=0,max=100"`
}

// SetManualPercentage upserts the override keyed by roll. Same
// find-then-insert race as demo login; roll has no unique index.
func (h *attendanceHandler) SetManualPercentage(c *gin.Context) {
	var req manualPercentageRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	existing, err := h.s.FindOne(ctx, store.AttendanceOverrides, bson.M{"roll": req.Roll})
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		writeError(c, err, "")
		return
	}

	var filter bson.M
	if existing != nil {
		set := bson.M{"roll": req.Roll, "manual_percentage": *req.ManualPercentage}
		if _, err := h.s.UpdateOne(ctx, store.AttendanceOverrides, bson.M{"_id": existing["_id"]}, set); err != nil {
			writeError(c, err, "")
			return
		}
		filter = bson.M{"_id": existing["_id"]}
	} else {
		o := &entity.AttendanceOverride{Roll: req.Roll, ManualPercentage: *req.ManualPercentage}
		id, err := h.s.Insert(ctx, store.AttendanceOverrides, o)
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

	doc, err := h.s.FindOne(ctx, store.AttendanceOverrides, filter)
	if err != nil {
		writeError(c, err, "Override not found")
		return
	}

	c.JSON(http.StatusOK, serialize.External(doc))
}

type summaryQuery struct {
	Roll string `form:"roll" binding:"required"`
}

// Summary counts present and absent records for the roll. A numeric
// override replaces the computed ratio; the result is rounded to two
// decimal places either way.
func (h *attendanceHandler) Summary(c *gin.Context) {
	var q summaryQuery
	if !bindQuery(c, &q) {
		return
	}
	ctx := c.Request.Context()

	present, err := h.s.Count(ctx, store.AttendanceRecords, bson.M{"roll": q.Roll, "status": entity.StatusPresent})
	if err != nil {
		writeError(c, err, "")
		return
	}
	absent, err := h.s.Count(ctx, store.AttendanceRecords, bson.M{"roll": q.Roll, "status": entity.StatusAbsent})
	if err != nil {
		writeError(c, err, "")
		return
	}

	percentage := 0.0
	if total := present + absent; total > 0 {
		percentage = float64(present) / float64(total) * 100.0
	}

	override, err := h.s.FindOne(ctx, store.AttendanceOverrides, bson.M{"roll": q.Roll})
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		writeError(c, err, "")
		return
	}
	if override != nil {
		if v, ok := numeric(override["manual_percentage"]); ok {
			percentage = v
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"roll":        q.Roll,
		"presentDays": present,
		"absentDays":  absent,
		"percentage":  math.Round(percentage*100) / 100,
	})
}

func numeric(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
