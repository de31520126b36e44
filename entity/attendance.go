package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceRecord is one marking action for one student on one day.
// Collection: "attendancerecord". Append-only; the same (roll, date)
// pair may be marked more than once and every record counts.
type AttendanceRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Roll           string             `bson:"roll" json:"roll"`
	AttendanceDate time.Time          `bson:"attendance_date" json:"attendance_date" jsonschema:"format=date"`
	Status         string             `bson:"status" json:"status" jsonschema:"enum=present,enum=absent"`
	MarkedByRole   string             `bson:"marked_by_role" json:"marked_by_role" jsonschema:"enum=teacher"`
}

func (r *AttendanceRecord) SetID(id primitive.ObjectID) { r.ID = id }

// AttendanceOverride is a teacher-asserted percentage that supersedes
// the computed one. Collection: "attendanceoverride". Roll is the
// upsert key, at most one override per roll.
type AttendanceOverride struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Roll             string             `bson:"roll" json:"roll"`
	ManualPercentage float64            `bson:"manual_percentage" json:"manual_percentage" jsonschema:"minimum=0,maximum=100"`
}

func (o *AttendanceOverride) SetID(id primitive.ObjectID) { o.ID = id }
