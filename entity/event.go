package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a campus event, visible to everyone.
// Collection: "event".
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   *string            `bson:"description" json:"description,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	Location      *string            `bson:"location" json:"location,omitempty"`
	CreatedByRole string             `bson:"created_by_role" json:"created_by_role" jsonschema:"enum=teacher,enum=student,default=teacher"`
}

func (e *Event) SetID(id primitive.ObjectID) { e.ID = id }
