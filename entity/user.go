package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampusUser is a portal user created through demo login.
// Collection: "campususer". Email is the upsert key.
type CampusUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role      string             `bson:"role" json:"role" jsonschema:"enum=student,enum=teacher"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email" jsonschema:"format=email"`
	Mobile    *string            `bson:"mobile" json:"mobile,omitempty"`
	Roll      *string            `bson:"roll" json:"roll,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (u *CampusUser) SetID(id primitive.ObjectID) { u.ID = id }

func (u *CampusUser) Stamp(now time.Time) { u.UpdatedAt = now }
