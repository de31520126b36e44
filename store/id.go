package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-backend/errs"
)

// DecodeID converts an external id string into the store's native
// ObjectID. Malformed input (wrong length or charset) yields
// errs.ErrInvalidID with no further detail.
func DecodeID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidID
	}

	return oid, nil
}
