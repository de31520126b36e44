// Package serialize converts stored documents into JSON-safe shapes.
package serialize

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// External renames the store-internal "_id" to an external string "id"
// and converts every date/time valued field to its ISO-8601 string
// form. It is idempotent: applying it to its own output changes
// nothing. Every response path runs documents through here, including
// echoes of just-written documents.
func External(doc bson.M) map[string]interface{} {
	if doc == nil {
		return nil
	}

	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = value(v)
	}
	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = id
	}

	return out
}

// ExternalList applies External to each document, preserving order.
func ExternalList(docs []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, External(d))
	}

	return out
}

func value(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return v
	}
}
