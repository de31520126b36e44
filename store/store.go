package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus-backend/errs"
)

// Collection names. The original schema maps each record shape to the
// lowercase collection of the same name.
const (
	CampusUsers         = "campususer"
	Events              = "event"
	AttendanceRecords   = "attendancerecord"
	AttendanceOverrides = "attendanceoverride"
)

type identifiable interface {
	SetID(primitive.ObjectID)
}

type timestamped interface {
	Stamp(time.Time)
}

// Store owns the single Mongo connection for the process. A Store built
// from a nil client is valid: every operation returns
// errs.ErrStoreUnavailable, which handlers surface as 503.
type Store struct {
	db   *mongo.Database
	name string
}

func New(client *mongo.Client, name string) *Store {
	s := &Store{name: name}
	if client != nil {
		s.db = client.Database(name)
	}
	return s
}

func (s *Store) Connected() bool { return s.db != nil }

func (s *Store) Name() string { return s.name }

// Insert writes doc into the named collection with a freshly generated
// ObjectID, stamping update timestamps when the shape defines them.
// Returns the new id in its external hex form.
func (s *Store) Insert(ctx context.Context, coll string, doc any) (string, error) {
	if s.db == nil {
		return "", errs.ErrStoreUnavailable
	}

	id := primitive.NewObjectID()
	if v, ok := doc.(identifiable); ok {
		v.SetID(id)
	}
	if v, ok := doc.(timestamped); ok {
		v.Stamp(time.Now().UTC())
	}

	if _, err := s.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		return "", err
	}

	return id.Hex(), nil
}

// FindOne returns the first document matching filter, or
// errs.ErrNotFound when nothing matches.
func (s *Store) FindOne(ctx context.Context, coll string, filter bson.M) (bson.M, error) {
	if s.db == nil {
		return nil, errs.ErrStoreUnavailable
	}

	doc := bson.M{}
	err := s.db.Collection(coll).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return doc, nil
}

// Find returns up to limit documents matching filter, sorted on
// sortField (ascending when asc, else descending).
func (s *Store) Find(ctx context.Context, coll string, filter bson.M, sortField string, asc bool, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, errs.ErrStoreUnavailable
	}

	order := 1
	if !asc {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: order}}).SetLimit(limit)

	cursor, err := s.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	docs := []bson.M{}
	for cursor.Next(ctx) {
		doc := bson.M{}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *Store) Count(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, errs.ErrStoreUnavailable
	}

	return s.db.Collection(coll).CountDocuments(ctx, filter)
}

// UpdateOne applies $set semantics: only the named fields change.
// Returns the matched count so callers can branch on "not found".
func (s *Store) UpdateOne(ctx context.Context, coll string, filter, set bson.M) (int64, error) {
	if s.db == nil {
		return 0, errs.ErrStoreUnavailable
	}

	res, err := s.db.Collection(coll).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}

	return res.MatchedCount, nil
}

// DeleteOne removes the first document matching filter and returns the
// deleted count.
func (s *Store) DeleteOne(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, errs.ErrStoreUnavailable
	}

	res, err := s.db.Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, errs.ErrStoreUnavailable
	}

	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return errs.ErrStoreUnavailable
	}

	return s.db.Client().Ping(ctx, nil)
}
