package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo persists documents in MongoDB. The Firestore-style hierarchical path
// is flattened to one collection per entity with a "tenant" scope field:
// "tenants/acme/products" addresses collection "products" filtered by
// tenant == "acme". Document ids are stored as string _id values.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

var _ Store = (*Mongo)(nil)

const scopeField = "tenant"

func (s *Mongo) Now() int64 { return time.Now().Unix() }

func (s *Mongo) NewID() string { return primitive.NewObjectID().Hex() }

// resolve splits a path into collection handle and tenant scope filter.
func (s *Mongo) resolve(path string) (*mongo.Collection, bson.M, string) {
	parts := strings.Split(path, "/")
	if len(parts) == 3 {
		return s.db.Collection(parts[2]), bson.M{scopeField: parts[1]}, parts[1]
	}
	return s.db.Collection(parts[0]), bson.M{}, ""
}

func (s *Mongo) List(ctx context.Context, path string) ([]Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	coll, filter, _ := s.resolve(path)
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Doc
	for cursor.Next(ctx) {
		var data map[string]any
		if err := cursor.Decode(&data); err != nil {
			return nil, err
		}
		docs = append(docs, decodeDoc(data))
	}
	return docs, cursor.Err()
}

func (s *Mongo) Get(ctx context.Context, path, id string) (Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	coll, filter, _ := s.resolve(path)
	filter["_id"] = id

	var data map[string]any
	if err := coll.FindOne(ctx, filter).Decode(&data); err != nil {
		if err == mongo.ErrNoDocuments {
			return Doc{}, ErrNotFound
		}
		return Doc{}, err
	}
	return decodeDoc(data), nil
}

func (s *Mongo) FindByField(ctx context.Context, path, field string, value any) ([]Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coll, filter, _ := s.resolve(path)
	filter[field] = value
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Doc
	for cursor.Next(ctx) {
		var data map[string]any
		if err := cursor.Decode(&data); err != nil {
			return nil, err
		}
		docs = append(docs, decodeDoc(data))
	}
	return docs, cursor.Err()
}

func (s *Mongo) Add(ctx context.Context, path string, data map[string]any) (string, error) {
	id := s.NewID()
	if err := s.Set(ctx, path, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Mongo) Set(ctx context.Context, path, id string, data map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coll, _, tenant := s.resolve(path)
	doc := encodeDoc(data, id, tenant)
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *Mongo) Update(ctx context.Context, path, id string, patch map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coll, filter, _ := s.resolve(path)
	filter["_id"] = id
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateIfExists is the existence-re-check write used by reconciliation: a
// missing document is a silent no-op, never an error. Matching on _id makes
// the single UpdateOne the atomic check-and-patch.
func (s *Mongo) UpdateIfExists(ctx context.Context, path, id string, patch map[string]any) error {
	err := s.Update(ctx, path, id, patch)
	if err == ErrNotFound {
		return nil
	}
	return err
}

func (s *Mongo) Delete(ctx context.Context, path, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coll, filter, _ := s.resolve(path)
	filter["_id"] = id
	_, err := coll.DeleteOne(ctx, filter)
	return err
}

// Batch commits mixed creates and updates in one transaction so the bulk
// product upsert is all-or-nothing.
func (s *Mongo) Batch(ctx context.Context, path string, ops []BatchOp) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	coll, _, tenant := s.resolve(path)

	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		for _, op := range ops {
			switch op.Kind {
			case BatchCreate:
				if _, err := coll.InsertOne(sc, encodeDoc(op.Data, op.ID, tenant)); err != nil {
					return nil, err
				}
			case BatchUpdate:
				result, err := coll.UpdateOne(sc, bson.M{"_id": op.ID}, bson.M{"$set": bson.M(op.Data)})
				if err != nil {
					return nil, err
				}
				if result.MatchedCount == 0 {
					return nil, fmt.Errorf("batch: %w: %s", ErrNotFound, op.ID)
				}
			}
		}
		return nil, nil
	})
	return err
}

func encodeDoc(data map[string]any, id, tenant string) bson.M {
	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	doc["_id"] = id
	if tenant != "" {
		doc[scopeField] = tenant
	}
	return doc
}

func decodeDoc(data map[string]any) Doc {
	id, _ := data["_id"].(string)
	delete(data, "_id")
	delete(data, scopeField)
	return Doc{ID: id, Data: normalizeBSON(data).(map[string]any)}
}

// normalizeBSON flattens driver-specific slice/map types so documents look
// exactly like decoded JSON to the schema layer.
func normalizeBSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeBSON(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeBSON(item)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeBSON(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeBSON(item)
		}
		return out
	case int32:
		return int64(t)
	default:
		return v
	}
}
