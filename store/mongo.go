package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore maps the accessor contract onto mongo collections. Store-assigned
// ids are ObjectID hex strings; explicit ids are stored as string _id values
// and upserted, matching the create-or-overwrite contract.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Add(ctx context.Context, collection string, doc Document, id string) (string, error) {
	coll := s.db.Collection(collection)
	doc = withoutID(doc)

	if id == "" {
		result, err := coll.InsertOne(ctx, doc)
		if err != nil {
			return "", fmt.Errorf("failed to insert document into %s: %w", collection, err)
		}
		oid, ok := result.InsertedID.(primitive.ObjectID)
		if !ok {
			return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
		}
		return oid.Hex(), nil
	}

	// The filter must be an exact _id equality: an upsert only adopts the
	// supplied id from an equality condition, never from $in.
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": storageID(id)}, doc, opts); err != nil {
		return "", fmt.Errorf("failed to write document %s in %s: %w", id, collection, err)
	}
	return id, nil
}

func (s *MongoStore) List(ctx context.Context, collection string, orderField string, descending bool) ([]Document, error) {
	opts := options.Find()
	if orderField != "" {
		direction := 1
		if descending {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: orderField, Value: direction}})
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []Document
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode documents in %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, doc := range raw {
		docs = append(docs, annotateID(doc))
	}
	return docs, nil
}

func (s *MongoStore) Get(ctx context.Context, collection string, id string) (Document, bool, error) {
	var doc Document
	err := s.db.Collection(collection).FindOne(ctx, idFilter(id)).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get document %s in %s: %w", id, collection, err)
	}
	return annotateID(doc), true, nil
}

func (s *MongoStore) Update(ctx context.Context, collection string, id string, fields Document) (bool, error) {
	result, err := s.db.Collection(collection).UpdateOne(ctx, idFilter(id), bson.M{"$set": withoutID(fields)})
	if err != nil {
		return false, fmt.Errorf("failed to update document %s in %s: %w", id, collection, err)
	}
	return result.MatchedCount > 0, nil
}

func (s *MongoStore) Delete(ctx context.Context, collection string, id string) (bool, error) {
	result, err := s.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	if err != nil {
		return false, fmt.Errorf("failed to delete document %s in %s: %w", id, collection, err)
	}
	return result.DeletedCount > 0, nil
}

// storageID is the canonical stored _id form: ObjectID-shaped ids are stored
// as ObjectIDs, everything else as plain strings. Writing the hex form of a
// store-assigned id therefore lands on the same document.
func storageID(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

// idFilter matches both id forms on reads: ObjectID hex for store-assigned
// ids and plain strings for explicit ids written before storageID
// canonicalized them.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

func annotateID(doc Document) Document {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		doc["id"] = v.Hex()
	case string:
		doc["id"] = v
	}
	delete(doc, "_id")
	return doc
}

func withoutID(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
