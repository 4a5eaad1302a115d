package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"oushodcloud-web/store"
)

// toDocument round-trips a model through the bson codec so the store only
// ever sees schema-flexible documents.
func toDocument(v interface{}) (store.Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var doc store.Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

func fromDocument(doc store.Document, v interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
