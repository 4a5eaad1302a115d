// Package store provides generic document operations over named collections,
// backed either by MongoDB or by a process-local in-memory list. Documents are
// schema-flexible; validation happens one layer up, in the flow services.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a schema-flexible record. Documents returned by a Store carry
// their id under the "id" key.
type Document = bson.M

type Store interface {
	// Add persists doc. An empty id lets the store assign one; an explicit id
	// creates or silently overwrites the document at that id.
	Add(ctx context.Context, collection string, doc Document, id string) (string, error)

	// List returns every document in the collection. When orderField is
	// non-empty the result is ordered by that field, descending unless
	// ascending is requested; otherwise the backend's default order applies.
	List(ctx context.Context, collection string, orderField string, descending bool) ([]Document, error)

	// Get returns the document and true, or found=false for a missing id.
	// A missing id is never an error.
	Get(ctx context.Context, collection string, id string) (Document, bool, error)

	// Update merges fields into the existing document. It reports false when
	// the id does not exist.
	Update(ctx context.Context, collection string, id string, fields Document) (bool, error)

	// Delete removes the document, reporting false when the id does not exist.
	Delete(ctx context.Context, collection string, id string) (bool, error)
}
