package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps each collection as an insertion-ordered slice guarded by a
// single lock. It backs local development and tests; restarts lose everything.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]Document),
	}
}

func (s *MemoryStore) Add(_ context.Context, collection string, doc Document, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneDocument(doc)
	if id == "" {
		id = uuid.NewString()
	}
	stored["id"] = id

	docs := s.data[collection]
	for i, existing := range docs {
		if existing["id"] == id {
			docs[i] = stored
			return id, nil
		}
	}
	s.data[collection] = append(docs, stored)
	return id, nil
}

func (s *MemoryStore) List(_ context.Context, collection string, orderField string, descending bool) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.data[collection]))
	for _, doc := range s.data[collection] {
		docs = append(docs, cloneDocument(doc))
	}

	if orderField != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			if descending {
				return lessValue(docs[j][orderField], docs[i][orderField])
			}
			return lessValue(docs[i][orderField], docs[j][orderField])
		})
	}
	return docs, nil
}

func (s *MemoryStore) Get(_ context.Context, collection string, id string) (Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.data[collection] {
		if doc["id"] == id {
			return cloneDocument(doc), true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) Update(_ context.Context, collection string, id string, fields Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.data[collection] {
		if doc["id"] == id {
			for k, v := range fields {
				if k == "id" {
					continue
				}
				doc[k] = v
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Delete(_ context.Context, collection string, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.data[collection]
	for i, doc := range docs {
		if doc["id"] == id {
			s.data[collection] = append(docs[:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// cloneDocument copies nested documents and arrays too, so callers can never
// mutate stored state through a returned document.
func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case Document:
		return cloneDocument(tv)
	case bson.A:
		out := make(bson.A, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), tv...)
	}
	return v
}

// lessValue orders the field types the bson codec produces for our models.
// Unknown or mismatched types compare as equal, which keeps the sort stable.
func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case primitive.DateTime:
		bv, ok := b.(primitive.DateTime)
		return ok && av < bv
	case int32:
		bv, ok := b.(int32)
		return ok && av < bv
	case int64:
		bv, ok := b.(int64)
		return ok && av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	}
	return false
}
