package repository

import (
	"context"

	"oushodcloud-web/models"
	"oushodcloud-web/store"
)

const demoRequestsCollection = "demoRequests"

type DemoRequestRepository struct {
	store store.Store
}

func NewDemoRequestRepository(s store.Store) *DemoRequestRepository {
	return &DemoRequestRepository{store: s}
}

func (r *DemoRequestRepository) Insert(ctx context.Context, request models.DemoRequest) (string, error) {
	doc, err := toDocument(request)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, demoRequestsCollection, doc, "")
}

// FindAll returns all demo requests newest first.
func (r *DemoRequestRepository) FindAll(ctx context.Context) ([]models.DemoRequest, error) {
	docs, err := r.store.List(ctx, demoRequestsCollection, "created_at", true)
	if err != nil {
		return nil, err
	}
	requests := make([]models.DemoRequest, 0, len(docs))
	for _, doc := range docs {
		var request models.DemoRequest
		if err := fromDocument(doc, &request); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (r *DemoRequestRepository) UpdateStatus(ctx context.Context, id string, status string) (bool, error) {
	return r.store.Update(ctx, demoRequestsCollection, id, store.Document{"status": status})
}
