package repository

import (
	"context"

	"oushodcloud-web/models"
	"oushodcloud-web/store"
)

const ordersCollection = "orders"

// OrderRepository gives the order flow a typed view over the generic store.
type OrderRepository struct {
	store store.Store
}

func NewOrderRepository(s store.Store) *OrderRepository {
	return &OrderRepository{store: s}
}

func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (string, error) {
	doc, err := toDocument(order)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, ordersCollection, doc, "")
}

// FindAll returns all orders newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	docs, err := r.store.List(ctx, ordersCollection, "created_at", true)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		var order models.Order
		if err := fromDocument(doc, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, bool, error) {
	doc, found, err := r.store.Get(ctx, ordersCollection, id)
	if err != nil || !found {
		return models.Order{}, false, err
	}
	var order models.Order
	if err := fromDocument(doc, &order); err != nil {
		return models.Order{}, false, err
	}
	return order, true, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string) (bool, error) {
	return r.store.Update(ctx, ordersCollection, id, store.Document{"status": status})
}

func (r *OrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, ordersCollection, id)
}
