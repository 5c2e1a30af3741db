package gateway

import (
	"context"
	"encoding/json"
	"time"

	"dokan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists entities in two collections. Field names follow the
// storage convention (snake_case); the translation to and from the client
// shape happens entirely here. Order items are stored as one serialized
// blob, never queried field-by-field.
type MongoStore struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

func NewMongoStore(products, orders *mongo.Collection) *MongoStore {
	return &MongoStore{products: products, orders: orders}
}

type orderDoc struct {
	ID            string    `bson:"_id"`
	CustomerName  string    `bson:"customer_name"`
	CustomerPhone string    `bson:"customer_phone"`
	Items         string    `bson:"items"`
	TotalPrice    float64   `bson:"total_price"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
}

func toOrderDoc(o models.Order) (orderDoc, error) {
	blob, err := json.Marshal(o.Items)
	if err != nil {
		return orderDoc{}, err
	}
	return orderDoc{
		ID:            o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         string(blob),
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}, nil
}

func fromOrderDoc(d orderDoc) (models.Order, error) {
	var items []models.OrderItem
	if d.Items != "" {
		if err := json.Unmarshal([]byte(d.Items), &items); err != nil {
			return models.Order{}, err
		}
	}
	return models.Order{
		OrderID:       d.ID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Items:         items,
		TotalPrice:    d.TotalPrice,
		Status:        models.OrderStatus(d.Status),
		CreatedAt:     d.CreatedAt,
	}, nil
}

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *MongoStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		o, err := fromOrderDoc(d)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, nil
}

func (s *MongoStore) UpsertProduct(ctx context.Context, p models.Product) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.products.ReplaceOne(ctx, bson.M{"_id": p.ProductID}, p, opts)
	return err
}

func (s *MongoStore) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStore) PlaceOrder(ctx context.Context, o models.Order) error {
	doc, err := toOrderDoc(o)
	if err != nil {
		return err
	}
	if _, err := s.orders.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (s *MongoStore) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res, err := s.orders.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteOrder(ctx context.Context, id string) error {
	_, err := s.orders.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
