package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"alvezinc.backend/internal/domain/entities"
	"alvezinc.backend/internal/infrastructure/models"
)

// ProductRepository implements catalog document operations over Mongo
type ProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// EnsureIndexes creates the free-text index over product names
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	})
	return err
}

// List returns the whole catalog
func (r *ProductRepository) List(ctx context.Context) ([]*entities.Product, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, &entities.Product{
			ID:    doc.ID,
			Name:  doc.Name,
			Price: doc.Price,
			CP:    doc.CP,
		})
	}
	return products, nil
}

// Search runs a free-text query against the name index and returns
// matches ordered by descending relevance score. The score is assigned
// by the store; this layer never computes it.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]*entities.ProductSearchResult, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	scoreMeta := bson.M{"$meta": "textScore"}
	opts := options.Find().
		SetProjection(bson.M{"score": scoreMeta}).
		SetSort(bson.D{{Key: "score", Value: scoreMeta}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.ScoredProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	results := make([]*entities.ProductSearchResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, &entities.ProductSearchResult{
			ID:    doc.ID,
			Name:  doc.Name,
			Price: doc.Price,
			CP:    doc.CP,
			Score: doc.Score,
		})
	}
	return results, nil
}
