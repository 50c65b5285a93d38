package mongo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

const collectionServices = "services"

type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

type mongoService struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Category    string               `bson:"category"`
	Price       primitive.Decimal128 `bson:"price"`
	Discount    float64              `bson:"discount"`
	Rating      float64              `bson:"rating"`
	Available   bool                 `bson:"availability"`
	Reviews     []string             `bson:"reviews"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (ms mongoService) toDomain() *domain.Service {
	return &domain.Service{
		ID:          ms.ID.Hex(),
		Name:        ms.Name,
		Description: ms.Description,
		Category:    domain.Category(ms.Category),
		Price:       fromDecimal128(ms.Price),
		Discount:    ms.Discount,
		Rating:      ms.Rating,
		Available:   ms.Available,
		Reviews:     nonNilStrings(ms.Reviews),
		CreatedAt:   ms.CreatedAt.UTC(),
		UpdatedAt:   ms.UpdatedAt.UTC(),
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoService{
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
		Price:       toDecimal128(s.Price),
		Discount:    s.Discount,
		Rating:      s.Rating,
		Available:   s.Available,
		Reviews:     nonNilStrings(s.Reviews),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, persistErr("insert service", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := objectID(id, domain.ErrServiceNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoService
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, persistErr("find service", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.updateOne(ctx, s.ID, bson.M{"$set": bson.M{
		"name":         s.Name,
		"description":  s.Description,
		"category":     string(s.Category),
		"price":        toDecimal128(s.Price),
		"discount":     s.Discount,
		"rating":       s.Rating,
		"availability": s.Available,
		"updated_at":   s.UpdatedAt,
	}})
}

func (r *ServiceRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	oid, err := objectID(id, domain.ErrServiceNotFound)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return persistErr("update service", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrServiceNotFound)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return persistErr("delete service", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) List(ctx context.Context, f ports.ServiceFilter) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = string(f.Category)
	}
	if f.Available != nil {
		filter["availability"] = *f.Available
	}
	if f.Discounted {
		filter["discount"] = bson.M{"$gt": 0}
	}
	if f.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if f.SortByRating {
		opts.SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}})
	}
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, persistErr("list services", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoService
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistErr("decode services", err)
	}
	out := make([]*domain.Service, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ServiceRepository) AddReview(ctx context.Context, id, comment string) error {
	return r.updateOne(ctx, id, bson.M{"$push": bson.M{"reviews": comment}})
}

func (r *ServiceRepository) RemoveReview(ctx context.Context, id, comment string) error {
	return r.updateOne(ctx, id, bson.M{"$pull": bson.M{"reviews": comment}})
}

func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	})
	return err
}
