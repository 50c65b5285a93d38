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

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

type mongoReview struct {
	Rating  float64 `bson:"rating"`
	Comment string  `bson:"comment,omitempty"`
}

type mongoEmployee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Role      string             `bson:"role"`
	Available bool               `bson:"availability"`
	Schedule  []string           `bson:"schedule"`
	Tasks     []string           `bson:"tasks"`
	Reviews   []mongoReview      `bson:"reviews"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (me mongoEmployee) toDomain() *domain.Employee {
	reviews := make([]domain.EmployeeReview, 0, len(me.Reviews))
	for _, rv := range me.Reviews {
		reviews = append(reviews, domain.EmployeeReview(rv))
	}
	return &domain.Employee{
		ID:        me.ID.Hex(),
		Name:      me.Name,
		Email:     me.Email,
		Phone:     me.Phone,
		Role:      domain.EmployeeRole(me.Role),
		Available: me.Available,
		Schedule:  nonNilStrings(me.Schedule),
		Tasks:     nonNilStrings(me.Tasks),
		Reviews:   reviews,
		CreatedAt: me.CreatedAt.UTC(),
		UpdatedAt: me.UpdatedAt.UTC(),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEmployee{
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Role:      string(e.Role),
		Available: e.Available,
		Schedule:  nonNilStrings(e.Schedule),
		Tasks:     nonNilStrings(e.Tasks),
		Reviews:   []mongoReview{},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	for _, rv := range e.Reviews {
		doc.Reviews = append(doc.Reviews, mongoReview(rv))
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, persistErr("insert employee", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := objectID(id, domain.ErrEmployeeNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoEmployee
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, persistErr("find employee", err)
	}
	return doc.toDomain(), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	err := r.updateOne(ctx, e.ID, bson.M{"$set": bson.M{
		"name":         e.Name,
		"email":        e.Email,
		"phone":        e.Phone,
		"role":         string(e.Role),
		"availability": e.Available,
		"schedule":     nonNilStrings(e.Schedule),
		"updated_at":   e.UpdatedAt,
	}})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *EmployeeRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	oid, err := objectID(id, domain.ErrEmployeeNotFound)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return persistErr("update employee", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrEmployeeNotFound)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return persistErr("delete employee", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, f ports.EmployeeFilter) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Available != nil {
		filter["availability"] = *f.Available
	}
	if f.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"role": pattern},
		}
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, persistErr("list employees", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoEmployee
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistErr("decode employees", err)
	}
	out := make([]*domain.Employee, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *EmployeeRepository) AddTask(ctx context.Context, id, task string, now time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$push": bson.M{"tasks": task},
		"$set":  bson.M{"updated_at": now},
	})
}

func (r *EmployeeRepository) AddReview(ctx context.Context, id string, review domain.EmployeeReview, now time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$push": bson.M{"reviews": mongoReview(review)},
		"$set":  bson.M{"updated_at": now},
	})
}

func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
