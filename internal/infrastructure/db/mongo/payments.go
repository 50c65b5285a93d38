package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

type mongoCard struct {
	Last4          string `bson:"last4"`
	ExpiryDate     string `bson:"expiry_date"`
	CardHolderName string `bson:"card_holder_name"`
}

type mongoPayment struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	UserID    string               `bson:"user_id"`
	Amount    primitive.Decimal128 `bson:"amount"`
	Method    string               `bson:"payment_method"`
	Card      *mongoCard           `bson:"card_details,omitempty"`
	Status    string               `bson:"status"`
	PromoCode string               `bson:"promo_code,omitempty"`
	Receipt   string               `bson:"receipt,omitempty"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (mp mongoPayment) toDomain() *domain.Payment {
	p := &domain.Payment{
		ID:        mp.ID.Hex(),
		UserID:    mp.UserID,
		Amount:    fromDecimal128(mp.Amount),
		Method:    mp.Method,
		Status:    domain.PaymentStatus(mp.Status),
		PromoCode: mp.PromoCode,
		Receipt:   mp.Receipt,
		CreatedAt: mp.CreatedAt.UTC(),
		UpdatedAt: mp.UpdatedAt.UTC(),
	}
	if mp.Card != nil {
		card := domain.CardDetails(*mp.Card)
		p.CardDetails = &card
	}
	return p
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		UserID:    p.UserID,
		Amount:    toDecimal128(p.Amount),
		Method:    p.Method,
		Status:    string(p.Status),
		PromoCode: p.PromoCode,
		Receipt:   p.Receipt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.CardDetails != nil {
		card := mongoCard(*p.CardDetails)
		doc.Card = &card
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, persistErr("insert payment", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	oid, err := objectID(id, domain.ErrPaymentNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoPayment
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, persistErr("find payment", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string, status domain.PaymentStatus) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = string(status)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, persistErr("list payments", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPayment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistErr("decode payments", err)
	}
	out := make([]*domain.Payment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Transition is a compare-and-set on status: of two concurrent completions only
// the one whose filter still matches from wins.
func (r *PaymentRepository) Transition(ctx context.Context, id string, from, to domain.PaymentStatus, receipt string, now time.Time) (*domain.Payment, error) {
	oid, err := objectID(id, domain.ErrPaymentNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(to), "updated_at": now}
	if receipt != "" {
		set["receipt"] = receipt
	}
	var doc mongoPayment
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !isNoDocuments(err) {
		return nil, persistErr("transition payment", err)
	}
	return nil, missOrConflict(ctx, r.col, oid, domain.ErrPaymentNotFound)
}

// missOrConflict explains why a conditional update matched nothing.
func missOrConflict(ctx context.Context, col *mongo.Collection, oid primitive.ObjectID, notFound error) error {
	n, err := col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return persistErr("count after transition", err)
	}
	if n == 0 {
		return notFound
	}
	return domain.ErrInvalidTransition
}

func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
