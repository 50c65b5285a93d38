package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const (
	collectionCarts = "carts"
	// maxCartAttempts bounds the insert/increment retry loop of AddItem.
	maxCartAttempts = 3
)

var errCartContention = errors.New("cart update kept conflicting")

// CartRepository stores one document per user (unique user_id). Every method
// is a single-document update, so concurrent requests never lose writes.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

type mongoCartItem struct {
	ServiceID string `bson:"service_id"`
	Quantity  int    `bson:"quantity"`
}

type mongoCart struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	UserID         string               `bson:"user_id"`
	Items          []mongoCartItem      `bson:"items"`
	DiscountCode   string               `bson:"discount_code"`
	DiscountAmount primitive.Decimal128 `bson:"discount_amount"`
	TotalCost      primitive.Decimal128 `bson:"total_cost"`
	CreatedAt      time.Time            `bson:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

func (mc mongoCart) toDomain() *domain.Cart {
	items := make([]domain.CartItem, 0, len(mc.Items))
	for _, it := range mc.Items {
		items = append(items, domain.CartItem{ServiceID: it.ServiceID, Quantity: it.Quantity})
	}
	return &domain.Cart{
		ID:             mc.ID.Hex(),
		UserID:         mc.UserID,
		Items:          items,
		DiscountCode:   mc.DiscountCode,
		DiscountAmount: fromDecimal128(mc.DiscountAmount),
		TotalCost:      fromDecimal128(mc.TotalCost),
		CreatedAt:      mc.CreatedAt.UTC(),
		UpdatedAt:      mc.UpdatedAt.UTC(),
	}
}

var returnAfter = options.FindOneAndUpdate().SetReturnDocument(options.After)

// emptyCartFields initialises a cart document created by an upsert.
func emptyCartFields(now time.Time) bson.M {
	zero := toDecimal128(decimal.Zero)
	return bson.M{
		"created_at":      now,
		"discount_code":   "",
		"discount_amount": zero,
		"total_cost":      zero,
	}
}

func (r *CartRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M, opts *options.FindOneAndUpdateOptions) (*domain.Cart, error) {
	var doc mongoCart
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCart
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return domain.NewCart(userID), nil
		}
		return nil, persistErr("find cart", err)
	}
	return doc.toDomain(), nil
}

// AddItem increments an existing line with $inc, otherwise pushes a new line,
// creating the cart on the way. A duplicate key on the upsert means another
// request created the cart or the line first; the loop then retries the $inc.
func (r *CartRepository) AddItem(ctx context.Context, userID, serviceID string, qty int, now time.Time) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for i := 0; i < maxCartAttempts; i++ {
		cart, err := r.findOneAndUpdate(ctx,
			bson.M{"user_id": userID, "items.service_id": serviceID},
			bson.M{
				"$inc": bson.M{"items.$.quantity": qty},
				"$set": bson.M{"updated_at": now},
			},
			returnAfter,
		)
		if err == nil {
			return cart, nil
		}
		if !isNoDocuments(err) {
			return nil, persistErr("increment cart item", err)
		}

		cart, err = r.findOneAndUpdate(ctx,
			bson.M{"user_id": userID, "items.service_id": bson.M{"$ne": serviceID}},
			bson.M{
				"$push":        bson.M{"items": mongoCartItem{ServiceID: serviceID, Quantity: qty}},
				"$set":         bson.M{"updated_at": now},
				"$setOnInsert": emptyCartFields(now),
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true),
		)
		if err == nil {
			return cart, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, persistErr("push cart item", err)
		}
	}
	return nil, persistErr("add cart item", errCartContention)
}

func (r *CartRepository) UpdateItem(ctx context.Context, userID, serviceID string, qty int, now time.Time) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cart, err := r.findOneAndUpdate(ctx,
		bson.M{"user_id": userID, "items.service_id": serviceID},
		bson.M{"$set": bson.M{"items.$.quantity": qty, "updated_at": now}},
		returnAfter,
	)
	if err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrItemNotFound
		}
		return nil, persistErr("update cart item", err)
	}
	return cart, nil
}

// update applies an update to an existing cart. A user without a cart gets the
// empty cart back, since removing from or clearing it changes nothing.
func (r *CartRepository) update(ctx context.Context, userID string, update bson.M, op string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cart, err := r.findOneAndUpdate(ctx, bson.M{"user_id": userID}, update, returnAfter)
	if err != nil {
		if isNoDocuments(err) {
			return domain.NewCart(userID), nil
		}
		return nil, persistErr(op, err)
	}
	return cart, nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, serviceID string, now time.Time) (*domain.Cart, error) {
	return r.update(ctx, userID, bson.M{
		"$pull": bson.M{"items": bson.M{"service_id": serviceID}},
		"$set":  bson.M{"updated_at": now},
	}, "remove cart item")
}

func (r *CartRepository) Clear(ctx context.Context, userID string, now time.Time) (*domain.Cart, error) {
	zero := toDecimal128(decimal.Zero)
	return r.update(ctx, userID, bson.M{"$set": bson.M{
		"items":           bson.A{},
		"discount_code":   "",
		"discount_amount": zero,
		"total_cost":      zero,
		"updated_at":      now,
	}}, "clear cart")
}

// SetDiscount upserts so a discount can be applied before the first item.
func (r *CartRepository) SetDiscount(ctx context.Context, userID, code string, amount decimal.Decimal, now time.Time) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	onInsert := bson.M{"created_at": now, "items": bson.A{}, "total_cost": toDecimal128(decimal.Zero)}
	cart, err := r.findOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set": bson.M{
				"discount_code":   code,
				"discount_amount": toDecimal128(amount),
				"updated_at":      now,
			},
			"$setOnInsert": onInsert,
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true),
	)
	if err != nil {
		return nil, persistErr("set cart discount", err)
	}
	return cart, nil
}

func (r *CartRepository) SetTotal(ctx context.Context, userID string, total decimal.Decimal, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"total_cost": toDecimal128(total), "updated_at": now}},
	)
	if err != nil {
		return persistErr("set cart total", err)
	}
	return nil
}

func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
