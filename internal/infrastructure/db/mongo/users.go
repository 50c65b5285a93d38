package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type mongoProfile struct {
	FirstName   string `bson:"first_name,omitempty"`
	LastName    string `bson:"last_name,omitempty"`
	PhoneNumber string `bson:"phone_number,omitempty"`
	Avatar      string `bson:"avatar,omitempty"`
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Username      string             `bson:"username"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	Role          string             `bson:"role"`
	Profile       mongoProfile       `bson:"profile"`
	EmailVerified bool               `bson:"email_verified"`
	Blocked       bool               `bson:"blocked"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Role:          string(u.Role),
		Profile:       mongoProfile(u.Profile),
		EmailVerified: u.EmailVerified,
		Blocked:       u.Blocked,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:            mu.ID.Hex(),
		Username:      mu.Username,
		Email:         mu.Email,
		PasswordHash:  mu.PasswordHash,
		Role:          domain.Role(mu.Role),
		Profile:       domain.Profile(mu.Profile),
		EmailVerified: mu.EmailVerified,
		Blocked:       mu.Blocked,
		CreatedAt:     mu.CreatedAt.UTC(),
		UpdatedAt:     mu.UpdatedAt.UTC(),
	}
}

// duplicateUserErr tells which unique index rejected the write.
func duplicateUserErr(err error) error {
	if strings.Contains(err.Error(), "username") {
		return domain.ErrDuplicateUsername
	}
	return domain.ErrDuplicateEmail
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateUserErr(err)
		}
		return nil, persistErr("insert user", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&mu); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, persistErr("find user", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectID(id, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, persistErr("list users", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistErr("decode users", err)
	}
	out := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, profile domain.Profile, now time.Time) (*domain.User, error) {
	oid, err := objectID(id, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"profile": mongoProfile(profile), "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, persistErr("update profile", err)
	}
	return mu.toDomain(), nil
}

// set applies a $set to one user and reports ErrUserNotFound when nothing matched.
func (r *UserRepository) set(ctx context.Context, id string, fields bson.M) error {
	oid, err := objectID(id, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return persistErr("update user", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, now time.Time) error {
	return r.set(ctx, id, bson.M{"password_hash": passwordHash, "updated_at": now})
}

func (r *UserRepository) SetBlocked(ctx context.Context, id string, blocked bool, now time.Time) error {
	return r.set(ctx, id, bson.M{"blocked": blocked, "updated_at": now})
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role domain.Role, now time.Time) error {
	return r.set(ctx, id, bson.M{"role": string(role), "updated_at": now})
}

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}
