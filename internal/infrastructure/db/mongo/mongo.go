package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
	appName        = "salon-api"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Repositories bundles every collection-backed repository of one database.
type Repositories struct {
	Users        *UserRepository
	Services     *ServiceRepository
	Carts        *CartRepository
	Payments     *PaymentRepository
	Employees    *EmployeeRepository
	Appointments *AppointmentRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Services:     NewServiceRepository(db),
		Carts:        NewCartRepository(db),
		Payments:     NewPaymentRepository(db),
		Employees:    NewEmployeeRepository(db),
		Appointments: NewAppointmentRepository(db),
	}
}

// EnsureIndexes creates the indexes of every collection. Unique indexes back
// the email, username and one-cart-per-user invariants.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{collectionUsers, r.Users.EnsureIndexes},
		{collectionServices, r.Services.EnsureIndexes},
		{collectionCarts, r.Carts.EnsureIndexes},
		{collectionPayments, r.Payments.EnsureIndexes},
		{collectionEmployees, r.Employees.EnsureIndexes},
		{collectionAppointments, r.Appointments.EnsureIndexes},
	}
	for _, s := range steps {
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", s.name, err)
		}
	}
	return nil
}

// persistErr tags a driver failure with domain.ErrPersistence.
func persistErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// objectID parses a hex id. Malformed ids cannot exist in the collection, so
// they map to the caller's not-found error.
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
