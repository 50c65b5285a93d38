package mongo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

const collectionAppointments = "appointments"

// AppointmentRepository keeps service_id as an ObjectID so Revenue can join
// the services collection.
type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

type mongoAppointment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	ServiceID  primitive.ObjectID `bson:"service_id"`
	EmployeeID string             `bson:"employee_id,omitempty"`
	Date       time.Time          `bson:"appointment_date"`
	Status     string             `bson:"status"`
	Feedback   string             `bson:"feedback,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (ma mongoAppointment) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:         ma.ID.Hex(),
		UserID:     ma.UserID,
		ServiceID:  ma.ServiceID.Hex(),
		EmployeeID: ma.EmployeeID,
		Date:       ma.Date.UTC(),
		Status:     domain.AppointmentStatus(ma.Status),
		Feedback:   ma.Feedback,
		CreatedAt:  ma.CreatedAt.UTC(),
		UpdatedAt:  ma.UpdatedAt.UTC(),
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	serviceID, err := objectID(a.ServiceID, domain.ErrServiceNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAppointment{
		UserID:     a.UserID,
		ServiceID:  serviceID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     string(a.Status),
		Feedback:   a.Feedback,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, persistErr("insert appointment", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := objectID(id, domain.ErrAppointmentNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAppointment
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, persistErr("find appointment", err)
	}
	return doc.toDomain(), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	oid, err := objectID(a.ID, domain.ErrAppointmentNotFound)
	if err != nil {
		return err
	}
	serviceID, err := objectID(a.ServiceID, domain.ErrServiceNotFound)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"service_id":       serviceID,
		"employee_id":      a.EmployeeID,
		"appointment_date": a.Date,
		"updated_at":       a.UpdatedAt,
	}})
	if err != nil {
		return persistErr("update appointment", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.ServiceID != "" {
		serviceID, err := primitive.ObjectIDFromHex(f.ServiceID)
		if err != nil {
			return []*domain.Appointment{}, nil
		}
		filter["service_id"] = serviceID
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	dateRange := bson.M{}
	if !f.From.IsZero() {
		dateRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		dateRange["$lt"] = f.To
	}
	if len(dateRange) > 0 {
		filter["appointment_date"] = dateRange
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, persistErr("list appointments", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAppointment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistErr("decode appointments", err)
	}
	out := make([]*domain.Appointment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *AppointmentRepository) findOneAndSet(ctx context.Context, filter, set bson.M, op string) (*domain.Appointment, error) {
	var doc mongoAppointment
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, persistErr(op, err)
	}
	return doc.toDomain(), nil
}

func (r *AppointmentRepository) Transition(ctx context.Context, id string, from, to domain.AppointmentStatus, now time.Time) (*domain.Appointment, error) {
	oid, err := objectID(id, domain.ErrAppointmentNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a, err := r.findOneAndSet(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"status": string(to), "updated_at": now},
		"transition appointment",
	)
	if isNoDocuments(err) {
		return nil, missOrConflict(ctx, r.col, oid, domain.ErrAppointmentNotFound)
	}
	return a, err
}

func (r *AppointmentRepository) SetFeedback(ctx context.Context, id, feedback string, now time.Time) (*domain.Appointment, error) {
	oid, err := objectID(id, domain.ErrAppointmentNotFound)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a, err := r.findOneAndSet(ctx,
		bson.M{"_id": oid},
		bson.M{"feedback": feedback, "updated_at": now},
		"set appointment feedback",
	)
	if isNoDocuments(err) {
		return nil, domain.ErrAppointmentNotFound
	}
	return a, err
}

// CancelMany ignores malformed ids; they cannot match anything.
func (r *AppointmentRepository) CancelMany(ctx context.Context, ids []string, now time.Time) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"_id":    bson.M{"$in": oids},
			"status": bson.M{"$in": bson.A{string(domain.AppointmentPending), string(domain.AppointmentConfirmed)}},
		},
		bson.M{"$set": bson.M{"status": string(domain.AppointmentCanceled), "updated_at": now}},
	)
	if err != nil {
		return 0, persistErr("cancel appointments", err)
	}
	return res.ModifiedCount, nil
}

// Revenue joins every completed appointment with its service and sums the
// current prices. Appointments whose service was deleted drop out of $unwind.
func (r *AppointmentRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": string(domain.AppointmentCompleted)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionServices,
			"localField":   "service_id",
			"foreignField": "_id",
			"as":           "service",
		}}},
		{{Key: "$unwind", Value: "$service"}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$service.price"},
		}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return decimal.Zero, persistErr("aggregate revenue", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total bson.RawValue `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return decimal.Zero, persistErr("decode revenue", err)
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	if d, ok := rows[0].Total.Decimal128OK(); ok {
		return fromDecimal128(d), nil
	}
	return decimal.Zero, nil
}

func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "appointment_date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}
