package doctors

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Database) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// FindDoctors returns matches ordered by _id so results are stable across calls.
func (r *DoctorMongoRepository) FindDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, buildDoctorFilter(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error) {
	doctor.SetCreatedAtUpdatedAt()
	if doctor.Availability == nil {
		doctor.Availability = []models.WeeklyAvailabilityRule{}
	}
	if doctor.Unavailability == nil {
		doctor.Unavailability = []models.UnavailabilityException{}
	}

	result, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	objectID := result.InsertedID.(primitive.ObjectID)
	doctor.ID = objectID
	return objectID.Hex(), nil
}

// SaveDoctor persists the profile fields of doctor. The availability arrays are
// only written through their own date-scoped updates.
func (r *DoctorMongoRepository) SaveDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	doctor.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"name":           doctor.Name,
		"specialization": doctor.Specialization,
		"gender":         doctor.Gender,
		"languages":      doctor.Languages,
		"price":          doctor.Price,
		"updatedAt":      doctor.UpdatedAt,
	}}
	return r.findOneAndUpdate(ctx, bson.M{"_id": doctor.ID}, update)
}

func (r *DoctorMongoRepository) ReplaceAvailability(ctx context.Context, doctorID string, rules []models.WeeklyAvailabilityRule) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": objectID}, buildReplaceAvailabilityUpdate(rules, time.Now().UTC()))
}

func (r *DoctorMongoRepository) UpsertUnavailability(ctx context.Context, doctorID string, entry models.UnavailabilityException) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": objectID}, buildUpsertUnavailabilityUpdate(entry, time.Now().UTC()))
}

// RemoveUnavailability reports removed=false, with the unchanged doctor, when nothing was
// recorded for the date.
func (r *DoctorMongoRepository) RemoveUnavailability(ctx context.Context, doctorID string, date time.Time) (*models.Doctor, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := buildRemoveUnavailabilityFilter(objectID, date)
	doctor, err := r.findOneAndUpdate(ctx, filter, buildRemoveUnavailabilityUpdate(date, time.Now().UTC()))
	if err != nil {
		return nil, false, err
	}
	if doctor != nil {
		return doctor, true, nil
	}

	doctor, err = r.FindByID(ctx, doctorID)
	return doctor, false, err
}

func (r *DoctorMongoRepository) SetVerified(ctx context.Context, doctorID string, verified bool) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"isVerified": verified,
		"updatedAt":  time.Now().UTC(),
	}}
	return r.findOneAndUpdate(ctx, bson.M{"_id": objectID}, update)
}

// findOneAndUpdate applies update atomically and returns the document after the change,
// or nil when no doctor matches filter.
func (r *DoctorMongoRepository) findOneAndUpdate(ctx context.Context, filter bson.M, update interface{}) (*models.Doctor, error) {
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doctor models.Doctor
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) EnsureIndexes(ctx context.Context) ([]string, error) {
	names, err := r.Collection.Indexes().CreateMany(ctx, doctorIndexes())
	if err != nil {
		return nil, exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionDoctors)
	}
	return names, nil
}

func (r *DoctorMongoRepository) ListIndexes(ctx context.Context) ([]string, error) {
	cursor, err := r.Collection.Indexes().List(ctx)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var indexes []bson.M
	if err := cursor.All(ctx, &indexes); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	names := make([]string, 0, len(indexes))
	for _, index := range indexes {
		if name, ok := index["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
