package doctors

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDateFormat renders a BSON date as YYYY-MM-DD in UTC.
const mongoDateFormat = "%Y-%m-%d"

func buildDoctorFilter(filter models.DoctorFilter) bson.M {
	query := bson.M{}
	if filter.Specialization != "" {
		query["specialization"] = filter.Specialization
	}
	if filter.Gender != "" {
		query["gender"] = filter.Gender
	}
	if len(filter.Languages) > 0 {
		query["languages"] = bson.M{"$in": filter.Languages}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if filter.MinRating != nil {
		query["rating"] = bson.M{"$gte": *filter.MinRating}
	}
	if filter.VerifiedOnly {
		query["isVerified"] = true
	}
	return query
}

func buildReplaceAvailabilityUpdate(rules []models.WeeklyAvailabilityRule, now time.Time) bson.M {
	if rules == nil {
		rules = []models.WeeklyAvailabilityRule{}
	}
	return bson.M{"$set": bson.M{
		"availability": rules,
		"updatedAt":    now,
	}}
}

// buildUpsertUnavailabilityUpdate drops every exception on the entry's calendar date
// and appends the entry in one pipeline update, so edits to other dates are never lost.
// The entry is wrapped in $literal so user text is never read as an expression.
func buildUpsertUnavailabilityUpdate(entry models.UnavailabilityException, now time.Time) mongo.Pipeline {
	entry.Date = models.NormalizeDate(entry.Date)
	day := entry.Date.Format(constvars.DateLayout)

	keepOtherDates := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$unavailability", bson.A{}}}}},
		{Key: "as", Value: "entry"},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{
			bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: mongoDateFormat},
				{Key: "date", Value: "$$entry.date"},
			}}},
			day,
		}}}},
	}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "unavailability", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				keepOtherDates,
				bson.A{bson.D{{Key: "$literal", Value: entry}}},
			}}}},
			{Key: "updatedAt", Value: now},
		}}},
	}
}

func unavailabilityOnDate(date time.Time) bson.M {
	dayStart := models.NormalizeDate(date)
	return bson.M{"date": bson.M{
		"$gte": dayStart,
		"$lt":  dayStart.AddDate(0, 0, 1),
	}}
}

// buildRemoveUnavailabilityFilter only matches a doctor that has an exception on the date,
// so a date without one leaves the document untouched.
func buildRemoveUnavailabilityFilter(doctorID primitive.ObjectID, date time.Time) bson.M {
	return bson.M{
		"_id":            doctorID,
		"unavailability": bson.M{"$elemMatch": unavailabilityOnDate(date)},
	}
}

// buildRemoveUnavailabilityUpdate pulls every exception falling on the calendar date.
func buildRemoveUnavailabilityUpdate(date time.Time, now time.Time) bson.M {
	return bson.M{
		"$pull": bson.M{"unavailability": unavailabilityOnDate(date)},
		"$set":  bson.M{"updatedAt": now},
	}
}

func doctorIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{Keys: bson.D{{Key: "specialization", Value: 1}}, Options: options.Index().SetName("specialization_1")},
		{Keys: bson.D{{Key: "gender", Value: 1}}, Options: options.Index().SetName("gender_1")},
		{Keys: bson.D{{Key: "languages", Value: 1}}, Options: options.Index().SetName("languages_1")},
		{Keys: bson.D{{Key: "price", Value: 1}}, Options: options.Index().SetName("price_1")},
		{Keys: bson.D{{Key: "rating", Value: 1}}, Options: options.Index().SetName("rating_1")},
		{Keys: bson.D{{Key: "isVerified", Value: 1}}, Options: options.Index().SetName("isVerified_1")},
	}
}
