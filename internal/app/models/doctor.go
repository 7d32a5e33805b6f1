package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

var weekdaysByTime = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMonday,
	time.Tuesday:   WeekdayTuesday,
	time.Wednesday: WeekdayWednesday,
	time.Thursday:  WeekdayThursday,
	time.Friday:    WeekdayFriday,
	time.Saturday:  WeekdaySaturday,
	time.Sunday:    WeekdaySunday,
}

// ParseWeekday accepts a weekday name in any letter case, surrounded by optional whitespace.
func ParseWeekday(s string) (Weekday, bool) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range weekdaysByTime {
		if known == day {
			return day, true
		}
	}
	return "", false
}

// WeekdayOf returns the weekday of the calendar date t, read in t's own location.
func WeekdayOf(t time.Time) Weekday {
	return weekdaysByTime[t.Weekday()]
}

// NormalizeDate drops the time of day and returns the calendar date as UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeInterval is a wall-clock interval with zero-padded "HH:MM" bounds.
// Fixed-width strings compare in chronological order.
type TimeInterval struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// Overlaps uses open bounds: intervals that only touch are not overlapping.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.StartTime < other.EndTime && i.EndTime > other.StartTime
}

type WeeklyAvailabilityRule struct {
	Day   Weekday        `json:"day" bson:"day"`
	Slots []TimeInterval `json:"slots" bson:"slots"`
}

type UnavailabilityException struct {
	Date   time.Time      `json:"date" bson:"date"`
	Slots  []TimeInterval `json:"slots" bson:"slots"`
	Reason string         `json:"reason,omitempty" bson:"reason,omitempty"`
}

type Doctor struct {
	ID             primitive.ObjectID        `json:"id" bson:"_id,omitempty"`
	Name           string                    `json:"name" bson:"name"`
	Email          string                    `json:"email" bson:"email"`
	Password       string                    `json:"-" bson:"password"`
	Specialization string                    `json:"specialization" bson:"specialization"`
	Gender         string                    `json:"gender" bson:"gender"`
	Languages      []string                  `json:"languages" bson:"languages"`
	Price          float64                   `json:"price" bson:"price"`
	Rating         float64                   `json:"rating" bson:"rating"`
	IsVerified     bool                      `json:"isVerified" bson:"isVerified"`
	Availability   []WeeklyAvailabilityRule  `json:"availability" bson:"availability"`
	Unavailability []UnavailabilityException `json:"unavailability" bson:"unavailability"`
	TimeModel      `bson:",inline"`
}

// WeeklyRuleFor returns the first rule whose day matches, or nil.
// Day names are matched without regard to letter case.
func (d *Doctor) WeeklyRuleFor(day Weekday) *WeeklyAvailabilityRule {
	for i := range d.Availability {
		if strings.EqualFold(string(d.Availability[i].Day), string(day)) {
			return &d.Availability[i]
		}
	}
	return nil
}

// UnavailabilityOn returns the exception recorded for the calendar date, or nil.
func (d *Doctor) UnavailabilityOn(date time.Time) *UnavailabilityException {
	target := NormalizeDate(date)
	for i := range d.Unavailability {
		if NormalizeDate(d.Unavailability[i].Date).Equal(target) {
			return &d.Unavailability[i]
		}
	}
	return nil
}

// DoctorFilter narrows FindDoctors. Zero values mean "no constraint".
type DoctorFilter struct {
	Specialization string
	Gender         string
	Languages      []string
	MinPrice       *float64
	MaxPrice       *float64
	MinRating      *float64
	VerifiedOnly   bool
}
