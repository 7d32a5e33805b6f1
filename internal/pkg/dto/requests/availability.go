package requests

import "carelink-service/internal/app/models"

type TimeInterval struct {
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
}

type WeeklyAvailabilityRule struct {
	Day   string         `json:"day" validate:"required,weekday"`
	Slots []TimeInterval `json:"slots" validate:"dive"`
}

type ReplaceWeeklyAvailability struct {
	Availability []WeeklyAvailabilityRule `json:"availability" validate:"dive"`
}

type UpsertUnavailability struct {
	Date   string         `json:"date" validate:"required,calendar_date"`
	Slots  []TimeInterval `json:"slots" validate:"required,gt=0,dive"`
	Reason string         `json:"reason" validate:"max=255"`
}

type RemoveUnavailability struct {
	Date string `json:"date" validate:"required,calendar_date"`
}

// FindAvailability holds the parsed query of GET /availability.
type FindAvailability struct {
	DoctorID  string
	StartDate string
	EndDate   string
	Filter    models.DoctorFilter
}
