package utils

import (
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_UpsertUnavailability(t *testing.T) {
	tests := []struct {
		name        string
		request     requests.UpsertUnavailability
		wantErr     bool
		wantMessage string
	}{
		{
			name: "valid",
			request: requests.UpsertUnavailability{
				Date:   "2024-06-10",
				Slots:  []requests.TimeInterval{{StartTime: "09:00", EndTime: "10:00"}},
				Reason: "leave",
			},
		},
		{
			name:        "missing date",
			request:     requests.UpsertUnavailability{Slots: []requests.TimeInterval{{StartTime: "09:00", EndTime: "10:00"}}},
			wantErr:     true,
			wantMessage: "date is required",
		},
		{
			name:        "impossible calendar date",
			request:     requests.UpsertUnavailability{Date: "2024-02-30", Slots: []requests.TimeInterval{{StartTime: "09:00", EndTime: "10:00"}}},
			wantErr:     true,
			wantMessage: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:        "missing slots",
			request:     requests.UpsertUnavailability{Date: "2024-06-10"},
			wantErr:     true,
			wantMessage: "slots is required",
		},
		{
			name:        "empty slots",
			request:     requests.UpsertUnavailability{Date: "2024-06-10", Slots: []requests.TimeInterval{}},
			wantErr:     true,
			wantMessage: "slots must be greater than 0",
		},
		{
			name:        "unpadded clock",
			request:     requests.UpsertUnavailability{Date: "2024-06-10", Slots: []requests.TimeInterval{{StartTime: "9:00", EndTime: "10:00"}}},
			wantErr:     true,
			wantMessage: "startTime must be a 24-hour time in HH:MM format",
		},
		{
			name:        "end before start",
			request:     requests.UpsertUnavailability{Date: "2024-06-10", Slots: []requests.TimeInterval{{StartTime: "11:00", EndTime: "10:00"}}},
			wantErr:     true,
			wantMessage: "endTime must be later than startTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.request)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantMessage, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidateStruct_ReplaceWeeklyAvailability(t *testing.T) {
	valid := requests.ReplaceWeeklyAvailability{
		Availability: []requests.WeeklyAvailabilityRule{
			{Day: "Monday", Slots: []requests.TimeInterval{{StartTime: "09:00", EndTime: "12:00"}}},
			{Day: "sunday", Slots: []requests.TimeInterval{}},
		},
	}
	assert.NoError(t, ValidateStruct(valid))

	assert.NoError(t, ValidateStruct(requests.ReplaceWeeklyAvailability{}), "clearing the weekly schedule is allowed")

	invalidDay := requests.ReplaceWeeklyAvailability{
		Availability: []requests.WeeklyAvailabilityRule{{Day: "funday"}},
	}
	err := ValidateStruct(invalidDay)
	assert.Error(t, err)
	assert.Equal(t, "day must be a weekday name, monday to sunday", exceptions.FormatFirstValidationError(err))

	invalidClock := requests.ReplaceWeeklyAvailability{
		Availability: []requests.WeeklyAvailabilityRule{
			{Day: "monday", Slots: []requests.TimeInterval{{StartTime: "09:00", EndTime: "24:00"}}},
		},
	}
	err = ValidateStruct(invalidClock)
	assert.Error(t, err)
	assert.Equal(t, "endTime must be a 24-hour time in HH:MM format", exceptions.FormatFirstValidationError(err))
}

func TestValidateStruct_CreateDoctor(t *testing.T) {
	request := requests.CreateDoctor{
		Name:           "Gregory House",
		Email:          "house@example.com",
		Password:       "vicodin123",
		Specialization: "Nephrology",
		Gender:         "male",
		Languages:      []string{"en", "es"},
		Price:          150,
		Rating:         4.9,
	}
	assert.NoError(t, ValidateStruct(request))

	request.Rating = 7
	err := ValidateStruct(request)
	assert.Error(t, err)
	assert.Equal(t, "rating must be less than or equal to 5", exceptions.FormatFirstValidationError(err))
}
