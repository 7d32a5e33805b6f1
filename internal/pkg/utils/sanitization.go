package utils

import (
	"carelink-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		sanitizedArray = append(sanitizedArray, v)
	}
	return sanitizedArray
}

func sanitizeTimeIntervals(input []requests.TimeInterval) {
	for i := range input {
		input[i].StartTime = strings.TrimSpace(input[i].StartTime)
		input[i].EndTime = strings.TrimSpace(input[i].EndTime)
	}
}

func SanitizeLoginDoctorRequest(input *requests.LoginDoctor) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Languages = cleanWhiteSpaceFromEachStringOfAnArray(input.Languages)
}

func trimOptionalString(input *string, lower bool) {
	if input == nil {
		return
	}
	*input = strings.TrimSpace(*input)
	if lower {
		*input = strings.ToLower(*input)
	}
}

func SanitizeUpdateDoctorProfileRequest(input *requests.UpdateDoctorProfile) {
	trimOptionalString(input.Name, false)
	trimOptionalString(input.Specialization, false)
	trimOptionalString(input.Gender, true)
	if input.Languages != nil {
		input.Languages = cleanWhiteSpaceFromEachStringOfAnArray(input.Languages)
	}
}

func SanitizeReplaceWeeklyAvailabilityRequest(input *requests.ReplaceWeeklyAvailability) {
	for i := range input.Availability {
		input.Availability[i].Day = strings.ToLower(strings.TrimSpace(input.Availability[i].Day))
		sanitizeTimeIntervals(input.Availability[i].Slots)
	}
}

func SanitizeUpsertUnavailabilityRequest(input *requests.UpsertUnavailability) {
	input.Date = strings.TrimSpace(input.Date)
	input.Reason = strings.TrimSpace(input.Reason)
	sanitizeTimeIntervals(input.Slots)
}
