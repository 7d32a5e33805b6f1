package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/responses"
)

// ConvertDoctorToResponse hides the password hash. The email is only exposed to the doctor themself.
func ConvertDoctorToResponse(doctor *models.Doctor, includeEmail bool) responses.Doctor {
	response := responses.Doctor{
		ID:             doctor.ID.Hex(),
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Gender:         doctor.Gender,
		Languages:      doctor.Languages,
		Price:          doctor.Price,
		Rating:         doctor.Rating,
		IsVerified:     doctor.IsVerified,
		Availability:   doctor.Availability,
		Unavailability: make([]responses.Unavailability, 0, len(doctor.Unavailability)),
	}
	if includeEmail {
		response.Email = doctor.Email
	}
	if response.Languages == nil {
		response.Languages = []string{}
	}
	if response.Availability == nil {
		response.Availability = []models.WeeklyAvailabilityRule{}
	}

	for _, exception := range doctor.Unavailability {
		response.Unavailability = append(response.Unavailability, responses.Unavailability{
			Date:   FormatCalendarDate(models.NormalizeDate(exception.Date)),
			Slots:  exception.Slots,
			Reason: exception.Reason,
		})
	}
	return response
}

func ConvertDoctorsToResponse(doctors []models.Doctor) []responses.Doctor {
	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, ConvertDoctorToResponse(&doctors[i], false))
	}
	return result
}
