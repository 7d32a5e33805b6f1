package availability

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"time"
)

// ParseDateRange parses inclusive YYYY-MM-DD bounds. Both bounds come back as UTC midnight.
func ParseDateRange(startDate, endDate string) (start, end time.Time, err error) {
	start, err = utils.ParseCalendarDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidDateRange(err, startDate, endDate)
	}
	end, err = utils.ParseCalendarDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidDateRange(err, startDate, endDate)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidDateRange(nil, startDate, endDate)
	}
	return start, end, nil
}

// Resolve expands each doctor's weekly rules over the date range and drops every rule slot
// that overlaps a slot of that date's unavailability exception. Results are grouped by doctor
// in input order, then by ascending date.
func Resolve(doctors []models.Doctor, startDate, endDate string, includeDoctorMeta bool) ([]responses.DayAvailability, error) {
	start, end, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := utils.DaysInRange(start, end)
	result := make([]responses.DayAvailability, 0, len(doctors)*days)
	for i := range doctors {
		doctor := &doctors[i]
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			entry := responses.DayAvailability{
				Date:  utils.FormatCalendarDate(day),
				Slots: openSlots(doctor, day),
			}
			if includeDoctorMeta {
				entry.DoctorID = doctor.ID.Hex()
				entry.DoctorName = doctor.Name
			}
			result = append(result, entry)
		}
	}
	return result, nil
}

func openSlots(doctor *models.Doctor, day time.Time) []models.TimeInterval {
	slots := make([]models.TimeInterval, 0)

	rule := doctor.WeeklyRuleFor(models.WeekdayOf(day))
	if rule == nil {
		return slots
	}

	exception := doctor.UnavailabilityOn(day)
	for _, slot := range rule.Slots {
		if exception != nil && overlapsAny(slot, exception.Slots) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func overlapsAny(slot models.TimeInterval, blocked []models.TimeInterval) bool {
	for _, b := range blocked {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
