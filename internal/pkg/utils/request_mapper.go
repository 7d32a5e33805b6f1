package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
)

func BuildTimeIntervals(slots []requests.TimeInterval) []models.TimeInterval {
	result := make([]models.TimeInterval, 0, len(slots))
	for _, slot := range slots {
		result = append(result, models.TimeInterval{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return result
}

// BuildWeeklyAvailabilityRules expects a validated request; day names are stored lower-case.
func BuildWeeklyAvailabilityRules(request *requests.ReplaceWeeklyAvailability) []models.WeeklyAvailabilityRule {
	rules := make([]models.WeeklyAvailabilityRule, 0, len(request.Availability))
	for _, rule := range request.Availability {
		day, _ := models.ParseWeekday(rule.Day)
		rules = append(rules, models.WeeklyAvailabilityRule{
			Day:   day,
			Slots: BuildTimeIntervals(rule.Slots),
		})
	}
	return rules
}
