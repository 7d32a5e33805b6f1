package responses

import "carelink-service/internal/app/models"

type Doctor struct {
	ID             string                          `json:"id"`
	Name           string                          `json:"name"`
	Email          string                          `json:"email,omitempty"`
	Specialization string                          `json:"specialization"`
	Gender         string                          `json:"gender,omitempty"`
	Languages      []string                        `json:"languages"`
	Price          float64                         `json:"price"`
	Rating         float64                         `json:"rating"`
	IsVerified     bool                            `json:"isVerified"`
	Availability   []models.WeeklyAvailabilityRule `json:"availability"`
	Unavailability []Unavailability                `json:"unavailability"`
}

type Unavailability struct {
	Date   string                `json:"date"`
	Slots  []models.TimeInterval `json:"slots"`
	Reason string                `json:"reason,omitempty"`
}

type HealthCheck struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Ready     bool              `json:"ready"`
	Resources map[string]string `json:"resources"`
}
