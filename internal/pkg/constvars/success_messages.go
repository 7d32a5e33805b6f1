package constvars

const (
	ResponseUnknown = "unknown"

	// Auth
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Doctors
	GetDoctorSuccess          = "get doctor successfully"
	GetDoctorsSuccess         = "get doctors successfully"
	CreateDoctorSuccess       = "doctor created successfully"
	UpdateVerificationSuccess = "doctor verification updated successfully"
	UpdateProfileSuccess      = "doctor profile updated successfully"

	// Availability
	GetAvailabilitySuccess     = "get availability successfully"
	ReplaceAvailabilitySuccess = "weekly availability replaced successfully"
	UpsertUnavailableSuccess   = "unavailability saved successfully"
	RemoveUnavailableSuccess   = "unavailability removed successfully"

	HealthCheckSuccess   = "service is healthy"
	HealthCheckDegraded  = "service is degraded"
	HealthStatusUp       = "up"
	HealthStatusDown     = "down"
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)
