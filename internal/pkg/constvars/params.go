package constvars

const (
	URLParamDoctorID = "doctor_id"
	URLParamDate     = "date"
)

const (
	QueryParamDoctorID       = "doctorId"
	QueryParamStartDate      = "startDate"
	QueryParamEndDate        = "endDate"
	QueryParamSpecialization = "specialization"
	QueryParamGender         = "gender"
	QueryParamLanguages      = "languages"
	QueryParamMinPrice       = "minPrice"
	QueryParamMaxPrice       = "maxPrice"
	QueryParamMinRating      = "minRating"
	QueryParamVerifiedOnly   = "verifiedOnly"
)
