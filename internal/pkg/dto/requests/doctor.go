package requests

type CreateDoctor struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=8"`
	Specialization string   `json:"specialization" validate:"required,max=100"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Languages      []string `json:"languages" validate:"dive,language"`
	Price          float64  `json:"price" validate:"gte=0"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	IsVerified     bool     `json:"isVerified"`
}

type UpdateDoctorVerification struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}

// UpdateDoctorProfile only touches the listed profile fields; nil means unchanged.
type UpdateDoctorProfile struct {
	Name           *string  `json:"name" validate:"omitnil,min=1,max=100"`
	Specialization *string  `json:"specialization" validate:"omitnil,min=1,max=100"`
	Gender         *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Languages      []string `json:"languages" validate:"omitempty,dive,language"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
}
