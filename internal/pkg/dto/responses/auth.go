package responses

type LoginDoctor struct {
	Token     string `json:"token"`
	DoctorID  string `json:"doctorId"`
	ExpiresAt string `json:"expiresAt"`
}
