package constvars

const (
	// RegexClockHHMM matches a zero-padded 24-hour wall clock, e.g. 09:30.
	RegexClockHHMM     = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexLanguageToken = `^[a-zA-Z\-]{2,20}$`
)
