package appointment

// Appointment is a scheduled meeting between the seeker and a provider, as
// returned by the booking API.
type Appointment struct {
	ID           int    `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ProviderName string `json:"providerName"`
	Type         string `json:"type"`
}
