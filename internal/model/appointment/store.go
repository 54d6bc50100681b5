package appointment

// Store exposes appointment retrieval for HTTP handlers.
type Store interface {
	Upcoming() []Appointment
	Past() []Appointment
}

// MemoryStore implements Store with in-memory slices, suitable for the dev API.
type MemoryStore struct {
	upcoming []Appointment
	past     []Appointment
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied appointments.
func NewMemoryStore(upcoming, past []Appointment) *MemoryStore {
	return &MemoryStore{
		upcoming: append([]Appointment(nil), upcoming...),
		past:     append([]Appointment(nil), past...),
	}
}

// Upcoming returns appointments scheduled after now.
func (s *MemoryStore) Upcoming() []Appointment {
	return append([]Appointment(nil), s.upcoming...)
}

// Past returns appointments that already took place.
func (s *MemoryStore) Past() []Appointment {
	return append([]Appointment(nil), s.past...)
}

// Seed provides the demo appointment book served by the dev API.
func Seed() (upcoming, past []Appointment) {
	upcoming = []Appointment{
		{ID: 1, Date: "2024-01-16", Time: "10:00 AM", ProviderName: "Dr. Sarah Johnson", Type: "Consultation"},
		{ID: 2, Date: "2024-01-18", Time: "2:30 PM", ProviderName: "Dr. Mike Chen", Type: "Follow-up"},
	}
	past = []Appointment{
		{ID: 3, Date: "2024-01-10", Time: "11:00 AM", ProviderName: "Dr. Emily Brown", Type: "Initial Consultation"},
	}
	return upcoming, past
}
