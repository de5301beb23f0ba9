package reservation

// Reservation is a visitor's local claim on a scheduled class. Name, day and
// time are denormalized from the schedule so the list renders without catalog
// lookups. ReservedAt is an RFC 3339 instant.
type Reservation struct {
	ClassID    string `json:"classId"`
	ClassName  string `json:"className"`
	Day        string `json:"day"`
	Time       string `json:"time"`
	ReservedAt string `json:"reservedAt"`
}
