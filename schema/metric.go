package schema

// Overview is the coordinator dashboard summary
type Overview struct {
	ActiveRequests     int `json:"activeRequests"`
	UrgentRequests     int `json:"urgentRequests"`
	HighRequests       int `json:"highRequests"`
	FulfilledToday     int `json:"fulfilledToday"`
	ActiveVolunteers   int `json:"activeVolunteers"`
	AvgResponseMinutes int `json:"avgResponseMinutes"`
}
