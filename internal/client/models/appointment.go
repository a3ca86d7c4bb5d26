package models

import "time"

// Appointment is a read-only projection of a scheduled appointment.
// Scheduling rules live on the backend; the client only renders and caches.
type Appointment struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	Specialty   string    `json:"specialty"`
	StartsAt    time.Time `json:"starts_at"`
	Status      string    `json:"status"`
}
