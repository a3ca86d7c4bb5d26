package models

// PatientRecord is the payload for creating a patient on the backend.
// ClientID is a client-generated idempotency key so a retried submission
// does not create a duplicate record.
type PatientRecord struct {
	ClientID   string `json:"client_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
}
