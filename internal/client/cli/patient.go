package cli

import (
	"context"
	"os"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// AddPatient prompts for the patient fields and submits the record.
// Doctors and super-administrators only; the backend re-checks the role.
func (a *App) AddPatient(ctx context.Context) error {
	if role := a.role(); role != models.RoleDoctor && role != models.RoleSuperAdmin {
		printlnFn("Only doctors and administrators can add patients")
		return nil
	}

	var rec models.PatientRecord
	prompts := []struct {
		label string
		dst   *string
	}{
		{"First name", &rec.FirstName},
		{"Last name", &rec.LastName},
		{"Document ID", &rec.DocumentID},
		{"Email", &rec.Email},
		{"Phone", &rec.Phone},
		{"Birth date (YYYY-MM-DD)", &rec.BirthDate},
	}

	for _, p := range prompts {
		value, err := GetSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		*p.dst = value
	}

	if err := a.patService.Create(ctx, rec); err != nil {
		printlnFn("Could not create patient:", err.Error())
		return err
	}

	printlnFn("Patient record created")
	return nil
}
