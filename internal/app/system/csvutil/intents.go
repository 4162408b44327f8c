// internal/app/system/csvutil/intents.go
package csvutil

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/talentboard/careerhub/internal/app/store/queries/intentqueries"
)

// intentHeader is the column order for registration-intent exports.
var intentHeader = []string{
	"organization_name", "organization_type", "status",
	"email", "contact_name", "contact_phone", "city", "state",
	"applicant_name", "applicant_email", "has_admin_institute",
	"created_at",
}

// WriteIntents streams the registration-intent listing as CSV, one row per
// intent with the applicant join flattened in.
func WriteIntents(w io.Writer, items []intentqueries.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(intentHeader); err != nil {
		return err
	}
	for _, it := range items {
		var applicantName, applicantEmail string
		if it.User != nil {
			applicantName = it.User.FullName
			applicantEmail = it.User.Email
		}
		hasAdmin := "no"
		if it.HasAdminInstitute {
			hasAdmin = "yes"
		}
		row := []string{
			it.OrganizationName,
			it.OrganizationType,
			it.Status,
			it.Email,
			it.ContactName,
			it.ContactPhone,
			it.City,
			it.State,
			applicantName,
			applicantEmail,
			hasAdmin,
			it.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
