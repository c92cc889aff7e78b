// Package barriers holds the barrier-log domain vocabulary: the column
// names produced by the referral form, the normalization rules applied
// after flattening, and the PHI-free public column set.
package barriers

import (
	"regexp"

	"github.com/xunman0/BarrierLog/internal/domain/dataset"
)

// Canonical column names for the barrier referral form. The remote form
// labels map onto these via the flattening slug rules.
const (
	ColDate          = "date"
	ColSubmissionTyp = "submission_type"
	ColAge           = "age"
	ColSex           = "sex"
	ColEthnicity     = "ethnicity"
	ColZipcode       = "zipcode"
	ColDescription   = "barrier_description"
	ColBarrierList   = "barrier_list"
	ColBarrierCause  = "barrier_cause"
	ColSolution      = "barrier_solution"
	ColSolutionPath  = "solution_path"
	ColReferringOrg  = "referring_org"
	ColStaffName     = "referring_staff"
	ColStaffEmail    = "staff_email"
	ColStaffPhone    = "staff_phone"
	ColFamilyContact = "family_contact"
	ColFamilyAddress = "family_address"
	ColFamilyPhone   = "family_phone"
	ColFamilyEmail   = "family_email"
)

// Canonical submission types.
const (
	TypeBarrierLog   = "Barrier Log"
	TypeSelfReferral = "Self-Referral"
	TypeOrgReferral  = "Organization Referral"
)

// PublicColumns is the PHI-free column set shown in the raw-data table
// and the CSV download. Contact details for families and referring staff
// stay inside the dataset and are never rendered or exported.
func PublicColumns() []string {
	return []string{
		ColDate, ColSubmissionTyp, ColAge, ColSex, ColEthnicity, ColZipcode,
		ColDescription, ColBarrierList, ColBarrierCause, ColSolution, ColSolutionPath,
	}
}

// NormalizeSubmissionType maps form variants onto the three canonical
// submission types. The legacy "Barrier Log Only (non-referral)" option
// folds into "Barrier Log"; anything unrecognized defaults to
// "Self-Referral", matching how the form was historically filled out.
func NormalizeSubmissionType(raw string) string {
	switch raw {
	case TypeBarrierLog, TypeSelfReferral, TypeOrgReferral:
		return raw
	case "Barrier Log Only (non-referral)":
		return TypeBarrierLog
	default:
		return TypeSelfReferral
	}
}

var (
	trailingZip = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)
	// Respondents are concentrated in 9xxxx ZIP territory; when the zip
	// field is blank the address often still contains one.
	embeddedZip = regexp.MustCompile(`\b9\d{4}(?:-\d{4})?\b`)
)

// ZipFromAddress extracts a ZIP code from a free-text address: the last
// five characters if they look like a ZIP, otherwise the first embedded
// 9xxxx pattern. Returns "" when nothing matches.
func ZipFromAddress(address string) string {
	if len(address) >= 5 {
		tail := address[len(address)-5:]
		if trailingZip.MatchString(tail) {
			return tail
		}
	}
	return embeddedZip.FindString(address)
}

// Normalize applies the barrier-log rules to flattened submissions:
// submission types are canonicalized and missing zipcodes are recovered
// from the family address. It mutates the given rows and returns them.
func Normalize(subs []dataset.Submission) []dataset.Submission {
	for _, s := range subs {
		if v, ok := s.Fields[ColSubmissionTyp]; ok {
			s.Fields[ColSubmissionTyp] = dataset.Category(NormalizeSubmissionType(v.Text))
		}
		zip := s.Fields[ColZipcode]
		addr := s.Fields[ColFamilyAddress]
		if zip.IsZero() && !addr.IsZero() {
			if z := ZipFromAddress(addr.Text); z != "" {
				s.Fields[ColZipcode] = dataset.Category(z)
			}
		}
	}
	return subs
}
