// Package store persists verified submissions.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobshield/verify-service/internal/posting"
)

// Submissions appends one row per verification to the submissions
// table, keeping the posting fields flattened to sanitized strings plus
// the binary real/fake outcome. It replaces nothing on conflict — every
// verification is its own record.
type Submissions struct {
	pool *pgxpool.Pool
}

// NewSubmissions constructs the repository.
func NewSubmissions(pool *pgxpool.Pool) *Submissions {
	return &Submissions{pool: pool}
}

// Insert records a verified posting and returns the new row id.
func (s *Submissions) Insert(ctx context.Context, p posting.Posting, isReal bool) (string, error) {
	fields, err := json.Marshal(Flatten(p))
	if err != nil {
		return "", fmt.Errorf("marshal submission fields: %w", err)
	}

	id := uuid.NewString()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO submissions (id, fields, is_real, created_at)
		 VALUES ($1, $2::jsonb, $3, NOW())`,
		id, string(fields), isReal,
	)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	return id, nil
}

// PruneOlderThan deletes submissions older than the retention window
// and returns how many rows were removed.
func (s *Submissions) PruneOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM submissions WHERE created_at < NOW() - $1::interval`,
		fmt.Sprintf("%d seconds", int64(retention.Seconds())),
	)
	if err != nil {
		return 0, fmt.Errorf("prune submissions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Flatten renders every posting field as a sanitized string keyed by
// its submission field name. List fields are joined; embedded newlines
// and commas are rewritten so downstream flat-file exports stay intact.
func Flatten(p posting.Posting) map[string]string {
	return map[string]string{
		"job_title":                  sanitize(p.JobTitle),
		"job_description":            sanitize(p.JobDescription),
		"requirements":               sanitize(p.Requirements),
		"benefits":                   sanitize(p.Benefits),
		"employment_type":            sanitize(p.EmploymentType),
		"required_experience":        sanitize(p.RequiredExperience),
		"required_education":         sanitize(p.RequiredEducation),
		"job_function":               sanitize(p.JobFunction),
		"industry":                   sanitize(p.Industry),
		"company_name":               sanitize(p.CompanyName),
		"company_website":            sanitize(p.CompanyWebsite),
		"company_profile":            sanitize(p.CompanyProfile),
		"company_size":               sanitize(p.CompanySize),
		"company_type":               sanitize(p.CompanyType),
		"company_founded_year":       sanitize(p.CompanyFoundedYear),
		"company_social_media_links": sanitize(strings.Join(p.CompanySocialMediaLinks, ", ")),
		"job_location":               sanitize(p.JobLocation),
		"interview_location":         sanitize(p.InterviewLocation),
		"remote_status":              sanitize(p.RemoteStatus),
		"relocation_assistance":      strconv.FormatBool(p.RelocationAssistance),
		"stock_options":              strconv.FormatBool(p.StockOptions),
		"relocation_package":         strconv.FormatBool(p.RelocationPackage),
		"logo_present":               strconv.FormatBool(p.LogoPresent),
		"external_reviews_available": strconv.FormatBool(p.ExternalReviewsAvailable),
		"profile_photos_included":    strconv.FormatBool(p.ProfilePhotosIncluded),
		"application_link_or_email":  sanitize(p.ApplicationLinkOrEmail),
		"application_method_type":    sanitize(p.ApplicationMethodType),
		"response_time_claimed":      sanitize(p.ResponseTimeClaimed),
		"application_deadline":       sanitize(p.ApplicationDeadline),
		"recruiter_name_or_agency":   sanitize(p.RecruiterNameOrAgency),
		"recruiter_contact_info":     sanitize(p.RecruiterContactInfo),
		"hiring_manager_name":        sanitize(p.HiringManagerName),
		"salary_info_raw":            sanitize(p.SalaryInfoRaw),
		"number_of_positions":        strconv.Itoa(p.NumberOfPositions),
		"attachments":                sanitize(strings.Join(p.Attachments, ", ")),
		"posting_frequency":          sanitize(p.PostingFrequency),
		"posting_consistency":        sanitize(p.PostingConsistency),
		"posting_date":               sanitize(p.PostingDate),
		"expiration_date":            sanitize(p.ExpirationDate),
		"job_id_or_ref_code":         sanitize(p.JobIDOrRefCode),
		"job_posting_source":         sanitize(p.JobPostingSource),
	}
}

// sanitize removes line breaks and field separators from a value.
func sanitize(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	return strings.ReplaceAll(v, ",", ";")
}
