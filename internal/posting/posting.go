// Package posting defines the job posting schema shared across the service.
package posting

import (
	"strconv"
	"strings"
)

// Posting is the unit of analysis: one submitted job advertisement.
//
// Every field is optional and defaults to its zero value. A Posting is
// constructed once from an inbound request and is read-only through the
// whole verification pipeline — detectors derive findings, they never
// write back.
type Posting struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	Requirements   string `json:"requirements"`
	Benefits       string `json:"benefits"`

	EmploymentType     string `json:"employment_type"`
	RequiredExperience string `json:"required_experience"`
	RequiredEducation  string `json:"required_education"`
	JobFunction        string `json:"job_function"`
	Industry           string `json:"industry"`

	CompanyName             string   `json:"company_name"`
	CompanyWebsite          string   `json:"company_website"`
	CompanyProfile          string   `json:"company_profile"`
	CompanySize             string   `json:"company_size"`
	CompanyType             string   `json:"company_type"`
	CompanyFoundedYear      string   `json:"company_founded_year"`
	CompanySocialMediaLinks []string `json:"company_social_media_links"`

	JobLocation       string `json:"job_location"`
	InterviewLocation string `json:"interview_location"`
	RemoteStatus      string `json:"remote_status"`

	RelocationAssistance     bool `json:"relocation_assistance"`
	StockOptions             bool `json:"stock_options"`
	RelocationPackage        bool `json:"relocation_package"`
	LogoPresent              bool `json:"logo_present"`
	ExternalReviewsAvailable bool `json:"external_reviews_available"`
	ProfilePhotosIncluded    bool `json:"profile_photos_included"`

	ApplicationLinkOrEmail string `json:"application_link_or_email"`
	ApplicationMethodType  string `json:"application_method_type"`
	ResponseTimeClaimed    string `json:"response_time_claimed"`
	ApplicationDeadline    string `json:"application_deadline"`

	RecruiterNameOrAgency string `json:"recruiter_name_or_agency"`
	RecruiterContactInfo  string `json:"recruiter_contact_info"`
	HiringManagerName     string `json:"hiring_manager_name"`

	SalaryInfoRaw     string   `json:"salary_info_raw"`
	NumberOfPositions int      `json:"number_of_positions"`
	Attachments       []string `json:"attachments"`

	PostingFrequency   string `json:"posting_frequency"`
	PostingConsistency string `json:"posting_consistency"`
	PostingDate        string `json:"posting_date"`
	ExpirationDate     string `json:"expiration_date"`
	JobIDOrRefCode     string `json:"job_id_or_ref_code"`
	JobPostingSource   string `json:"job_posting_source"`
}

// FromForm builds a Posting from a flat field-name → value map, as
// submitted by an HTML form. Missing fields stay at their zero value and
// malformed booleans/numbers are treated as absent — ingestion never fails.
func FromForm(form map[string]string) Posting {
	get := func(key string) string { return strings.TrimSpace(form[key]) }
	getBool := func(key string) bool {
		v, err := strconv.ParseBool(strings.TrimSpace(form[key]))
		return err == nil && v
	}
	getInt := func(key string) int {
		v, err := strconv.Atoi(strings.TrimSpace(form[key]))
		if err != nil {
			return 0
		}
		return v
	}
	getList := func(key string) []string {
		raw := strings.TrimSpace(form[key])
		if raw == "" {
			return nil
		}
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	return Posting{
		JobTitle:       get("job_title"),
		JobDescription: get("job_description"),
		Requirements:   get("requirements"),
		Benefits:       get("benefits"),

		EmploymentType:     get("employment_type"),
		RequiredExperience: get("required_experience"),
		RequiredEducation:  get("required_education"),
		JobFunction:        get("job_function"),
		Industry:           get("industry"),

		CompanyName:             get("company_name"),
		CompanyWebsite:          get("company_website"),
		CompanyProfile:          get("company_profile"),
		CompanySize:             get("company_size"),
		CompanyType:             get("company_type"),
		CompanyFoundedYear:      get("company_founded_year"),
		CompanySocialMediaLinks: getList("company_social_media_links"),

		JobLocation:       get("job_location"),
		InterviewLocation: get("interview_location"),
		RemoteStatus:      get("remote_status"),

		RelocationAssistance:     getBool("relocation_assistance"),
		StockOptions:             getBool("stock_options"),
		RelocationPackage:        getBool("relocation_package"),
		LogoPresent:              getBool("logo_present"),
		ExternalReviewsAvailable: getBool("external_reviews_available"),
		ProfilePhotosIncluded:    getBool("profile_photos_included"),

		ApplicationLinkOrEmail: get("application_link_or_email"),
		ApplicationMethodType:  get("application_method_type"),
		ResponseTimeClaimed:    get("response_time_claimed"),
		ApplicationDeadline:    get("application_deadline"),

		RecruiterNameOrAgency: get("recruiter_name_or_agency"),
		RecruiterContactInfo:  get("recruiter_contact_info"),
		HiringManagerName:     get("hiring_manager_name"),

		SalaryInfoRaw:     get("salary_info_raw"),
		NumberOfPositions: getInt("number_of_positions"),
		Attachments:       getList("attachments"),

		PostingFrequency:   get("posting_frequency"),
		PostingConsistency: get("posting_consistency"),
		PostingDate:        get("posting_date"),
		ExpirationDate:     get("expiration_date"),
		JobIDOrRefCode:     get("job_id_or_ref_code"),
		JobPostingSource:   get("job_posting_source"),
	}
}

// CombinedText concatenates the free-text fields in the order the
// classifier and every detector expect: title, description,
// requirements, benefits.
func (p Posting) CombinedText() string {
	return p.JobTitle + " " + p.JobDescription + " " + p.Requirements + " " + p.Benefits
}

// Contact returns the application contact string, falling back to the
// company website when no direct link or email was supplied.
func (p Posting) Contact() string {
	if p.ApplicationLinkOrEmail != "" {
		return p.ApplicationLinkOrEmail
	}
	return p.CompanyWebsite
}
