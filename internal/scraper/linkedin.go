// Package scraper extracts job posting fields from public LinkedIn job
// pages. It is a convenience for pre-filling the submission form; the
// verification core never depends on it.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/redis/go-redis/v9"

	"jobshield/verify-service/internal/posting"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	fetchTimeout = 10 * time.Second
	cacheTTL     = time.Hour
)

var (
	jobIDRe  = regexp.MustCompile(`/jobs/view/(\d+)`)
	salaryRe = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?(?:\s*-\s*\$[\d,]+(?:\.\d{2})?)?`)

	sectionHeaderRe = regexp.MustCompile(`(?i)\b(Requirements|Qualifications|Skills|What You'll Need|You Have|Must Have|Benefits|Perks|What We Offer|About the Role|Job Description|Responsibilities)\b`)
	requirementsRe  = regexp.MustCompile(`(?i)^(Requirements|Qualifications|Skills|What You'll Need|You Have|Must Have)`)
	benefitsRe      = regexp.MustCompile(`(?i)^(Benefits|Perks|What We Offer)`)
)

// LinkedIn fetches and parses public LinkedIn job pages, caching parsed
// results in Redis by URL so repeated lookups skip the network.
type LinkedIn struct {
	rdb *redis.Client
}

// NewLinkedIn constructs a scraper. rdb may be nil to disable caching.
func NewLinkedIn(rdb *redis.Client) *LinkedIn {
	return &LinkedIn{rdb: rdb}
}

// Scrape extracts posting fields from the job page at url.
func (s *LinkedIn) Scrape(ctx context.Context, url string) (posting.Posting, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey(url)).Result(); err == nil {
			var p posting.Posting
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return p, nil
			}
		}
	}

	p, err := s.fetch(url)
	if err != nil {
		return posting.Posting{}, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(p); err == nil {
			if err := s.rdb.Set(ctx, cacheKey(url), raw, cacheTTL).Err(); err != nil {
				slog.Warn("scrape cache write failed", "url", url, "error", err)
			}
		}
	}

	return p, nil
}

func cacheKey(url string) string { return "scrape:" + url }

func (s *LinkedIn) fetch(url string) (posting.Posting, error) {
	p := posting.Posting{JobPostingSource: "LinkedIn"}
	if m := jobIDRe.FindStringSubmatch(url); m != nil {
		p.JobIDOrRefCode = m[1]
	}

	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(fetchTimeout)

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	c.OnHTML("h1.top-card-layout__title", func(e *colly.HTMLElement) {
		p.JobTitle = squeeze(e.Text)
	})
	c.OnHTML("a.topcard__org-name-link", func(e *colly.HTMLElement) {
		p.CompanyName = squeeze(e.Text)
		if href := e.Attr("href"); href != "" {
			p.CompanySocialMediaLinks = append(p.CompanySocialMediaLinks, href)
			if strings.Contains(href, "linkedin.com") {
				p.CompanyWebsite = href
			}
		}
	})
	c.OnHTML("span.posted-time-ago__text", func(e *colly.HTMLElement) {
		p.PostingDate = squeeze(e.Text)
	})
	c.OnHTML("span.topcard__flavor--bullet", func(e *colly.HTMLElement) {
		if p.JobLocation == "" {
			p.JobLocation = squeeze(e.Text)
		}
	})
	c.OnHTML("span.workplace-type", func(e *colly.HTMLElement) {
		p.RemoteStatus = capitalize(squeeze(e.Text))
	})
	c.OnHTML("div.show-more-less-html__markup", func(e *colly.HTMLElement) {
		full := squeeze(e.Text)
		desc, reqs, bens := splitDescription(full)
		p.JobDescription = desc
		p.Requirements = reqs
		p.Benefits = bens
		if salaries := salaryRe.FindAllString(full, -1); len(salaries) > 0 {
			p.SalaryInfoRaw = strings.Join(salaries, ", ")
		}
	})
	c.OnHTML("ul.description__job-criteria-list li", func(e *colly.HTMLElement) {
		header := strings.ToLower(squeeze(e.ChildText("h3")))
		value := squeeze(e.ChildText("span"))
		switch {
		case strings.Contains(header, "employment type"):
			p.EmploymentType = value
		case strings.Contains(header, "job function"):
			p.JobFunction = value
		case strings.Contains(header, "industries"):
			p.Industry = value
		case strings.Contains(header, "seniority level"):
			p.RequiredExperience = value
		}
	})

	if err := c.Visit(url); err != nil {
		return posting.Posting{}, fmt.Errorf("visit %s: %w", url, err)
	}
	if fetchErr != nil {
		return posting.Posting{}, fmt.Errorf("fetch %s: %w", url, fetchErr)
	}

	return p, nil
}

// splitDescription cuts the free-flowing description block at section
// headers and buckets each section as description, requirements or
// benefits. Text before the first recognized header stays in the
// description.
func splitDescription(full string) (description, requirements, benefits string) {
	if full == "" {
		return "", "", ""
	}

	starts := sectionHeaderRe.FindAllStringIndex(full, -1)
	var sections []string
	if len(starts) == 0 {
		sections = []string{full}
	} else {
		prev := 0
		for _, loc := range starts {
			if loc[0] > prev {
				sections = append(sections, strings.TrimSpace(full[prev:loc[0]]))
			}
			prev = loc[0]
		}
		sections = append(sections, strings.TrimSpace(full[prev:]))
	}

	var descParts, reqParts, benParts []string
	for _, section := range sections {
		if section == "" {
			continue
		}
		switch {
		case requirementsRe.MatchString(section):
			reqParts = append(reqParts, section)
		case benefitsRe.MatchString(section):
			benParts = append(benParts, section)
		default:
			descParts = append(descParts, section)
		}
	}

	description = strings.Join(descParts, " ")
	if description == "" {
		description = full
	}
	return description, strings.Join(reqParts, " "), strings.Join(benParts, " ")
}

var spacesRe = regexp.MustCompile(`\s+`)

func squeeze(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
