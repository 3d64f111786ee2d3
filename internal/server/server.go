// Package server implements the HTTP API for the verify service.
//
// Routes:
//
//	GET  /health            → liveness probe
//	POST /api/v1/verify     → run a posting through the verification pipeline
//	POST /api/v1/scrape     → pre-fill posting fields from a LinkedIn job URL
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"jobshield/verify-service/internal/classifier"
	"jobshield/verify-service/internal/posting"
	"jobshield/verify-service/internal/rules"
	"jobshield/verify-service/internal/scraper"
	"jobshield/verify-service/internal/store"
)

// Server holds shared dependencies for all routes.
type Server struct {
	engine   *rules.Engine
	clf      classifier.Classifier
	subs     *store.Submissions
	linkedin *scraper.LinkedIn
	rdb      *redis.Client
}

// New returns a configured Server. subs, linkedin and rdb may be nil;
// the corresponding side features degrade gracefully.
func New(engine *rules.Engine, clf classifier.Classifier, subs *store.Submissions, linkedin *scraper.LinkedIn, rdb *redis.Client) *Server {
	return &Server{engine: engine, clf: clf, subs: subs, linkedin: linkedin, rdb: rdb}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.health)

	api := r.Group("/api/v1")
	api.POST("/verify", s.verify)
	api.POST("/scrape", s.scrape)

	return r
}

// ─── Handlers ────────────────────────────────────────────────────────────────

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "verify-service"})
}

// verifyResponse is the rules.Result plus the stored submission id,
// when persistence succeeded.
type verifyResponse struct {
	rules.Result
	SubmissionID string `json:"submission_id,omitempty"`
}

func (s *Server) verify(c *gin.Context) {
	p, ok := bindPosting(c)
	if !ok {
		return
	}

	prior, err := s.clf.Predict(c.Request.Context(), p.CombinedText())
	if err != nil {
		log.Printf("[verify] classifier call failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "classifier unavailable"})
		return
	}

	result := s.engine.Verify(p, prior)
	resp := verifyResponse{Result: result}

	if s.subs != nil {
		id, err := s.subs.Insert(c.Request.Context(), p, result.FinalLabel == rules.LabelReal)
		if err != nil {
			// Non-fatal: the verdict is still returned
			log.Printf("[verify] submission insert failed: %v", err)
		} else {
			resp.SubmissionID = id
		}
	}

	if s.rdb != nil {
		event, _ := json.Marshal(map[string]any{
			"type":             "EVENT_POSTING_VERIFIED",
			"job_title":        p.JobTitle,
			"final_label":      result.FinalLabel,
			"override_applied": result.OverrideApplied,
		})
		if err := s.rdb.Publish(c.Request.Context(), "EVENT_POSTING_VERIFIED", event).Err(); err != nil {
			log.Printf("[verify] publish EVENT_POSTING_VERIFIED failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) scrape(c *gin.Context) {
	if s.linkedin == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scraping disabled"})
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain url"})
		return
	}

	p, err := s.linkedin.Scrape(c.Request.Context(), body.URL)
	if err != nil {
		log.Printf("[scraper] scrape %s failed: %v", body.URL, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not scrape job page"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// bindPosting accepts either a JSON posting body or a classic HTML
// form submission, so both API clients and the legacy form work.
func bindPosting(c *gin.Context) (posting.Posting, bool) {
	ct := c.ContentType()
	if ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data" {
		var err error
		if ct == "multipart/form-data" {
			err = c.Request.ParseMultipartForm(1 << 20)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form body"})
			return posting.Posting{}, false
		}
		form := make(map[string]string, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
		return posting.FromForm(form), true
	}

	var p posting.Posting
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return posting.Posting{}, false
	}
	return p, true
}
