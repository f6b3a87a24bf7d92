package api

import (
	"fmt"

	"github.com/dmitrijs2005/dropwatch/internal/client/format"
	"github.com/dmitrijs2005/dropwatch/internal/client/recommend"
	"github.com/dmitrijs2005/dropwatch/internal/client/session"
)

// Record is a loosely typed row as returned by the backend.
type Record map[string]any

// String returns the field as display text, "" when absent.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		if _, ok := format.ToNumber(v); ok {
			return format.Number(v, -1)
		}
		return fmt.Sprint(v)
	}
}

func (r Record) Risk() format.RiskLevel {
	if s, ok := r["dropout_risk"].(string); ok && s != "" {
		return format.RiskLevel(s)
	}
	return format.RiskUnknown
}

type LoginRequest struct {
	UserID   string       `json:"user_id"`
	UserType session.Role `json:"user_type"`
	Password string       `json:"password"`
}

type LoginResponse struct {
	Success  bool         `json:"success"`
	Token    string       `json:"token"`
	UserType session.Role `json:"user_type"`
	UserID   any          `json:"user_id"`
}

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Stats struct {
	Statistics map[string]int `json:"statistics"`
	Status     string         `json:"status"`
}

// StudentProfile is the student row together with its prediction row.
type StudentProfile struct {
	Student     Record `json:"student"`
	Predictions Record `json:"predictions"`
}

func (p *StudentProfile) Risk() format.RiskLevel {
	return p.Predictions.Risk()
}

func (p *StudentProfile) Score() string {
	return format.FormatScore(p.Predictions["dropout_risk_score"])
}

// Recommendations are the prediction's recommendations, normalized.
func (p *StudentProfile) Recommendations() []string {
	return recommend.Parse(p.Predictions["recommendations"])
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

type StudentPage struct {
	Students   []Record   `json:"students"`
	Pagination Pagination `json:"pagination"`
	// Page is set by the admin listing, which has no pagination block.
	Page int `json:"page"`
}

// StudentQuery filters a student listing. Zero values are left out.
type StudentQuery struct {
	Page    int
	PerPage int
	Risk    format.RiskLevel
	Branch  string
	Year    int
}
