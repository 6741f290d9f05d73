package mock

import (
	"strconv"

	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

// ParseJobFilters reads the job list query parameters shared by the live API
// and the mock layer.
func ParseJobFilters(query map[string]string) model.JobFilters {
	return model.JobFilters{
		Location:   query["location"],
		Skill:      query["skill"],
		SalaryMin:  parseFloat(query["salary_min"]),
		SalaryMax:  parseFloat(query["salary_max"]),
		SearchTerm: query["search"],
	}
}

// ParsePage reads page/limit query parameters, applying the API defaults.
func ParsePage(query map[string]string) model.PageRequest {
	return model.PageRequest{
		Page:  parseInt(query["page"], 1),
		Limit: parseInt(query["limit"], 10),
	}.Normalize()
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
