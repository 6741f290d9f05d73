package mock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

func TestParseJobFilters(t *testing.T) {
	filters := ParseJobFilters(map[string]string{
		"location":   "Perth",
		"skill":      "Rigging",
		"salary_min": "80000",
		"salary_max": "120000.50",
		"search":     "crane",
	})

	require.Equal(t, model.JobFilters{
		Location:   "Perth",
		Skill:      "Rigging",
		SalaryMin:  80000,
		SalaryMax:  120000.50,
		SearchTerm: "crane",
	}, filters)

	require.Equal(t, model.JobFilters{}, ParseJobFilters(map[string]string{"salary_min": "not a number"}))
}

func TestParsePage(t *testing.T) {
	require.Equal(t, model.PageRequest{Page: 2, Limit: 25}, ParsePage(map[string]string{"page": "2", "limit": "25"}))
	require.Equal(t, model.PageRequest{Page: 1, Limit: 10}, ParsePage(nil))
	require.Equal(t, model.PageRequest{Page: 1, Limit: 10}, ParsePage(map[string]string{"page": "-3", "limit": "0"}))
}
