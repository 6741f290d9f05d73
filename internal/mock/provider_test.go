package mock

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

func TestProvider_FilterByLocation(t *testing.T) {
	p := NewProvider()

	result := p.Jobs(model.JobFilters{Location: "perth"}, model.PageRequest{})
	require.Len(t, result.Data, 1)
	require.Equal(t, "job2", result.Data[0].ID)
	require.Equal(t, 1, result.Pagination.Total)
}

func TestProvider_FilterBySkill(t *testing.T) {
	p := NewProvider()

	result := p.Jobs(model.JobFilters{Skill: "crane"}, model.PageRequest{})
	require.Len(t, result.Data, 1)
	require.Equal(t, "job2", result.Data[0].ID)
}

func TestProvider_FilterBySalaryRange(t *testing.T) {
	p := NewProvider()

	result := p.Jobs(model.JobFilters{SalaryMin: 90000}, model.PageRequest{})
	ids := jobIDs(result.Data)
	require.ElementsMatch(t, []string{"job1", "job3"}, ids)

	result = p.Jobs(model.JobFilters{SalaryMax: 100000}, model.PageRequest{})
	ids = jobIDs(result.Data)
	require.ElementsMatch(t, []string{"job1", "job2"}, ids)
}

func TestProvider_SalaryMaxExcludesUnpricedJobs(t *testing.T) {
	p := NewProvider()
	p.SetJobs([]model.Job{
		{ID: "priced", Salary: 50000},
		{ID: "unpriced"},
	})

	result := p.Jobs(model.JobFilters{SalaryMax: 60000}, model.PageRequest{})
	require.Equal(t, []string{"priced"}, jobIDs(result.Data))
}

func TestProvider_SearchMatchesTitleDescriptionCompany(t *testing.T) {
	p := NewProvider()

	byTitle := p.Jobs(model.JobFilters{SearchTerm: "emergency"}, model.PageRequest{})
	require.Equal(t, []string{"job3"}, jobIDs(byTitle.Data))

	byCompany := p.Jobs(model.JobFilters{SearchTerm: "industrial solutions"}, model.PageRequest{})
	require.Equal(t, []string{"job2"}, jobIDs(byCompany.Data))

	byDescription := p.Jobs(model.JobFilters{SearchTerm: "iron ore"}, model.PageRequest{})
	require.Equal(t, []string{"job3"}, jobIDs(byDescription.Data))
}

func TestProvider_Pagination(t *testing.T) {
	p := NewProvider()
	jobs := make([]model.Job, 25)
	for i := range jobs {
		jobs[i] = model.Job{ID: fmt.Sprintf("job%02d", i)}
	}
	p.SetJobs(jobs)

	first := p.Jobs(model.JobFilters{}, model.PageRequest{Page: 1, Limit: 10})
	require.Len(t, first.Data, 10)
	require.Equal(t, 25, first.Pagination.Total)
	require.Equal(t, 3, first.Pagination.Pages)
	require.Equal(t, "job00", first.Data[0].ID)

	last := p.Jobs(model.JobFilters{}, model.PageRequest{Page: 3, Limit: 10})
	require.Len(t, last.Data, 5)
	require.Equal(t, "job20", last.Data[0].ID)

	beyond := p.Jobs(model.JobFilters{}, model.PageRequest{Page: 9, Limit: 10})
	require.Empty(t, beyond.Data)
	require.Equal(t, 25, beyond.Pagination.Total)
}

func TestProvider_PaginationDefaults(t *testing.T) {
	p := NewProvider()

	result := p.Jobs(model.JobFilters{}, model.PageRequest{})
	require.Equal(t, 1, result.Pagination.Page)
	require.Equal(t, 10, result.Pagination.Limit)
	require.Equal(t, 3, result.Pagination.Total)
	require.Equal(t, 1, result.Pagination.Pages)
}

func TestProvider_TotalReflectsFilteredCount(t *testing.T) {
	p := NewProvider()
	jobs := make([]model.Job, 30)
	for i := range jobs {
		location := "Perth, WA"
		if i%2 == 0 {
			location = "Darwin, NT"
		}
		jobs[i] = model.Job{ID: fmt.Sprintf("job%02d", i), Location: location}
	}
	p.SetJobs(jobs)

	result := p.Jobs(model.JobFilters{Location: "perth"}, model.PageRequest{Page: 1, Limit: 10})
	require.Len(t, result.Data, 10)
	require.Equal(t, 15, result.Pagination.Total)
	require.Equal(t, 2, result.Pagination.Pages)
}

func TestProvider_ApplyAndListApplications(t *testing.T) {
	p := NewProvider()

	app := p.Apply("job1", "user2", model.CreateApplicationRequest{CoverLetter: "keen"})
	require.Equal(t, model.ApplicationPending, app.Status)
	require.NotEmpty(t, app.ID)

	forUser := p.ApplicationsForUser("user2")
	require.Len(t, forUser, 2) // one fixture application plus the new one

	forJob := p.ApplicationsForJob("job1")
	ids := make([]string, 0, len(forJob))
	for _, a := range forJob {
		ids = append(ids, a.ID)
	}
	require.Contains(t, ids, app.ID)
}

func TestProvider_SetApplicationStatus(t *testing.T) {
	p := NewProvider()

	updated, ok := p.SetApplicationStatus("app2", model.ApplicationAccepted)
	require.True(t, ok)
	require.Equal(t, model.ApplicationAccepted, updated.Status)

	_, ok = p.SetApplicationStatus("missing", model.ApplicationAccepted)
	require.False(t, ok)
}

func TestProvider_BookingWrites(t *testing.T) {
	p := NewProvider()

	created := p.AddBooking(model.CreateBookingRequest{JobID: "job2", WorkerID: "user2"}, "employer1")
	require.Equal(t, model.BookingPending, created.Status)
	require.Nil(t, created.ConfirmedAt)

	confirmed, ok := p.SetBookingStatus(created.ID, model.UpdateBookingStatusRequest{Status: model.BookingConfirmed})
	require.True(t, ok)
	require.Equal(t, model.BookingConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)
}

func TestProvider_ReviewAndPaymentWrites(t *testing.T) {
	p := NewProvider()

	review := p.AddReview(model.CreateReviewRequest{
		BookingID:  "booking1",
		RevieweeID: "employer1",
		Type:       model.ReviewWorkerToBusiness,
		Rating:     4,
	}, "user1")
	require.Equal(t, model.ReviewPending, review.Status)
	require.Equal(t, "user1", review.ReviewerID)

	payment := p.AddPayment(model.CreatePaymentRequest{
		JobID:   "job1",
		PayeeID: "user1",
		Amount:  2500,
	}, "employer1")
	require.Equal(t, model.PaymentPending, payment.Status)
	require.Equal(t, "AUD", payment.Currency)

	settled, ok := p.SetPaymentStatus(payment.ID, model.UpdatePaymentStatusRequest{
		Status:          model.PaymentCompleted,
		ReferenceNumber: "PAY-TEST-001",
	})
	require.True(t, ok)
	require.Equal(t, model.PaymentCompleted, settled.Status)
	require.Equal(t, "PAY-TEST-001", settled.ReferenceNumber)
}

func TestProvider_UserLookups(t *testing.T) {
	p := NewProvider()

	user, ok := p.UserByEmail("JOHN.RIGGER@example.com")
	require.True(t, ok)
	require.Equal(t, "user1", user.ID)

	_, ok = p.UserByEmail("nobody@example.com")
	require.False(t, ok)

	// Unknown ids fall back to the first fixture user.
	require.Equal(t, "user1", p.Profile("ghost").ID)
}

func jobIDs(jobs []model.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
