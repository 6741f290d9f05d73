package mock

import (
	"time"

	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

// Fixture datasets mirror realistic marketplace content so previews and UI
// tests have something meaningful to render.

func defaultUsers(now time.Time) []model.User {
	return []model.User{
		{
			ID:        "user1",
			Email:     "john.rigger@example.com",
			FirstName: "John",
			LastName:  "Smith",
			Role:      model.RoleUser,
			Profile: &model.UserProfile{
				Bio:            "Experienced rigger with 15+ years in mining and construction.",
				Skills:         []string{"Advanced Rigging", "Crane Operation", "Safety Management"},
				Certifications: []string{"Advanced Rigging", "Dogger", "White Card"},
				Experience:     15,
				Location:       "Perth, WA",
				AvatarURL:      "https://example.com/avatars/john.jpg",
			},
			CreatedAt: now.AddDate(-1, 0, 0),
			UpdatedAt: now,
		},
		{
			ID:        "employer1",
			Email:     "sarah.manager@mining.com",
			FirstName: "Sarah",
			LastName:  "Johnson",
			Role:      model.RoleEmployer,
			Profile: &model.UserProfile{
				Bio:            "Senior Project Manager at Perth Mining Corp.",
				Skills:         []string{"Project Management", "Team Leadership"},
				Certifications: []string{"Project Management", "Safety Officer"},
				Experience:     10,
				Location:       "Perth, WA",
				AvatarURL:      "https://example.com/avatars/sarah.jpg",
			},
			CreatedAt: now.AddDate(-2, 0, 0),
			UpdatedAt: now,
		},
		{
			ID:        "user2",
			Email:     "mike.crane@example.com",
			FirstName: "Mike",
			LastName:  "Wilson",
			Role:      model.RoleUser,
			Profile: &model.UserProfile{
				Bio:            "Certified crane operator and rigger specializing in heavy machinery.",
				Skills:         []string{"Crane Operation", "Heavy Lifting", "Site Coordination"},
				Certifications: []string{"Crane Operator", "Advanced Rigging", "HR License"},
				Experience:     8,
				Location:       "Kalgoorlie, WA",
				AvatarURL:      "https://example.com/avatars/mike.jpg",
			},
			CreatedAt: now.AddDate(0, -8, 0),
			UpdatedAt: now,
		},
	}
}

func defaultJobs(now time.Time) []model.Job {
	return []model.Job{
		{
			ID:          "job1",
			Title:       "Senior Rigger - Gold Mine Site",
			Company:     "Perth Mining Corp",
			Description: "We are seeking an experienced senior rigger for our gold mining operation in Kalgoorlie. The role involves complex rigging operations, equipment maintenance, and mentoring junior staff.",
			Requirements: []string{
				"5+ years experience in mining rigging",
				"Advanced Rigging certification",
				"Working at Heights certification",
				"Current medical and drug & alcohol clearance",
			},
			Skills:      []string{"Advanced Rigging", "Heavy Lifting", "Equipment Maintenance"},
			Location:    "Kalgoorlie, WA",
			Salary:      95000,
			SalaryRange: &model.SalaryRange{Min: 85000, Max: 105000},
			EmployerID:  "employer1",
			Status:      model.JobActive,
			CreatedAt:   now.AddDate(0, 0, -5),
			UpdatedAt:   now,
		},
		{
			ID:          "job2",
			Title:       "Crane Operator & Rigger",
			Company:     "Industrial Solutions WA",
			Description: "Multi-skilled position combining crane operation and rigging duties for infrastructure projects across Perth metropolitan area.",
			Requirements: []string{
				"Crane Operator license",
				"Intermediate Rigging certification",
				"Clean driving record",
				"Flexible with travel",
			},
			Skills:      []string{"Crane Operation", "Rigging", "Mobile Equipment"},
			Location:    "Perth, WA",
			Salary:      78000,
			SalaryRange: &model.SalaryRange{Min: 72000, Max: 85000},
			EmployerID:  "employer1",
			Status:      model.JobActive,
			CreatedAt:   now.AddDate(0, 0, -2),
			UpdatedAt:   now,
		},
		{
			ID:          "job3",
			Title:       "Emergency Rigger - Shutdown",
			Company:     "Port Hedland Operations",
			Description: "Urgent requirement for experienced rigger for planned shutdown at iron ore facility. Accommodation and travel provided.",
			Requirements: []string{
				"Immediate availability",
				"Advanced Rigging certification",
				"Confined Space entry",
				"Experience with conveyor systems",
			},
			Skills:     []string{"Emergency Response", "Shutdown Work", "Conveyor Systems"},
			Location:   "Port Hedland, WA",
			Salary:     120000,
			EmployerID: "employer1",
			Status:     model.JobActive,
			CreatedAt:  now.Add(-6 * time.Hour),
			UpdatedAt:  now,
		},
	}
}

func defaultApplications(now time.Time) []model.Application {
	return []model.Application{
		{
			ID:          "app1",
			JobID:       "job1",
			ApplicantID: "user1",
			CoverLetter: "I am very interested in this senior rigger position. With over 15 years of experience in mining operations, I believe I would be a valuable addition to your team.",
			ResumeURL:   "https://example.com/resumes/john_smith.pdf",
			Status:      model.ApplicationReviewed,
			AppliedAt:   now.AddDate(0, 0, -3),
		},
		{
			ID:          "app2",
			JobID:       "job2",
			ApplicantID: "user2",
			CoverLetter: "As a certified crane operator with 8 years of rigging experience, I am excited about this opportunity to work on infrastructure projects.",
			Status:      model.ApplicationPending,
			AppliedAt:   now.AddDate(0, 0, -1),
		},
	}
}

func defaultBookings(now time.Time) []model.Booking {
	confirmed := now.AddDate(0, 0, -1)
	return []model.Booking{
		{
			ID:            "booking1",
			JobID:         "job1",
			WorkerID:      "user1",
			BusinessID:    "employer1",
			ApplicationID: "app1",
			StartDate:     now.AddDate(0, 0, 7),
			EndDate:       now.AddDate(0, 0, 21),
			SiteName:      "Goldmine Site 1",
			SiteAddress:   "Mining Lease 123, Kalgoorlie WA 6430",
			Status:        model.BookingConfirmed,
			ConfirmedAt:   &confirmed,
		},
	}
}

func defaultReviews(now time.Time) []model.Review {
	return []model.Review{
		{
			ID:         "review1",
			BookingID:  "booking1",
			ReviewerID: "employer1",
			RevieweeID: "user1",
			Type:       model.ReviewBusinessToWorker,
			Rating:     5,
			Title:      "Exceptional Performance",
			Comment:    "John exceeded all expectations. His technical expertise and safety awareness were outstanding. Would definitely hire again.",
			Status:     model.ReviewApproved,
			IsPublic:   true,
			IsVerified: true,
			CreatedAt:  now.AddDate(0, 0, -1),
		},
	}
}

func defaultPayments(now time.Time) []model.Payment {
	return []model.Payment{
		{
			ID:              "payment1",
			JobID:           "job1",
			PayerID:         "employer1",
			PayeeID:         "user1",
			Amount:          15000.00,
			Currency:        "AUD",
			Method:          model.PaymentBankTransfer,
			ReferenceNumber: "PAY-20250126-001",
			Notes:           "Payment for 2-week booking period",
			Status:          model.PaymentCompleted,
			CreatedAt:       now.AddDate(0, 0, -2),
		},
	}
}
