// Package api implements the typed client for the Rigger REST API: request
// construction, response envelope decoding, error classification, and the
// one-shot token refresh performed on authorization failures.
package api

// Method is the HTTP method of an endpoint.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// Endpoint describes a logical API call before it becomes a transport-level
// request. Values are immutable; the With helpers return copies.
type Endpoint struct {
	Path         string
	Method       Method
	Query        map[string]string
	Body         any
	RequiresAuth bool
}

// WithBody returns a copy of the endpoint carrying a JSON-serializable body.
func (e Endpoint) WithBody(body any) Endpoint {
	e.Body = body
	return e
}

// WithQuery returns a copy of the endpoint carrying query parameters.
func (e Endpoint) WithQuery(query map[string]string) Endpoint {
	e.Query = query
	return e
}

// Predefined endpoints mirror the public API surface.

func Login() Endpoint {
	return Endpoint{Path: "auth/login", Method: MethodPost}
}

func Register() Endpoint {
	return Endpoint{Path: "auth/register", Method: MethodPost}
}

func RefreshToken() Endpoint {
	return Endpoint{Path: "auth/refresh", Method: MethodPost}
}

func GetUserProfile() Endpoint {
	return Endpoint{Path: "users/profile", Method: MethodGet, RequiresAuth: true}
}

func UpdateUserProfile() Endpoint {
	return Endpoint{Path: "users/profile", Method: MethodPut, RequiresAuth: true}
}

func GetJobs() Endpoint {
	return Endpoint{Path: "jobs", Method: MethodGet, RequiresAuth: true}
}

func CreateJob() Endpoint {
	return Endpoint{Path: "jobs", Method: MethodPost, RequiresAuth: true}
}

func GetJob(id string) Endpoint {
	return Endpoint{Path: "jobs/" + id, Method: MethodGet, RequiresAuth: true}
}

func ApplyToJob(id string) Endpoint {
	return Endpoint{Path: "jobs/" + id + "/apply", Method: MethodPost, RequiresAuth: true}
}

func GetUserApplications() Endpoint {
	return Endpoint{Path: "applications/user", Method: MethodGet, RequiresAuth: true}
}

func GetJobApplications(jobID string) Endpoint {
	return Endpoint{Path: "applications/job/" + jobID, Method: MethodGet, RequiresAuth: true}
}

func UpdateApplicationStatus(id string) Endpoint {
	return Endpoint{Path: "applications/" + id + "/status", Method: MethodPut, RequiresAuth: true}
}

func GetBookings() Endpoint {
	return Endpoint{Path: "bookings", Method: MethodGet, RequiresAuth: true}
}

func GetBooking(id string) Endpoint {
	return Endpoint{Path: "bookings/" + id, Method: MethodGet, RequiresAuth: true}
}

func CreateBooking() Endpoint {
	return Endpoint{Path: "bookings", Method: MethodPost, RequiresAuth: true}
}

func UpdateBookingStatus(id string) Endpoint {
	return Endpoint{Path: "bookings/" + id + "/status", Method: MethodPut, RequiresAuth: true}
}

func GetReviews() Endpoint {
	return Endpoint{Path: "reviews", Method: MethodGet, RequiresAuth: true}
}

func CreateReview() Endpoint {
	return Endpoint{Path: "reviews", Method: MethodPost, RequiresAuth: true}
}

func UpdateReview(id string) Endpoint {
	return Endpoint{Path: "reviews/" + id, Method: MethodPut, RequiresAuth: true}
}

func GetPayments() Endpoint {
	return Endpoint{Path: "payments", Method: MethodGet, RequiresAuth: true}
}

func CreatePayment() Endpoint {
	return Endpoint{Path: "payments", Method: MethodPost, RequiresAuth: true}
}

func UpdatePaymentStatus(id string) Endpoint {
	return Endpoint{Path: "payments/" + id + "/status", Method: MethodPut, RequiresAuth: true}
}
