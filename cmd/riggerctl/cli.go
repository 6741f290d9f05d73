package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/config"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	"github.com/chasewhiterabbit/rigger-go/internal/services"
	"github.com/chasewhiterabbit/rigger-go/internal/session"
)

const usage = `Usage: riggerctl <command> [flags]

Commands:
  login        sign in with email and password
  register     create an account
  logout       clear the stored session
  whoami       show the stored identity and token expiry
  env          show, set, or reset the active environment
  profile      show the signed-in user's profile
  jobs         list job postings
  job          show a single job posting
  apply        apply to a job
  applications list your submitted applications
  bookings     list your bookings
  reviews      list reviews involving you
  payments     list payments involving you
`

// CLI dispatches subcommands over the service facades.
type CLI struct {
	cfg      *config.Config
	resolver *config.Resolver
	sessions *session.Store
	auth     *services.Auth
	users    *services.User
	jobs     *services.Job
	apps     *services.Application
	bookings *services.Booking
	reviews  *services.Review
	payments *services.Payment
	logger   *slog.Logger
	out      io.Writer
}

// NewCLI is used by Wire to assemble the command-line tool.
func NewCLI(
	cfg *config.Config,
	resolver *config.Resolver,
	sessions *session.Store,
	auth *services.Auth,
	users *services.User,
	jobs *services.Job,
	apps *services.Application,
	bookings *services.Booking,
	reviews *services.Review,
	payments *services.Payment,
	logger *slog.Logger,
) *CLI {
	return &CLI{
		cfg:      cfg,
		resolver: resolver,
		sessions: sessions,
		auth:     auth,
		users:    users,
		jobs:     jobs,
		apps:     apps,
		bookings: bookings,
		reviews:  reviews,
		payments: payments,
		logger:   logger.With("component", "cli"),
		out:      os.Stdout,
	}
}

// Run executes a single subcommand.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return c.login(ctx, rest)
	case "register":
		return c.register(ctx, rest)
	case "logout":
		return c.logout(ctx)
	case "whoami":
		return c.whoami()
	case "env":
		return c.env(rest)
	case "profile":
		return c.profile(ctx)
	case "jobs":
		return c.listJobs(ctx, rest)
	case "job":
		return c.showJob(ctx, rest)
	case "apply":
		return c.apply(ctx, rest)
	case "applications":
		return c.applications(ctx)
	case "bookings":
		return c.listBookings(ctx, rest)
	case "reviews":
		return c.listReviews(ctx, rest)
	case "payments":
		return c.listPayments(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}

func (c *CLI) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.auth.Login(ctx, *email, *password)
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(c.out, "signed in as %s (%s)\n", resp.User.Email, resp.User.ID)
	return nil
}

func (c *CLI) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.auth.Register(ctx, model.RegisterRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
	})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(c.out, "registered %s (%s)\n", resp.User.Email, resp.User.ID)
	return nil
}

func (c *CLI) logout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "signed out")
	return nil
}

func (c *CLI) whoami() error {
	if !c.sessions.IsAuthenticated() {
		fmt.Fprintln(c.out, "not signed in")
		return nil
	}
	id, _ := c.sessions.UserID()
	email, _ := c.sessions.UserEmail()
	fmt.Fprintf(c.out, "user: %s (%s)\n", email, id)
	if exp, ok := c.sessions.AccessTokenExpiry(); ok {
		fmt.Fprintf(c.out, "access token expires: %s\n", exp.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func (c *CLI) env(args []string) error {
	if len(args) == 0 || args[0] == "show" {
		settings := c.resolver.Settings()
		fmt.Fprintf(c.out, "environment: %s\n", c.resolver.Current().DisplayName())
		fmt.Fprintf(c.out, "base url:    %s\n", settings.BaseURL)
		return nil
	}
	switch args[0] {
	case "set":
		if len(args) < 2 {
			return errors.New("usage: env set <development|staging|production>")
		}
		env, ok := config.ParseEnvironment(args[1])
		if !ok {
			return fmt.Errorf("unknown environment %q", args[1])
		}
		c.resolver.SwitchTo(env)
		fmt.Fprintf(c.out, "environment set to %s\n", env.DisplayName())
		return nil
	case "reset":
		c.resolver.Reset()
		fmt.Fprintln(c.out, "environment reset to Production")
		return nil
	default:
		return fmt.Errorf("unknown env subcommand %q", args[0])
	}
}

func (c *CLI) profile(ctx context.Context) error {
	user, err := c.users.Profile(ctx)
	if err != nil {
		return describe(err)
	}
	return c.printJSON(user)
}

func (c *CLI) listJobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	location := fs.String("location", "", "filter by location")
	skill := fs.String("skill", "", "filter by required skill")
	salaryMin := fs.Float64("salary-min", 0, "minimum salary")
	salaryMax := fs.Float64("salary-max", 0, "maximum salary")
	search := fs.String("search", "", "free-text search")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := c.jobs.List(ctx, model.JobFilters{
		Location:   *location,
		Skill:      *skill,
		SalaryMin:  *salaryMin,
		SalaryMax:  *salaryMax,
		SearchTerm: *search,
	}, model.PageRequest{Page: *page, Limit: *limit})
	if err != nil {
		return describe(err)
	}

	for _, job := range result.Data {
		fmt.Fprintf(c.out, "%s  %-30s %-20s %s\n", job.ID, job.Title, job.Location, job.Company)
	}
	fmt.Fprintf(c.out, "page %d/%d (%d total)\n",
		result.Pagination.Page, result.Pagination.Pages, result.Pagination.Total)
	return nil
}

func (c *CLI) showJob(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: job <id>")
	}
	job, err := c.jobs.Get(ctx, args[0])
	if err != nil {
		return describe(err)
	}
	return c.printJSON(job)
}

func (c *CLI) apply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	jobID := fs.String("job", "", "job id to apply to")
	coverLetter := fs.String("cover-letter", "", "cover letter text")
	resumeURL := fs.String("resume-url", "", "link to a hosted resume")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := c.jobs.Apply(ctx, *jobID, *coverLetter, *resumeURL)
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(c.out, "application %s submitted (%s)\n", app.ID, app.Status)
	return nil
}

func (c *CLI) applications(ctx context.Context) error {
	apps, err := c.apps.ForUser(ctx)
	if err != nil {
		return describe(err)
	}
	return c.printJSON(apps)
}

func (c *CLI) listBookings(ctx context.Context, args []string) error {
	page, limit, err := parsePageFlags("bookings", args)
	if err != nil {
		return err
	}
	result, err := c.bookings.List(ctx, model.BookingFilters{}, model.PageRequest{Page: page, Limit: limit})
	if err != nil {
		return describe(err)
	}
	return c.printJSON(result)
}

func (c *CLI) listReviews(ctx context.Context, args []string) error {
	page, limit, err := parsePageFlags("reviews", args)
	if err != nil {
		return err
	}
	result, err := c.reviews.List(ctx, model.ReviewFilters{}, model.PageRequest{Page: page, Limit: limit})
	if err != nil {
		return describe(err)
	}
	return c.printJSON(result)
}

func (c *CLI) listPayments(ctx context.Context, args []string) error {
	page, limit, err := parsePageFlags("payments", args)
	if err != nil {
		return err
	}
	result, err := c.payments.List(ctx, model.PaymentFilters{}, model.PageRequest{Page: page, Limit: limit})
	if err != nil {
		return describe(err)
	}
	return c.printJSON(result)
}

func (c *CLI) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, string(data))
	return nil
}

func parsePageFlags(name string, args []string) (page, limit int, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	p := fs.Int("page", 1, "page number")
	l := fs.Int("limit", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return 0, 0, err
	}
	return *p, *l, nil
}

// describe rewraps API errors with their user-facing message and recovery
// hint so shell output reads like the apps' alerts.
func describe(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	parts := []string{apiErr.Message()}
	if hint := apiErr.RecoverySuggestion(); hint != "" {
		parts = append(parts, hint)
	}
	return errors.New(strings.Join(parts, ". "))
}
