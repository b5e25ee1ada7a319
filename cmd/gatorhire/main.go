package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gatorhire/internal/client"
	"gatorhire/internal/domain/application"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/quiz"

	"github.com/joho/godotenv"
)

const defaultAPIURL = "http://localhost:8080"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	session := client.NewSession(client.NewFileStorage(sessionPath()))
	if err := session.Load(); err != nil {
		fatal(err)
	}
	api := client.New(apiBaseURL(), client.WithTokenSource(session))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "register":
		err = cmdRegister(ctx, api, session, os.Args[2:])
	case "login":
		err = cmdLogin(ctx, api, session, os.Args[2:])
	case "logout":
		err = cmdLogout(ctx, api, session)
	case "jobs":
		err = cmdJobs(ctx, api, os.Args[2:])
	case "job":
		err = cmdJob(ctx, api, os.Args[2:])
	case "apply":
		err = cmdApply(ctx, api, os.Args[2:])
	case "applications":
		err = cmdApplications(ctx, api)
	case "save":
		err = cmdSave(ctx, api, os.Args[2:])
	case "unsave":
		err = cmdUnsave(ctx, api, os.Args[2:])
	case "saved":
		err = cmdSaved(ctx, api)
	case "recommend":
		err = cmdRecommend(ctx, api)
	case "profile":
		err = cmdProfile(ctx, api, session, os.Args[2:])
	case "stats":
		err = cmdStats(ctx, api)
	case "quiz":
		err = cmdQuiz(ctx, api)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: gatorhire <command> [flags]

commands:
  register       create an account
  login          sign in (use -admin for the admin entry point)
  logout         sign out and clear the local session
  jobs           list jobs, optionally filtered
  job <id>       show one job
  apply <id>     apply to a job
  applications   list your applications
  save <id>      save a job
  unsave <id>... remove saved jobs
  saved          list saved jobs
  recommend      jobs matching your profile skills
  profile        show or update your profile
  stats          profile statistics
  quiz           take the career match quiz`)
}

func cmdRegister(ctx context.Context, api *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full name")
	_ = fs.Parse(args)

	res, err := api.Register(ctx, *email, *password, *name)
	if err != nil {
		return err
	}
	if err := session.Establish(res.User, res.Token); err != nil {
		return err
	}
	fmt.Printf("registered as %s\n", res.User.Email)
	return nil
}

func cmdLogin(ctx context.Context, api *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	admin := fs.Bool("admin", false, "use the admin login")
	_ = fs.Parse(args)

	var res client.AuthResult
	var err error
	if *admin {
		res, err = api.AdminLogin(ctx, *email, *password)
	} else {
		res, err = api.Login(ctx, *email, *password)
	}
	if err != nil {
		return err
	}
	if err := session.Establish(res.User, res.Token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", res.User.Email)
	return nil
}

func cmdLogout(ctx context.Context, api *client.Client, session *client.Session) error {
	// Best effort on the server; the local session is cleared regardless.
	_ = api.Logout(ctx)
	if err := session.Clear(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func cmdJobs(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	query := fs.String("query", "", "keyword filter")
	category := fs.String("category", "", "category filter")
	jobType := fs.String("type", "", "job type filter")
	location := fs.String("location", "", "location filter")
	_ = fs.Parse(args)

	jobs, err := api.Jobs(ctx)
	if err != nil {
		return err
	}

	// Filtering happens locally so the flags compose the same way the
	// browse view's controls did.
	jobs = job.Filter(jobs, job.Criteria{
		Query:    *query,
		Category: job.Category(*category),
		Type:     *jobType,
		Location: *location,
	})
	printJobs(jobs)
	return nil
}

func cmdJob(ctx context.Context, api *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gatorhire job <id>")
	}
	j, err := api.Job(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s at %s\n", j.Title, j.Company)
	fmt.Printf("  %s | %s | %s | %s\n", j.Location, j.Type, j.Salary, j.Category)
	fmt.Printf("  posted %s\n\n", j.PostedDate.Format("2006-01-02"))
	fmt.Println(j.Description)
	if len(j.Requirements) > 0 {
		fmt.Println("\nrequirements:")
		for _, r := range j.Requirements {
			fmt.Printf("  - %s\n", r)
		}
	}
	return nil
}

func cmdApply(ctx context.Context, api *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gatorhire apply <id> [flags]")
	}
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	name := fs.String("name", "", "applicant full name")
	email := fs.String("email", "", "applicant email")
	phone := fs.String("phone", "", "phone number")
	cover := fs.String("cover-letter", "", "cover letter text")
	resume := fs.String("resume", "", "resume URL")
	_ = fs.Parse(args[1:])

	a, err := api.Apply(ctx, args[0], client.ApplicationForm{
		FullName:    *name,
		Email:       *email,
		Phone:       *phone,
		CoverLetter: *cover,
		ResumeURL:   *resume,
	})
	if err != nil {
		return err
	}
	fmt.Printf("application %s submitted (%s)\n", a.ID, a.Status)
	return nil
}

func cmdApplications(ctx context.Context, api *client.Client) error {
	apps, err := api.MyApplications(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("no applications yet")
		return nil
	}
	for _, a := range apps {
		printApplication(a)
	}
	return nil
}

func cmdSave(ctx context.Context, api *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gatorhire save <id>")
	}
	if err := api.SaveJob(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("saved")
	return nil
}

func cmdUnsave(ctx context.Context, api *client.Client, args []string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("usage: gatorhire unsave <id>...")
	case 1:
		if err := api.UnsaveJob(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("removed")
	default:
		res, err := api.BulkUnsaveJobs(ctx, args)
		if err != nil {
			return err
		}
		fmt.Printf("removed %d saved jobs\n", res.Deleted)
	}
	return nil
}

func cmdSaved(ctx context.Context, api *client.Client) error {
	items, err := api.SavedJobs(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no saved jobs")
		return nil
	}
	for _, s := range items {
		fmt.Printf("%s  %s at %s (saved %s)\n", s.JobID, s.Job.Title, s.Job.Company, s.SavedDate.Format("2006-01-02"))
	}
	return nil
}

func cmdRecommend(ctx context.Context, api *client.Client) error {
	jobs, err := api.Recommendations(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("no matches; add skills to your profile first")
		return nil
	}
	printJobs(jobs)
	return nil
}

func cmdProfile(ctx context.Context, api *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	title := fs.String("title", "", "professional title")
	location := fs.String("location", "", "location")
	bio := fs.String("bio", "", "short bio")
	skills := fs.String("skills", "", "comma separated skills")
	_ = fs.Parse(args)

	update := client.ProfileUpdate{}
	changed := false
	set := func(dst **string, v string) {
		if v != "" {
			*dst = &v
			changed = true
		}
	}
	set(&update.FullName, *name)
	set(&update.Title, *title)
	set(&update.Location, *location)
	set(&update.Bio, *bio)
	if *skills != "" {
		for _, s := range strings.Split(*skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				update.Skills = append(update.Skills, s)
			}
		}
		changed = true
	}

	var u client.User
	var err error
	if changed {
		u, err = api.UpdateProfile(ctx, update)
		if err == nil {
			err = session.UpdateUser(u)
		}
	} else {
		u, err = api.Profile(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", u.FullName, u.Email)
	if u.Title != nil {
		fmt.Printf("  title:    %s\n", *u.Title)
	}
	if u.Location != nil {
		fmt.Printf("  location: %s\n", *u.Location)
	}
	if u.Bio != nil {
		fmt.Printf("  bio:      %s\n", *u.Bio)
	}
	if len(u.Skills) > 0 {
		fmt.Printf("  skills:   %s\n", strings.Join(u.Skills, ", "))
	}
	return nil
}

func cmdStats(ctx context.Context, api *client.Client) error {
	stats, err := api.ProfileStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("applications: %d\n", stats.ApplicationsCount)
	fmt.Printf("saved jobs:   %d\n", stats.SavedJobsCount)
	fmt.Printf("profile:      %.0f%% complete\n", stats.ProfileCompleteness)
	return nil
}

func cmdQuiz(ctx context.Context, api *client.Client) error {
	q := quiz.New()
	reader := bufio.NewReader(os.Stdin)

	for {
		if _, done := q.Result(); done {
			break
		}
		question := quiz.Questions()[q.Current()]
		fmt.Printf("\n%s\n", question.Prompt)
		for i, opt := range question.Options {
			fmt.Printf("  %d) %s\n", i+1, opt.Text)
		}
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "b" {
			if err := q.Previous(); err != nil {
				fmt.Println("already at the first question")
			}
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || q.Answer(n-1) != nil {
			fmt.Println("pick one of the listed options, or b to go back")
		}
	}

	category, _ := q.Result()
	fmt.Printf("\nyour match: %s\n", category)

	jobs, err := api.SearchJobs(ctx, client.SearchParams{Category: string(category)})
	if err != nil {
		// The match still stands even if the listing fetch fails.
		return nil
	}
	if len(jobs) > 0 {
		fmt.Println("\nopen roles in that category:")
		printJobs(jobs)
	}
	return nil
}

func printJobs(jobs []job.Job) {
	for _, j := range jobs {
		fmt.Printf("%s  %-30s %-20s %s\n", j.ID, j.Title, j.Company, j.Location)
	}
}

func printApplication(a application.Application) {
	title := a.JobTitle
	if title == "" {
		title = a.JobID
	}
	fmt.Printf("%s  %-30s %-12s applied %s\n", a.ID, title, a.Status, a.AppliedDate.Format("2006-01-02"))
}

func apiBaseURL() string {
	if v := strings.TrimSpace(os.Getenv("GATORHIRE_API_URL")); v != "" {
		return v
	}
	return defaultAPIURL
}

func sessionPath() string {
	if v := strings.TrimSpace(os.Getenv("GATORHIRE_SESSION_FILE")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gatorhire-session.json"
	}
	return filepath.Join(home, ".config", "gatorhire", "session.json")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "gatorhire: %v\n", err)
	os.Exit(1)
}
