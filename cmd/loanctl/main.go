// loanctl is the terminal client for the online loan service: sign in,
// walk the six-step application form, review your loans, and (for
// admins) work the review dashboard.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ajcoder580/loanapp-client/internal/adapter/store"
	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/config"
	"github.com/ajcoder580/loanapp-client/internal/domain/nav"
	"github.com/ajcoder580/loanapp-client/internal/domain/session"
	"github.com/ajcoder580/loanapp-client/internal/infrastructure/db"
	"github.com/ajcoder580/loanapp-client/internal/usecase/auth"
)

type app struct {
	cfg      *config.Config
	client   *api.Client
	store    *store.Store
	sessions *auth.Store
	in       *bufio.Scanner
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenState(cfg.StatePath)
	if err != nil {
		log.Fatalf("state: %v", err)
	}
	st, err := store.New(gdb)
	if err != nil {
		log.Fatalf("state: %v", err)
	}

	a := &app{cfg: cfg, store: st, in: bufio.NewScanner(os.Stdin)}
	a.client = api.New(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeoutSecs)*time.Second, st)
	a.sessions = auth.NewStore(a.client, st, a.onNavigate)
	a.client.SetUnauthorizedHook(a.sessions.HandleUnauthorized)

	ctx := context.Background()
	a.sessions.Init(ctx)

	cmd, args := os.Args[1], os.Args[2:]
	if err := a.dispatch(ctx, cmd, args); err != nil {
		fmt.Println("Error:", api.UserMessage(err))
		os.Exit(1)
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "logout":
		a.sessions.Logout()
		fmt.Println("Logged out successfully")
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "types":
		return a.cmdTypes(ctx)
	case "apply":
		return a.withScreen(nav.ScreenApply, func() error { return a.cmdApply(ctx, args) })
	case "profile":
		return a.withScreen(nav.ScreenProfile, func() error { return a.cmdProfile(ctx) })
	case "dashboard":
		return a.withScreen(nav.ScreenAdminDashboard, func() error { return a.cmdDashboard(ctx) })
	case "status":
		return a.withScreen(nav.ScreenAdminDashboard, func() error { return a.cmdStatus(ctx, args) })
	case "delete":
		return a.withScreen(nav.ScreenAdminDashboard, func() error { return a.cmdDelete(ctx, args) })
	case "show":
		return a.withScreen(nav.ScreenLoanDetail, func() error { return a.cmdShow(ctx, args) })
	case "create-admin":
		return a.withScreen(nav.ScreenAdminDashboard, func() error { return a.cmdCreateAdmin(ctx, args) })
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// withScreen runs the gate before a protected screen, printing the
// redirect the way a browser would follow it.
func (a *app) withScreen(screen nav.Screen, run func() error) error {
	var role session.Role
	if u := a.sessions.User(); u != nil {
		role = u.Role
	}
	d := nav.Decide(a.sessions.State(), role, screen)
	switch d.Verdict {
	case nav.Placeholder:
		fmt.Println("Loading...")
		return nil
	case nav.RedirectLogin:
		fmt.Println("Please login to continue (loanctl login)")
		return nil
	case nav.RedirectHome:
		fmt.Printf("Not available for your role; try %q instead\n", homeCommand(d.Target))
		return nil
	}
	return run()
}

func (a *app) onNavigate(s nav.Screen) {
	if s == nav.ScreenLogin {
		fmt.Println("Session ended, please sign in again (loanctl login)")
	}
}

func homeCommand(s nav.Screen) string {
	if s == nav.ScreenAdminDashboard {
		return "loanctl dashboard"
	}
	return "loanctl profile"
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if *email == "" {
		*email = a.prompt("Email: ")
	}
	if *password == "" {
		*password = a.prompt("Password: ")
	}

	user, err := a.sessions.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Login successful! Welcome, %s.\n", user.Name)
	fmt.Printf("Home: %s\n", homeCommand(nav.RoleHome(user.Role)))
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 6 characters)")
	role := fs.String("role", "user", "account role")
	_ = fs.Parse(args)

	if *name == "" {
		*name = a.prompt("Full name: ")
	}
	if *email == "" {
		*email = a.prompt("Email: ")
	}
	if *password == "" {
		*password = a.prompt("Password: ")
	}

	if err := a.sessions.Signup(ctx, *name, *email, *password, session.Role(*role)); err != nil {
		return err
	}
	fmt.Println("Account created successfully! Sign in with: loanctl login")
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return a.in.Text()
}

func (a *app) confirm(question string) bool {
	answer := a.prompt(question + " [y/N]: ")
	return answer == "y" || answer == "Y" || answer == "yes"
}

func usage() {
	fmt.Println(`loanctl — online loan service client

  login          sign in (-email, -password)
  signup         create an account (-name, -email, -password, -role)
  logout         sign out and clear the saved session
  whoami         show the saved identity and token expiry
  types          list available loan products
  apply          start or resume a loan application (-type, -resume)
  profile        your loans and headline numbers
  dashboard      admin: stats, applications and recent users
  status         admin: request a status change (-id, -to)
  delete         admin: delete an application (-id, -yes)
  show           admin: one application in full (-id)
  create-admin   admin: provision another admin account`)
}
