package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
	"github.com/ajcoder580/loanapp-client/internal/usecase/admin"
	"github.com/ajcoder580/loanapp-client/internal/usecase/profile"
	"github.com/ajcoder580/loanapp-client/pkg/inr"
	"github.com/ajcoder580/loanapp-client/pkg/token"
)

func (a *app) cmdWhoami() error {
	u := a.sessions.User()
	if u == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", u.Name, u.Email, u.Role)

	if tok := a.store.BearerToken(); tok != "" {
		if info, err := token.Peek(tok); err == nil && !info.ExpiresAt.IsZero() {
			if token.Expired(tok, time.Now()) {
				fmt.Println("Token: expired")
			} else {
				fmt.Printf("Token: valid until %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
			}
		}
	}
	return nil
}

func (a *app) cmdTypes(ctx context.Context) error {
	types, err := a.client.LoanTypes(ctx)
	if err != nil {
		// The fixed catalog keeps the apply flow usable offline.
		fmt.Println("(backend unavailable, showing built-in catalog)")
		types = loan.Catalog()
	}
	for _, t := range types {
		fmt.Printf("%2d  %-22s %5.2f%%  up to %-14s %s\n",
			t.ID, t.Name, t.InterestRate, inr.Format(t.MaxAmount), t.Tenure)
	}
	return nil
}

func (a *app) cmdProfile(ctx context.Context) error {
	view := profile.NewView(a.client)
	fmt.Println("Loading...")
	if err := view.Load(ctx); err != nil {
		return err
	}

	u := view.User()
	fmt.Printf("\n%s <%s>\n\n", u.Name, u.Email)

	s := view.Stats()
	fmt.Printf("Applications: %d   Approved: %d   Pending: %d   Approved amount: %s\n\n",
		s.TotalLoans, s.ApprovedLoans, s.PendingLoans, inr.Format(s.TotalAmount))

	if msg := view.LoanError(); msg != "" {
		fmt.Println(msg)
		return nil
	}
	if len(view.Loans()) == 0 {
		fmt.Println("No loan applications yet. Start one with: loanctl apply")
		return nil
	}
	for _, l := range view.Loans() {
		fmt.Printf("%-14s %-22s %-14s %-12s %s\n",
			l.LoanID, l.LoanType, inr.Format(l.LoanAmount), l.Status,
			l.ApplicationDate.Local().Format("02 Jan 2006"))
	}
	return nil
}

func (a *app) newDashboard() *admin.Dashboard {
	return admin.NewDashboard(a.client, time.Duration(a.cfg.NoticeTTLSecs)*time.Second, nil)
}

func (a *app) cmdDashboard(ctx context.Context) error {
	d := a.newDashboard()
	fmt.Println("Loading...")
	d.Load(ctx)

	if msg := d.StatsError(); msg != "" {
		fmt.Println("stats:", msg)
	} else {
		s := d.Stats()
		fmt.Printf("\nTotal: %d   Pending: %d   Approved: %d   Rejected: %d   Amount: %s\n\n",
			s.TotalLoans, s.PendingLoans, s.ApprovedLoans, s.RejectedLoans, inr.Format(s.TotalAmount))
	}

	if msg := d.LoansError(); msg != "" {
		fmt.Println("applications:", msg)
	} else {
		printLoanTable(d.Loans())
	}

	if msg := d.UsersError(); msg != "" {
		fmt.Println("recent users:", msg)
	} else if users := d.Users(); len(users) > 0 {
		fmt.Println("\nRecent users:")
		for _, u := range users {
			fmt.Printf("  %-24s %-30s %s\n", u.Name, u.Email, u.Role)
		}
	}
	return nil
}

func printLoanTable(loans []loan.Record) {
	if len(loans) == 0 {
		fmt.Println("No applications")
		return
	}
	for _, l := range loans {
		fmt.Printf("%-14s %-20s %-22s %-14s %-12s %s\n",
			l.LoanID, l.UserName, l.LoanType, inr.Format(l.LoanAmount), l.Status,
			l.ApplicationDate.Local().Format("02 Jan 2006"))
	}
}

func (a *app) cmdStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	id := fs.String("id", "", "loan id")
	to := fs.String("to", "", "Approved | Rejected | Under Review | Pending")
	_ = fs.Parse(args)
	if *id == "" || *to == "" {
		return fmt.Errorf("status requires -id and -to")
	}

	d := a.newDashboard()
	d.Load(ctx)
	if err := d.UpdateStatus(ctx, *id, loan.Status(*to)); err != nil {
		return err
	}
	if msg, _ := d.ActiveNotice(); msg != "" {
		fmt.Println(msg)
	}
	return nil
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "loan id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("delete requires -id")
	}

	confirm := func() bool {
		if *yes {
			return true
		}
		return a.confirm("Are you sure you want to delete this loan application? This action cannot be undone.")
	}

	d := a.newDashboard()
	d.Load(ctx)
	if err := d.Delete(ctx, *id, confirm); err != nil {
		return err
	}
	if msg, _ := d.ActiveNotice(); msg != "" {
		fmt.Println(msg)
	} else {
		fmt.Println("Nothing deleted")
	}
	return nil
}

func (a *app) cmdShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("id", "", "loan id")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("show requires -id")
	}

	d := admin.NewDetail(a.client, time.Duration(a.cfg.NoticeTTLSecs)*time.Second, nil)
	if err := d.Load(ctx, *id); err != nil {
		var ae *api.Error
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			fmt.Println("Loan application not found")
			return nil
		}
		return err
	}

	l := d.Record()
	fmt.Printf("Loan %s — %s\n", l.LoanID, l.Status)
	fmt.Printf("Applicant: %s\n", l.UserName)
	fmt.Printf("Type: %s   Amount: %s   Term: %d months   Rate: %.2f%%\n",
		l.LoanType, inr.Format(l.LoanAmount), l.LoanTerm, l.InterestRate)
	fmt.Printf("Purpose: %s\n", l.Purpose)
	fmt.Printf("Applied: %s\n", l.ApplicationDate.Local().Format("02 Jan 2006"))
	if l.Documents != nil {
		fmt.Println("Documents:")
		if l.Documents.IdentityProof != nil {
			fmt.Printf("  identity: %s  %s\n", l.Documents.IdentityProof.Filename, d.DocumentURL("identityProof"))
		}
		if l.Documents.AddressProof != nil {
			fmt.Printf("  address:  %s  %s\n", l.Documents.AddressProof.Filename, d.DocumentURL("addressProof"))
		}
		if l.Documents.IncomeProof != nil {
			fmt.Printf("  income:   %s  %s\n", l.Documents.IncomeProof.Filename, d.DocumentURL("incomeProof"))
		}
	}
	return nil
}

func (a *app) cmdCreateAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "postal address")
	_ = fs.Parse(args)

	in := admin.CreateAdminInput{
		Name: *name, Email: *email, Password: *password,
		ConfirmPassword: *password, Phone: *phone, Address: *address,
	}
	if in.Name == "" {
		in.Name = a.prompt("Name: ")
	}
	if in.Email == "" {
		in.Email = a.prompt("Email: ")
	}
	if in.Password == "" {
		in.Password = a.prompt("Password: ")
		in.ConfirmPassword = a.prompt("Confirm password: ")
	}
	if in.Phone == "" {
		in.Phone = a.prompt("Phone: ")
	}
	if in.Address == "" {
		in.Address = a.prompt("Address: ")
	}

	d := a.newDashboard()
	if err := d.CreateAdmin(ctx, in); err != nil {
		return err
	}
	fmt.Println("Admin created successfully!")
	return nil
}
