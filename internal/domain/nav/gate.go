// Package nav holds the route authorization gate: a pure decision over
// (session state, user role, requested screen). All redirect policy
// lives here so the terminal frontend stays a thin dispatcher.
package nav

import "github.com/ajcoder580/loanapp-client/internal/domain/session"

type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignup         Screen = "signup"
	ScreenAdminDashboard Screen = "admin-dashboard"
	ScreenLoanDetail     Screen = "loan-detail"
	ScreenProfile        Screen = "profile"
	ScreenApply          Screen = "apply"
)

// rule is a screen's access requirement. An empty Role with RequiresAuth
// set means any authenticated user (the apply screen works this way).
type rule struct {
	RequiresAuth bool
	Role         session.Role
}

var rules = map[Screen]rule{
	ScreenLogin:          {},
	ScreenSignup:         {},
	ScreenAdminDashboard: {RequiresAuth: true, Role: session.RoleAdmin},
	ScreenLoanDetail:     {RequiresAuth: true, Role: session.RoleAdmin},
	ScreenProfile:        {RequiresAuth: true, Role: session.RoleUser},
	ScreenApply:          {RequiresAuth: true},
}

// RoleHome is where a signed-in user lands by default.
func RoleHome(r session.Role) Screen {
	if r == session.RoleAdmin {
		return ScreenAdminDashboard
	}
	return ScreenProfile
}

type Verdict int

const (
	// Render the requested screen.
	Render Verdict = iota
	// Placeholder: session state still unknown, show the loading view.
	// Never redirect before the startup check resolves.
	Placeholder
	// RedirectLogin: not signed in.
	RedirectLogin
	// RedirectHome: signed in but the screen wants a different role.
	// Fail soft: send the user to their own home, not an error page.
	RedirectHome
)

type Decision struct {
	Verdict Verdict
	// Target is the screen to go to for redirect verdicts.
	Target Screen
	// From records the originally requested screen when redirecting to
	// login, so a later login can return there.
	From Screen
}

func Decide(state session.State, role session.Role, requested Screen) Decision {
	r, ok := rules[requested]
	if !ok || !r.RequiresAuth {
		return Decision{Verdict: Render, Target: requested}
	}
	switch state {
	case session.StateUnknown:
		return Decision{Verdict: Placeholder}
	case session.StateAnonymous:
		return Decision{Verdict: RedirectLogin, Target: ScreenLogin, From: requested}
	}
	if r.Role != "" && r.Role != role {
		return Decision{Verdict: RedirectHome, Target: RoleHome(role)}
	}
	return Decision{Verdict: Render, Target: requested}
}
