package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOANAPP_API_URL", "")
	t.Setenv("LOANAPP_STATE_PATH", "")

	c := Load()
	if c.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("apiBaseURL=%q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSecs != 10 {
		t.Fatalf("timeout=%d", c.HTTPTimeoutSecs)
	}
	if c.NoticeTTLSecs != 5 {
		t.Fatalf("noticeTTL=%d", c.NoticeTTLSecs)
	}
	if c.StatePath == "" {
		t.Fatal("statePath must have a default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOANAPP_API_URL", "https://loans.example.com")
	t.Setenv("LOANAPP_HTTP_TIMEOUT_SECONDS", "30")
	t.Setenv("LOANAPP_NOTICE_TTL_SECONDS", "2")

	c := Load()
	if c.APIBaseURL != "https://loans.example.com" {
		t.Fatalf("apiBaseURL=%q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSecs != 30 || c.NoticeTTLSecs != 2 {
		t.Fatalf("timeout=%d ttl=%d", c.HTTPTimeoutSecs, c.NoticeTTLSecs)
	}
}

func TestValidate(t *testing.T) {
	ok := &Config{APIBaseURL: "http://localhost:8080", HTTPTimeoutSecs: 10, StatePath: "state.db"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	cases := []Config{
		{APIBaseURL: "", HTTPTimeoutSecs: 10, StatePath: "x"},
		{APIBaseURL: "not a url", HTTPTimeoutSecs: 10, StatePath: "x"},
		{APIBaseURL: "localhost:8080", HTTPTimeoutSecs: 10, StatePath: "x"},
		{APIBaseURL: "http://localhost:8080", HTTPTimeoutSecs: 0, StatePath: "x"},
		{APIBaseURL: "http://localhost:8080", HTTPTimeoutSecs: 10, StatePath: ""},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected an error", i)
		}
	}
}
