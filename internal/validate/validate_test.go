package validate

import (
	"strings"
	"testing"
)

func TestSignUpForm(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		email    string
		ok       bool
	}{
		{"valid", "sarah", "correct horse battery", "sarah@example.com", true},
		{"empty username", "", "correct horse battery", "sarah@example.com", false},
		{"long username", strings.Repeat("a", MaxUsernameLen+1), "correct horse battery", "sarah@example.com", false},
		{"short password", "sarah", "short", "sarah@example.com", false},
		{"long password", "sarah", strings.Repeat("p", MaxPasswordLen+1), "sarah@example.com", false},
		{"bad email", "sarah", "correct horse battery", "not-an-email", false},
		{"everything wrong", "", "", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := SignUpForm(c.username, c.password, c.email)
			if c.ok && err != nil {
				t.Errorf("unexpected error: %s", err)
			}
			if !c.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestVideoForm(t *testing.T) {
	if err := VideoForm("title", "prompt", "acc1"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	err := VideoForm("", "", "acc1")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, field := range []string{"title", "prompt"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention the %s: %s", field, err)
		}
	}
}
