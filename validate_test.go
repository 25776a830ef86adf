package slackify

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateMentions(t *testing.T) {
	tests := []struct {
		name     string
		mentions Mentions
		wantKind string
		wantName string
	}{
		{"empty", Mentions{}, "", ""},
		{"valid", Mentions{
			Users:      map[string]string{"jdoe": "U123", "bot": "W9"},
			Channels:   map[string]string{"general": "C1"},
			UserGroups: map[string]string{"devs": "S1"},
			Teams:      map[string]string{"acme": "T1"},
		}, "", ""},
		{"user with channel ID", Mentions{Users: map[string]string{"jdoe": "C123"}}, "user", "jdoe"},
		{"lowercase ID", Mentions{Channels: map[string]string{"general": "c123"}}, "channel", "general"},
		{"empty ID", Mentions{UserGroups: map[string]string{"devs": ""}}, "user group", "devs"},
		{"team prefix only", Mentions{Teams: map[string]string{"acme": "T"}}, "team", "acme"},
		{"first name in sorted order", Mentions{Users: map[string]string{"zed": "bad", "amy": "bad"}}, "user", "amy"},
		{"users before channels", Mentions{
			Users:    map[string]string{"jdoe": "x"},
			Channels: map[string]string{"general": "x"},
		}, "user", "jdoe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMentions(tt.mentions)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("ValidateMentions() error = %v, want nil", err)
				}
				return
			}
			var idErr *IDError
			if !errors.As(err, &idErr) {
				t.Fatalf("ValidateMentions() error = %v, want *IDError", err)
			}
			if idErr.Kind != tt.wantKind || idErr.Name != tt.wantName {
				t.Errorf("IDError = {%q %q}, want {%q %q}", idErr.Kind, idErr.Name, tt.wantKind, tt.wantName)
			}
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("errors.Is(err, ErrInvalidID) = false")
			}
		})
	}
}

func TestIDErrorMessage(t *testing.T) {
	err := ValidateMentions(Mentions{Users: map[string]string{"jdoe": "C123"}})
	if err == nil {
		t.Fatal("ValidateMentions() error = nil")
	}
	msg := err.Error()
	for _, part := range []string{"user", `"jdoe"`, `"C123"`, "must start with U or W"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, want it to contain %q", msg, part)
		}
	}
}

func TestValidateOptionsNil(t *testing.T) {
	if err := ValidateOptions(nil); err != nil {
		t.Errorf("ValidateOptions(nil) = %v, want nil", err)
	}
}
