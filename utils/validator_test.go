package utils

import (
	"errors"
	"strings"
	"testing"
)

func validInput() LeadInput {
	return LeadInput{
		Name:   "Asha Rao",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		Course: "Data Science",
	}
}

func TestValidateLeadAcceptsWellFormedInput(t *testing.T) {
	got, err := ValidateLead(validInput(), "91", nil)
	if err != nil {
		t.Fatalf("ValidateLead() error = %v, want nil", err)
	}
	if got.Phone != "9876543210" {
		t.Errorf("Phone = %q, want %q", got.Phone, "9876543210")
	}
}

func TestValidateLeadNormalizes(t *testing.T) {
	input := LeadInput{
		Name:    "  Asha Rao  ",
		Email:   " Asha@Example.COM ",
		Phone:   "(987) 654-3210",
		Address: "  Pune  ",
	}
	got, err := ValidateLead(input, "91", nil)
	if err != nil {
		t.Fatalf("ValidateLead() error = %v, want nil", err)
	}
	if got.Name != "Asha Rao" {
		t.Errorf("Name = %q, want trimmed", got.Name)
	}
	if got.Email != "asha@example.com" {
		t.Errorf("Email = %q, want lowercased and trimmed", got.Email)
	}
	if got.Phone != "9876543210" {
		t.Errorf("Phone = %q, want separators stripped", got.Phone)
	}
	if got.Address != "Pune" {
		t.Errorf("Address = %q, want trimmed", got.Address)
	}
}

func TestValidateLeadRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*LeadInput)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(in *LeadInput) { in.Name = "   " },
			wantField: "name",
			wantMsg:   "required",
		},
		{
			name:      "missing email",
			mutate:    func(in *LeadInput) { in.Email = "" },
			wantField: "email",
			wantMsg:   "required",
		},
		{
			name:      "missing phone",
			mutate:    func(in *LeadInput) { in.Phone = "" },
			wantField: "phone",
			wantMsg:   "required",
		},
		{
			name:      "malformed email",
			mutate:    func(in *LeadInput) { in.Email = "asha.example.com" },
			wantField: "email",
			wantMsg:   "valid email",
		},
		{
			name:      "disposable domain",
			mutate:    func(in *LeadInput) { in.Email = "asha@mailinator.com" },
			wantField: "email",
			wantMsg:   "Disposable",
		},
		{
			name:      "disposable domain is case-insensitive",
			mutate:    func(in *LeadInput) { in.Email = "asha@Mailinator.COM" },
			wantField: "email",
			wantMsg:   "Disposable",
		},
		{
			name:      "country code included",
			mutate:    func(in *LeadInput) { in.Phone = "919876543210" },
			wantField: "phone",
			wantMsg:   "country code",
		},
		{
			name:      "country code with separators",
			mutate:    func(in *LeadInput) { in.Phone = "+91 98765 43210" },
			wantField: "phone",
			wantMsg:   "country code",
		},
		{
			name:      "too short",
			mutate:    func(in *LeadInput) { in.Phone = "987654321" },
			wantField: "phone",
			wantMsg:   "10 digits",
		},
		{
			name:      "too long without country prefix",
			mutate:    func(in *LeadInput) { in.Phone = "129876543210" },
			wantField: "phone",
			wantMsg:   "10 digits",
		},
		{
			name:      "letters only phone",
			mutate:    func(in *LeadInput) { in.Phone = "call me" },
			wantField: "phone",
			wantMsg:   "10 digits",
		},
		{
			name:      "all identical digits",
			mutate:    func(in *LeadInput) { in.Phone = "5555555555" },
			wantField: "phone",
			wantMsg:   "valid mobile",
		},
		{
			name:      "ascending run",
			mutate:    func(in *LeadInput) { in.Phone = "1234567890" },
			wantField: "phone",
			wantMsg:   "valid mobile",
		},
		{
			name:      "zero-leading ascending run",
			mutate:    func(in *LeadInput) { in.Phone = "0123456789" },
			wantField: "phone",
			wantMsg:   "valid mobile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := ValidateLead(input, "91", nil)
			if err == nil {
				t.Fatal("ValidateLead() error = nil, want rejection")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
			}
			if !strings.Contains(vErr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want substring %q", vErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateLeadDescendingFullRangeIsAccepted(t *testing.T) {
	// 9876543210 is an assignable number, not a keypad run.
	input := validInput()
	input.Phone = "9876543210"
	if _, err := ValidateLead(input, "91", nil); err != nil {
		t.Fatalf("ValidateLead() error = %v, want nil", err)
	}
}

func TestValidateLeadExtraDisposableDomains(t *testing.T) {
	input := validInput()
	input.Email = "asha@throwaway.example"

	if _, err := ValidateLead(input, "91", nil); err != nil {
		t.Fatalf("ValidateLead() without extra denylist error = %v, want nil", err)
	}

	_, err := ValidateLead(input, "91", []string{"Throwaway.Example"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "email" {
		t.Fatalf("ValidateLead() with extra denylist = %v, want email rejection", err)
	}
}

func TestValidateLeadOptionalFieldsDefaultEmpty(t *testing.T) {
	input := validInput()
	input.Course = ""
	input.Address = ""
	got, err := ValidateLead(input, "91", nil)
	if err != nil {
		t.Fatalf("ValidateLead() error = %v, want nil", err)
	}
	if got.Course != "" || got.Address != "" {
		t.Errorf("optional fields = (%q, %q), want empty", got.Course, got.Address)
	}
}
