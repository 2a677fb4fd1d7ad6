package domain

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2024-01-15"},
		{input: "2024-12-31"},
		{input: "2024-02-30", wantErr: true},
		{input: "15-01-2024", wantErr: true},
		{input: "2024-1-5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tt.input {
				t.Errorf("expected %q, got %q", tt.input, d)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	if !Date("2024-01-01").Before("2024-01-02") {
		t.Error("2024-01-01 should be before 2024-01-02")
	}

	if !Date("2024-02-01").After("2024-01-31") {
		t.Error("2024-02-01 should be after 2024-01-31")
	}

	if Date("2024-01-15").Before("2024-01-15") || Date("2024-01-15").After("2024-01-15") {
		t.Error("equal dates should be neither before nor after each other")
	}
}
