// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package validation

import (
	"strings"
	"testing"
)

type ratingFixture struct {
	UserID int     `validate:"gte=0"`
	Title  string  `validate:"required"`
	Value  float64 `validate:"gte=0,lte=10"`
}

func TestValidateStructPasses(t *testing.T) {
	rec := ratingFixture{UserID: 1, Title: "Inception", Value: 9.0}
	if err := ValidateStruct(&rec); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructFailures(t *testing.T) {
	tests := []struct {
		name      string
		input     ratingFixture
		wantField string
		wantTag   string
	}{
		{
			name:      "negative user id",
			input:     ratingFixture{UserID: -1, Title: "Inception", Value: 5},
			wantField: "UserID",
			wantTag:   "gte",
		},
		{
			name:      "missing title",
			input:     ratingFixture{UserID: 1, Value: 5},
			wantField: "Title",
			wantTag:   "required",
		},
		{
			name:      "rating above scale",
			input:     ratingFixture{UserID: 1, Title: "Inception", Value: 11},
			wantField: "Value",
			wantTag:   "lte",
		},
		{
			name:      "rating below scale",
			input:     ratingFixture{UserID: 1, Title: "Inception", Value: -0.5},
			wantField: "Value",
			wantTag:   "gte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected one field error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("tag = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	rec := ratingFixture{UserID: -2, Value: 42}

	err := ValidateStruct(&rec)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if len(err.Errors()) != 3 {
		t.Fatalf("expected three field errors, got %d: %v", len(err.Errors()), err)
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined message should join failures, got %q", err.Error())
	}
}

func TestGetValidatorIsSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}
