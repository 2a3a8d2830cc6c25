package host

import (
	"errors"
	"testing"

	"hostly/models"
)

func TestValidateWeeklyTemplateAccepts(t *testing.T) {
	tpl := models.WeeklyTemplate{
		"monday": {
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "17:00"},
		},
		"wednesday": {{Start: "08:00", End: "20:00"}},
		"sunday":    {},
	}
	if err := ValidateWeeklyTemplate(tpl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateWeeklyTemplateRejects(t *testing.T) {
	tests := []struct {
		name string
		tpl  models.WeeklyTemplate
	}{
		{"unknown weekday", models.WeeklyTemplate{
			"funday": {{Start: "09:00", End: "10:00"}},
		}},
		{"non-hour bound", models.WeeklyTemplate{
			"monday": {{Start: "09:30", End: "11:00"}},
		}},
		{"missing minutes", models.WeeklyTemplate{
			"monday": {{Start: "9", End: "11:00"}},
		}},
		{"start after end", models.WeeklyTemplate{
			"monday": {{Start: "15:00", End: "11:00"}},
		}},
		{"start equals end", models.WeeklyTemplate{
			"monday": {{Start: "11:00", End: "11:00"}},
		}},
		{"before operating window", models.WeeklyTemplate{
			"monday": {{Start: "07:00", End: "09:00"}},
		}},
		{"past operating window", models.WeeklyTemplate{
			"monday": {{Start: "18:00", End: "21:00"}},
		}},
		{"overlapping ranges", models.WeeklyTemplate{
			"monday": {
				{Start: "09:00", End: "12:00"},
				{Start: "11:00", End: "14:00"},
			},
		}},
		{"unordered ranges", models.WeeklyTemplate{
			"monday": {
				{Start: "14:00", End: "16:00"},
				{Start: "09:00", End: "11:00"},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeeklyTemplate(tt.tpl)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T (%v), want *ValidationError", err, err)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"jane-doe", "coach99", "a-1-b"}
	for _, slug := range valid {
		if err := ValidateSlug(slug); err != nil {
			t.Errorf("ValidateSlug(%q) = %v, want nil", slug, err)
		}
	}

	invalid := []string{"ab", "UPPER", "-leading", "trailing-", "has space", "way-too-long-slug-over-thirty-chars"}
	for _, slug := range invalid {
		if err := ValidateSlug(slug); err == nil {
			t.Errorf("ValidateSlug(%q) = nil, want error", slug)
		}
	}
}
