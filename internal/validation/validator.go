package validation

import (
	"math"
	"strings"

	"edutech/internal/domain"
	"edutech/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest validates the registration request body.
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}
	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !strings.Contains(req.Email, "@") {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	return errors
}

// ValidateLoginRequest validates the login request body.
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateEnrollRequest validates a course enrollment request.
func (v *Validator) ValidateEnrollRequest(req *dto.EnrollRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.CourseID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("course_id"))
	}

	return errors
}

// ValidateProgress validates a progress value. Progress arrives as a float
// from JSON; fractional values are rejected here so the caller gets a field
// error rather than a decode failure, and the integral value must lie in
// [0, 100].
func (v *Validator) ValidateProgress(progress float64) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if progress != math.Trunc(progress) {
		errors = append(errors, domain.NewInvalidFormatError("progress", progress))
		return errors
	}
	if progress < 0 || progress > 100 {
		errors = append(errors, domain.NewOutOfRangeError("progress", progress, 0, 100))
	}

	return errors
}

// ValidateAwardRequest validates an achievement award request.
func (v *Validator) ValidateAwardRequest(req *dto.AwardRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.AchievementID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("achievement_id"))
	}

	return errors
}

// ValidateAssistantRequest validates an assistant query.
func (v *Validator) ValidateAssistantRequest(req *dto.AssistantRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Query) == "" {
		errors = append(errors, domain.NewMissingFieldError("query"))
	} else if len(req.Query) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("query", len(req.Query), 1, 2000))
	}

	return errors
}
