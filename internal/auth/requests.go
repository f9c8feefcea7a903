package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin employee"`
	EmpID    string `json:"empId" validate:"required_if=Role employee"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin employee"`
	Email    string `json:"email" validate:"required_if=Role admin"`
	EmpID    string `json:"empId" validate:"required_if=Role employee"`
}

// ValidateSignup checks a signup request at the boundary, before any store
// access, and returns an error whose message is safe to echo to the client.
func ValidateSignup(r *SignupRequest) error {
	if err := validate.Struct(r); err != nil {
		return errors.New(signupMessage(firstFieldError(err)))
	}
	return nil
}

// ValidateLogin checks a login request. Role-dependent identifier rules:
// admins log in by email, employees by employee id.
func ValidateLogin(r *LoginRequest) error {
	if err := validate.Struct(r); err != nil {
		return errors.New(loginMessage(firstFieldError(err)))
	}
	return nil
}

func firstFieldError(err error) validator.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0]
	}
	return nil
}

func signupMessage(fe validator.FieldError) string {
	if fe == nil {
		return "Invalid request"
	}
	switch {
	case fe.Field() == "Email" && fe.Tag() == "email":
		return "Invalid email format"
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 8 characters long"
	case fe.Field() == "EmpID":
		return "Employee ID is required for employee role"
	case fe.Field() == "Role" && fe.Tag() == "oneof":
		return "Invalid role. Must be one of: admin, employee"
	default:
		return "All fields (username, email, password, role) are required"
	}
}

func loginMessage(fe validator.FieldError) string {
	if fe == nil {
		return "Invalid request"
	}
	switch {
	case fe.Field() == "Email":
		return "Email is required for admin login"
	case fe.Field() == "EmpID":
		return "Employee ID is required for employee login"
	case fe.Field() == "Role" && fe.Tag() == "oneof":
		return "Invalid role. Must be one of: admin, employee"
	default:
		return "Password and role are required"
	}
}
