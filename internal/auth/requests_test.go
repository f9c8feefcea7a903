package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	valid := SignupRequest{
		Username: "bob",
		Email:    "bob@corp.test",
		Password: "password123",
		Role:     "employee",
		EmpID:    "EMP-1",
	}
	require.NoError(t, ValidateSignup(&valid))

	// Admins do not need an employee id.
	admin := SignupRequest{
		Username: "alice",
		Email:    "alice@corp.test",
		Password: "password123",
		Role:     "admin",
	}
	require.NoError(t, ValidateSignup(&admin))

	tests := []struct {
		name    string
		mutate  func(r *SignupRequest)
		message string
	}{
		{
			"missing username",
			func(r *SignupRequest) { r.Username = "" },
			"All fields (username, email, password, role) are required",
		},
		{
			"malformed email",
			func(r *SignupRequest) { r.Email = "bob-at-corp" },
			"Invalid email format",
		},
		{
			"short password",
			func(r *SignupRequest) { r.Password = "seven77" },
			"Password must be at least 8 characters long",
		},
		{
			"out-of-enum role",
			func(r *SignupRequest) { r.Role = "root" },
			"Invalid role. Must be one of: admin, employee",
		},
		{
			"employee without empId",
			func(r *SignupRequest) { r.EmpID = "" },
			"Employee ID is required for employee role",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			err := ValidateSignup(&r)
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin(&LoginRequest{
		Password: "password123", Role: "admin", Email: "alice@corp.test",
	}))
	require.NoError(t, ValidateLogin(&LoginRequest{
		Password: "password123", Role: "employee", EmpID: "EMP-1",
	}))

	tests := []struct {
		name    string
		req     LoginRequest
		message string
	}{
		{
			"missing password",
			LoginRequest{Role: "admin", Email: "alice@corp.test"},
			"Password and role are required",
		},
		{
			"missing role",
			LoginRequest{Password: "password123"},
			"Password and role are required",
		},
		{
			"admin without email",
			LoginRequest{Password: "password123", Role: "admin"},
			"Email is required for admin login",
		},
		{
			"employee without empId",
			LoginRequest{Password: "password123", Role: "employee"},
			"Employee ID is required for employee login",
		},
		{
			"unknown role",
			LoginRequest{Password: "password123", Role: "root"},
			"Invalid role. Must be one of: admin, employee",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLogin(&tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}
