package domain

import "errors"

var (
	MessageSuccessRegisterHousehold = "household registered successfully"
	MessageSuccessLoginHousehold    = "household logged in successfully"

	MessageFailedRegisterHousehold = "failed to register household"
	MessageFailedLoginHousehold    = "failed to log in household"

	ErrHouseholdNotFound    = errors.New("household not found")
	ErrHouseholdEmailTaken  = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or passphrase")
	ErrFailedHashPassphrase = errors.New("failed to hash passphrase")
)

type (
	RegisterHouseholdRequest struct {
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Passphrase string `json:"passphrase" validate:"required,min=8"`
	}

	LoginHouseholdRequest struct {
		Email      string `json:"email" validate:"required,email"`
		Passphrase string `json:"passphrase" validate:"required"`
	}

	HouseholdResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token,omitempty"`
	}
)
