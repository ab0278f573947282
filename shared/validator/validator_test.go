package validator_test

import (
	"strings"
	"testing"

	"hus/shared/validator"
)

type createForm struct {
	RoomID   int    `json:"room_id"  validate:"required"`
	CheckIn  string `json:"check_in" validate:"required,businessdate"`
	CheckOut string `json:"check_out" validate:"required,businessdate"`
	Guests   int    `json:"guests"   validate:"omitempty,min=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid form",
			body:    `{"room_id": 5, "check_in": "2024-06-01", "check_out": "2024-06-02", "guests": 2}`,
			wantErr: false,
		},
		{
			name:    "missing room",
			body:    `{"check_in": "2024-06-01", "check_out": "2024-06-02"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"room_id": 5, "check_in": "06/01/2024", "check_out": "2024-06-02"}`,
			wantErr: true,
		},
		{
			name:    "unpadded date",
			body:    `{"room_id": 5, "check_in": "2024-6-1", "check_out": "2024-06-02"}`,
			wantErr: true,
		},
		{
			name:    "zero guests allowed by omitempty",
			body:    `{"room_id": 5, "check_in": "2024-06-01", "check_out": "2024-06-02", "guests": 0}`,
			wantErr: false,
		},
		{
			name:    "not json",
			body:    `room 5 please`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form createForm

			err := validator.Validate(strings.NewReader(tt.body), &form)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2024-02-29", "businessdate"); err != nil {
		t.Errorf("expected padded date to pass, got %v", err)
	}

	if err := validator.ValidateVar("2024-02-9", "businessdate"); err == nil {
		t.Error("expected short date to fail")
	}
}
