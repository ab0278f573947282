package dto

import (
	"hus/internal/domains/guest/model"
)

type GuestResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
}

func (r *GuestResponse) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.Name = guest.Name
	r.Phone = guest.Phone
	r.Email = guest.Email
	r.IDNumber = guest.IDNumber
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}
