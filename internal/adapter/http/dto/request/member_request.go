package request

import (
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"
)

type MemberRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=100"`
	LastName   string `json:"last_name" binding:"max=200"`
	Email      string `json:"email" binding:"required,email,max=254"`
	Phone      string `json:"phone" binding:"max=32"`
	Address    string `json:"address" binding:"max=200"`
	City       string `json:"city" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=16"`
	DNI        string `json:"dni" binding:"max=16"`
	Status     string `json:"status" binding:"omitempty,oneof=active inactive pending"`
	JoinDate   string `json:"join_date"`
	Notes      string `json:"notes" binding:"max=2000"`
}

func (r MemberRequest) ToInput() (usecase.MemberInput, error) {
	joined, err := parseDate(r.JoinDate)
	if err != nil {
		return usecase.MemberInput{}, err
	}
	return usecase.MemberInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		DNI:        r.DNI,
		Status:     entities.MemberStatus(r.Status),
		JoinDate:   joined,
		Notes:      r.Notes,
	}, nil
}

type MemberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive pending"`
}

// MemberStatsRequest is the dashboard query; Recent defaults to 5.
type MemberStatsRequest struct {
	Recent *int `form:"recent" binding:"omitempty,gte=0,lte=50"`
}

func (r MemberStatsRequest) RecentOrDefault() int {
	if r.Recent == nil {
		return 5
	}
	return *r.Recent
}
