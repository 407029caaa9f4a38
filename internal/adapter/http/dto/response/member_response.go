package response

import (
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"
)

type MemberResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	DNI        string    `json:"dni,omitempty"`
	Status     string    `json:"status"`
	JoinDate   string    `json:"join_date,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromMember(m entities.Member) MemberResponse {
	return MemberResponse{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		FullName:   m.FullName(),
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		City:       m.City,
		PostalCode: m.PostalCode,
		DNI:        m.DNI,
		Status:     string(m.Status),
		JoinDate:   formatDate(m.JoinDate),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromMembers(ms []entities.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMember(m))
	}
	return out
}

// MemberListResponse mirrors the directory webhook shape.
type MemberListResponse struct {
	Count int              `json:"count"`
	Data  []MemberResponse `json:"data"`
}

func FromMemberList(ms []entities.Member) MemberListResponse {
	return MemberListResponse{Count: len(ms), Data: FromMembers(ms)}
}

type MemberStatsResponse struct {
	Total    int              `json:"total"`
	Active   int              `json:"active"`
	Inactive int              `json:"inactive"`
	Pending  int              `json:"pending"`
	Recent   []MemberResponse `json:"recent"`
}

func FromMemberStats(s usecase.MemberStats) MemberStatsResponse {
	return MemberStatsResponse{
		Total:    s.Total,
		Active:   s.Active,
		Inactive: s.Inactive,
		Pending:  s.Pending,
		Recent:   FromMembers(s.Recent),
	}
}

type SyncResponse struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

func FromSyncResult(r usecase.SyncResult) SyncResponse {
	return SyncResponse{Fetched: r.Fetched, Created: r.Created, Updated: r.Updated}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
