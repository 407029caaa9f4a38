package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"socis_remeses/internal/domain/entities"
)

func serve(t *testing.T, status int, body string) *WebhookClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewWebhookClient(srv.URL)
}

func TestWebhookClient_FetchMembers(t *testing.T) {
	t.Run("maps records", func(t *testing.T) {
		c := serve(t, http.StatusOK, `{"count":2,"data":[
			{"id":"s1","nom":"Anna","cognoms":"Puig","email":"Anna@Example.org","tel":"600000000","status":"actiu"},
			{"id":"s2","nom":"Jordi","cognoms":"Serra","email":"jordi@example.org","status":"baixa"}]}`)

		members, err := c.FetchMembers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(members))
		}
		if members[0].Email != "anna@example.org" || members[0].Status != entities.MemberStatusActive {
			t.Fatalf("unexpected first member: %+v", members[0])
		}
		if members[1].Status != entities.MemberStatusInactive {
			t.Fatalf("expected inactive, got %s", members[1].Status)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		c := serve(t, http.StatusOK, `{"count":0,"data":[]}`)
		members, err := c.FetchMembers(context.Background())
		if err != nil || len(members) != 0 {
			t.Fatalf("expected empty list, got %v %v", members, err)
		}
	})

	t.Run("non-2xx is a transport error", func(t *testing.T) {
		c := serve(t, http.StatusBadGateway, `oops`)
		_, err := c.FetchMembers(context.Background())
		if err == nil || errors.Is(err, entities.ErrInvalidDocument) {
			t.Fatalf("expected plain error, got %v", err)
		}
	})
}

func TestWebhookClient_RejectsInvalidPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
		path string
	}{
		{"not json", `<html>`, ""},
		{"bare array", `[{"id":"s1"}]`, ""},
		{"unknown field", `{"count":0,"data":[],"extra":true}`, ""},
		{"missing count", `{"data":[]}`, "count"},
		{"missing data", `{"count":0}`, "data"},
		{"count mismatch", `{"count":3,"data":[]}`, "count"},
		{"bad email", `{"count":1,"data":[{"id":"s1","nom":"A","email":"nope","status":"actiu"}]}`, "data[0].email"},
		{"bad status", `{"count":1,"data":[{"id":"s1","nom":"A","email":"a@b.org","status":"active"}]}`, "data[0].status"},
		{"duplicate id", `{"count":2,"data":[{"id":"s1","nom":"A","email":"a@b.org","status":"actiu"},{"id":"s1","nom":"B","email":"b@b.org","status":"actiu"}]}`, "data[1].id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := serve(t, http.StatusOK, tc.body)
			members, err := c.FetchMembers(context.Background())
			if !errors.Is(err, entities.ErrInvalidDocument) {
				t.Fatalf("expected ErrInvalidDocument, got %v (members=%v)", err, members)
			}
			var de *entities.Error
			if errors.As(err, &de) && de.Field != tc.path {
				t.Fatalf("expected path %q, got %q", tc.path, de.Field)
			}
		})
	}
}
