package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"socis_remeses/internal/domain/entities"
)

func TestMandateRepository_OneActivePerMember(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects a second active mandate", func(t *testing.T) {
		r := NewMandateRepository()
		if _, err := r.Create(ctx, entities.Mandate{ID: "md-1", MemberID: "m-1", Reference: "MND-1", Active: true}); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := r.Create(ctx, entities.Mandate{ID: "md-2", MemberID: "m-1", Reference: "MND-2", Active: true})
		var e *entities.Error
		if !errors.As(err, &e) || e.Kind != entities.ErrConflict || e.Field != "active" || e.ID != "md-1" {
			t.Fatalf("expected active conflict naming md-1, got %v", err)
		}
		if got, _ := r.GetByID(ctx, "md-2"); got.ID != "" {
			t.Fatalf("rejected mandate was stored")
		}
		if _, err := r.Create(ctx, entities.Mandate{ID: "md-3", MemberID: "m-1", Reference: "MND-3"}); err != nil {
			t.Fatalf("inactive mandate should be accepted: %v", err)
		}
		if _, err := r.Create(ctx, entities.Mandate{ID: "md-4", MemberID: "m-2", Reference: "MND-4", Active: true}); err != nil {
			t.Fatalf("other member should be accepted: %v", err)
		}
	})

	t.Run("update rejects activating a second mandate", func(t *testing.T) {
		r := NewMandateRepository()
		active, _ := r.Create(ctx, entities.Mandate{ID: "md-1", MemberID: "m-1", Reference: "MND-1", Active: true})
		idle, _ := r.Create(ctx, entities.Mandate{ID: "md-2", MemberID: "m-1", Reference: "MND-2"})

		idle.Active = true
		if _, err := r.Update(ctx, idle); !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if got, _ := r.GetByID(ctx, "md-2"); got.Active {
			t.Fatalf("rejected activation was stored")
		}

		// rewriting the active one is not a conflict with itself
		active.IBAN = "DE89370400440532013000"
		if _, err := r.Update(ctx, active); err != nil {
			t.Fatalf("update active: %v", err)
		}

		active.Active = false
		if _, err := r.Update(ctx, active); err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		if _, err := r.Update(ctx, idle); err != nil {
			t.Fatalf("activate after deactivation: %v", err)
		}
	})

	t.Run("owner cannot be moved onto a member with an active mandate", func(t *testing.T) {
		r := NewMandateRepository()
		r.Create(ctx, entities.Mandate{ID: "md-1", MemberID: "m-1", Reference: "MND-1", Active: true})
		other, _ := r.Create(ctx, entities.Mandate{ID: "md-2", MemberID: "m-2", Reference: "MND-2", Active: true})

		other.MemberID = "m-1"
		got, err := r.Update(ctx, other)
		if err != nil || got.MemberID != "m-2" {
			t.Fatalf("expected owner to stay m-2, got %+v %v", got, err)
		}
	})

	t.Run("concurrent activations leave one active", func(t *testing.T) {
		r := NewMandateRepository()
		const n = 8
		for i := 0; i < n; i++ {
			r.Create(ctx, entities.Mandate{ID: string(rune('a' + i)), MemberID: "m-1", Reference: "MND-" + string(rune('a'+i))})
		}
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				m, _ := r.GetByID(ctx, string(rune('a'+i)))
				m.Active = true
				_, errs[i] = r.Update(ctx, m)
			}(i)
		}
		wg.Wait()

		ok := 0
		for _, err := range errs {
			if err == nil {
				ok++
			} else if !errors.Is(err, entities.ErrConflict) {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		list, _ := r.ListByMemberID(ctx, "m-1")
		active := 0
		for _, m := range list {
			if m.Active {
				active++
			}
		}
		if ok != 1 || active != 1 {
			t.Fatalf("expected one activation to win, got %d successes and %d active", ok, active)
		}
	})
}
