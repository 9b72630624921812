package swap

import (
	"testing"

	"github.com/google/uuid"
)

func TestRoleOf(t *testing.T) {
	requester := uuid.New()
	provider := uuid.New()
	r := Request{RequesterID: requester, ProviderID: provider}

	if got := r.RoleOf(requester); got != RoleRequester {
		t.Fatalf("expected RoleRequester, got %v", got)
	}
	if got := r.RoleOf(provider); got != RoleProvider {
		t.Fatalf("expected RoleProvider, got %v", got)
	}
	if got := r.RoleOf(uuid.New()); got != RoleNone {
		t.Fatalf("expected RoleNone, got %v", got)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		role Role
		next Status
		want bool
	}{
		{"provider accepts pending", StatusPending, RoleProvider, StatusAccepted, true},
		{"provider rejects pending", StatusPending, RoleProvider, StatusRejected, true},
		{"requester cannot accept", StatusPending, RoleRequester, StatusAccepted, false},
		{"requester cannot reject", StatusPending, RoleRequester, StatusRejected, false},
		{"requester cancels pending", StatusPending, RoleRequester, StatusCancelled, true},
		{"provider cannot cancel", StatusPending, RoleProvider, StatusCancelled, false},
		{"pending cannot complete", StatusPending, RoleProvider, StatusCompleted, false},
		{"requester completes accepted", StatusAccepted, RoleRequester, StatusCompleted, true},
		{"provider completes accepted", StatusAccepted, RoleProvider, StatusCompleted, true},
		{"accepted cannot revert", StatusAccepted, RoleProvider, StatusPending, false},
		{"rejected is terminal", StatusRejected, RoleProvider, StatusAccepted, false},
		{"cancelled is terminal", StatusCancelled, RoleRequester, StatusPending, false},
		{"completed is terminal", StatusCompleted, RoleProvider, StatusAccepted, false},
		{"completed stays completed", StatusCompleted, RoleRequester, StatusCompleted, false},
		{"outsider refused", StatusPending, RoleNone, StatusAccepted, false},
		{"unknown status refused", StatusPending, RoleProvider, Status("archived"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Request{Status: tc.from}
			if got := r.CanTransition(tc.role, tc.next); got != tc.want {
				t.Fatalf("CanTransition(%v, %s->%s) = %v, want %v", tc.role, tc.from, tc.next, got, tc.want)
			}
		})
	}
}

func TestDeletable(t *testing.T) {
	for _, st := range []Status{StatusPending, StatusAccepted, StatusRejected, StatusCancelled} {
		r := Request{Status: st}
		if !r.Deletable(RoleRequester) {
			t.Fatalf("requester should be able to delete %s request", st)
		}
		if r.Deletable(RoleProvider) {
			t.Fatalf("provider must never delete, status %s", st)
		}
		if r.Deletable(RoleNone) {
			t.Fatalf("outsider must never delete, status %s", st)
		}
	}

	r := Request{Status: StatusCompleted}
	if r.Deletable(RoleRequester) {
		t.Fatal("completed request must not be deletable")
	}
}
