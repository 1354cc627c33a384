package subscription_test

import (
	"testing"

	"github.com/herald-dev/herald/subscription"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		name   string
		events []string
		event  string
		want   bool
	}{
		{"exact match", []string{"onAfterClientSignUp"}, "onAfterClientSignUp", true},
		{"no match", []string{"onAfterClientSignUp"}, "onAfterAdminOrderCancel", false},
		{"all events sentinel", []string{subscription.AllEvents}, "anything.at.all", true},
		{"sentinel plus names", []string{"onAfterClientSignUp", subscription.AllEvents}, "other.event", true},
		{"redundant listing", []string{subscription.AllEvents, "onAfterClientSignUp"}, "onAfterClientSignUp", true},
		{"empty interest set", nil, "onAfterClientSignUp", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := &subscription.Subscription{Events: tc.events}
			if got := sub.Matches(tc.event); got != tc.want {
				t.Fatalf("Matches(%q) = %v, want %v", tc.event, got, tc.want)
			}
		})
	}
}
