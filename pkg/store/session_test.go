package store

import (
	"testing"
)

func TestRecipientMerge(t *testing.T) {
	tests := []struct {
		name     string
		stored   RecipientInfo
		detected RecipientInfo
		want     RecipientInfo
	}{
		{
			name:     "detected gender fills the gap",
			stored:   RecipientInfo{AgeYears: 25},
			detected: RecipientInfo{Gender: "male"},
			want:     RecipientInfo{Gender: "male", AgeYears: 25},
		},
		{
			name:     "detected value wins over stored",
			stored:   RecipientInfo{Gender: "male"},
			detected: RecipientInfo{Gender: "female"},
			want:     RecipientInfo{Gender: "female"},
		},
		{
			name:     "explicit age clears a stored group",
			stored:   RecipientInfo{AgeGroup: "young"},
			detected: RecipientInfo{AgeYears: 30},
			want:     RecipientInfo{AgeYears: 30},
		},
		{
			name:     "age group clears a stored explicit age",
			stored:   RecipientInfo{AgeYears: 30},
			detected: RecipientInfo{AgeGroup: "senior"},
			want:     RecipientInfo{AgeGroup: "senior"},
		},
		{
			name:     "empty detection keeps stored values",
			stored:   RecipientInfo{Gender: "female", AgeYears: 25},
			detected: RecipientInfo{},
			want:     RecipientInfo{Gender: "female", AgeYears: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stored.Merge(tt.detected); got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSessionReset(t *testing.T) {
	session := &Session{
		ID:        "s-1",
		State:     StateAwaitingRecipient,
		Recipient: RecipientInfo{Gender: "male"},
		Messages:  []ChatMessage{{Id: "m-1", Role: RoleUser, Content: "hi"}},
		LastQuery: "hi",
	}

	session.Reset()

	if session.State != StateIdle {
		t.Errorf("State = %q, want %q", session.State, StateIdle)
	}
	if session.Recipient.HasAny() {
		t.Errorf("Recipient = %+v, want empty", session.Recipient)
	}
	if len(session.Messages) != 0 || session.LastQuery != "" {
		t.Error("log not cleared")
	}

	// reset is idempotent
	session.Reset()
	if session.State != StateIdle {
		t.Error("second reset changed state")
	}
}
