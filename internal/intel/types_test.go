package intel

import "testing"

func TestLeadStatus_Valid(t *testing.T) {
	for _, s := range []LeadStatus{StatusNewLead, StatusContacted, StatusMeetingScheduled, StatusSolutionDiscussed, StatusArchived} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if LeadStatus("Closed Won").Valid() {
		t.Error("unknown status should be invalid")
	}
	if LeadStatus("").Valid() {
		t.Error("empty status should be invalid")
	}
}

func TestLeadStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to LeadStatus
		want     bool
	}{
		{StatusNewLead, StatusContacted, true},
		{StatusNewLead, StatusSolutionDiscussed, true},
		{StatusContacted, StatusMeetingScheduled, true},
		{StatusMeetingScheduled, StatusSolutionDiscussed, true},
		// Same state is a no-op, always allowed.
		{StatusContacted, StatusContacted, true},
		{StatusArchived, StatusArchived, true},
		// The pipeline never moves backward.
		{StatusContacted, StatusNewLead, false},
		{StatusSolutionDiscussed, StatusMeetingScheduled, false},
		// Any active stage may be archived; archived is terminal.
		{StatusNewLead, StatusArchived, true},
		{StatusSolutionDiscussed, StatusArchived, true},
		{StatusArchived, StatusNewLead, false},
		{StatusArchived, StatusContacted, false},
		// Unknown values never transition.
		{LeadStatus("bogus"), StatusContacted, false},
		{StatusNewLead, LeadStatus("bogus"), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestErrBadTransition_Error(t *testing.T) {
	err := &ErrBadTransition{From: StatusArchived, To: StatusContacted}
	want := `invalid status transition "Archived" -> "Contacted"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
