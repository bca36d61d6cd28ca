package rupeelogic

import "testing"

func TestTrail(t *testing.T) {
	s := NewSession()
	// expenses exceed income and savings are below the emergency target.
	if err := s.Declare(profile(40, 50000, 60000, 100000, true, RiskLow), goal(GoalRetirement, 20)); err != nil {
		t.Fatal(err)
	}
	if err := NewEngine(nil, nil).Execute(s); err != nil {
		t.Fatal(err)
	}

	want := []struct {
		id         string
		confidence int
	}{
		{"Rule 1", 85},
		{"Rule 2A", 99},
		{"Rule 2", 95},
	}
	records := s.Trail().Records()
	if len(records) != len(want) {
		t.Fatalf("Trail().Records() has %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		if got := records[i].ID; got != w.id {
			t.Errorf("record %d: ID = %q, want %q", i, got, w.id)
		}
		if got := records[i].Confidence; got != w.confidence {
			t.Errorf("record %d: Confidence = %d, want %d", i, got, w.confidence)
		}
		if !s.Trail().Fired(w.id) {
			t.Errorf("Fired(%q) = false", w.id)
		}
	}
	if s.Trail().Fired("Rule 19") {
		t.Error("Fired(Rule 19) = true, guarded rules cannot fire after a critical one")
	}

	// Records is a copy.
	records[0].ID = "changed"
	if got := s.Trail().Records()[0].ID; got != "Rule 1" {
		t.Errorf("Records()[0].ID = %q after editing the copy", got)
	}
}
