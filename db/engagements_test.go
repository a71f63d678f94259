package db

import (
	"sync"
	"testing"
)

func TestRecordEngagement_InsertsOnce(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateSubmission("A", "http://x/1", "m1", "c1")
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}

	inserted, err := s.RecordEngagement("B", id)
	if err != nil {
		t.Fatalf("RecordEngagement() failed: %v", err)
	}
	if !inserted {
		t.Error("first RecordEngagement() should insert")
	}

	inserted, err = s.RecordEngagement("B", id)
	if err != nil {
		t.Fatalf("second RecordEngagement() failed: %v", err)
	}
	if inserted {
		t.Error("duplicate RecordEngagement() must not insert")
	}

	engaged, err := s.HasEngaged("B", id)
	if err != nil {
		t.Fatalf("HasEngaged() failed: %v", err)
	}
	if !engaged {
		t.Error("HasEngaged() should report true after insert")
	}
}

func TestRecordEngagement_ConcurrentDuplicates(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateSubmission("A", "http://x/1", "m1", "c1")
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := s.RecordEngagement("B", id)
			if err != nil {
				t.Errorf("RecordEngagement() failed: %v", err)
				return
			}
			results <- inserted
		}()
	}
	wg.Wait()
	close(results)

	insertedCount := 0
	for inserted := range results {
		if inserted {
			insertedCount++
		}
	}
	if insertedCount != 1 {
		t.Errorf("exactly one concurrent attempt should insert, got %d", insertedCount)
	}

	var rows int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM engagements").Scan(&rows); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected a single edge row, got %d", rows)
	}
}

func TestEngagersFor_OrderedByEngagementTime(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateSubmission("A", "http://x/1", "m1", "c1")
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}

	for _, engager := range []string{"B", "C", "D"} {
		if _, err := s.RecordEngagement(engager, id); err != nil {
			t.Fatalf("RecordEngagement(%s) failed: %v", engager, err)
		}
	}

	engagers, err := s.EngagersFor(id)
	if err != nil {
		t.Fatalf("EngagersFor() failed: %v", err)
	}
	want := []string{"B", "C", "D"}
	if len(engagers) != len(want) {
		t.Fatalf("expected %d engagers, got %v", len(want), engagers)
	}
	for idx := range want {
		if engagers[idx] != want[idx] {
			t.Errorf("engager order mismatch at %d: got %v, want %v", idx, engagers, want)
			break
		}
	}
}

func TestUpsertUser_NeverLowersPoints(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertUser("A", "Alice"); err != nil {
		t.Fatalf("UpsertUser() failed: %v", err)
	}
	if err := s.IncrementPoints("A", 2); err != nil {
		t.Fatalf("IncrementPoints() failed: %v", err)
	}

	// Re-upserting with a new display name keeps the points.
	if err := s.UpsertUser("A", "Alice Again"); err != nil {
		t.Fatalf("UpsertUser() failed: %v", err)
	}

	user, err := s.GetUser("A")
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if user.DisplayName != "Alice Again" {
		t.Errorf("display name not refreshed: %q", user.DisplayName)
	}
	if user.TotalPoints != 2 {
		t.Errorf("points must survive upsert, got %d", user.TotalPoints)
	}
}

func TestLeaderboard_OrderedByPoints(t *testing.T) {
	s := newTestStore(t)

	for _, u := range []struct {
		id, name string
		points   int
	}{
		{"A", "Alice", 1},
		{"B", "Bob", 5},
		{"C", "Cara", 3},
	} {
		if err := s.UpsertUser(u.id, u.name); err != nil {
			t.Fatalf("UpsertUser() failed: %v", err)
		}
		if err := s.IncrementPoints(u.id, u.points); err != nil {
			t.Fatalf("IncrementPoints() failed: %v", err)
		}
	}

	entries, err := s.Leaderboard(2)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserID != "B" || entries[0].Points != 5 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].UserID != "C" || entries[1].Points != 3 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
