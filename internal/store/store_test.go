package store

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionCRUD(t *testing.T) {
	s := newTestStore(t)

	// Empty DB should report zero counts.
	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Sessions != 0 || stats.Artifacts != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}

	// Insert and retrieve.
	if err := s.UpsertSession("ab12cd34", "chemistry"); err != nil {
		t.Fatalf("UpsertSession: %v", err)
	}
	sess, err := s.GetSession("ab12cd34")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.Subject != "chemistry" {
		t.Errorf("expected subject 'chemistry', got %q", sess.Subject)
	}
	if sess.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	// Not found.
	_, err = s.GetSession("missing")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Upsert updates the subject without duplicating the row.
	if err := s.UpsertSession("ab12cd34", "physics"); err != nil {
		t.Fatalf("UpsertSession update: %v", err)
	}
	sess, _ = s.GetSession("ab12cd34")
	if sess.Subject != "physics" {
		t.Errorf("expected updated subject 'physics', got %q", sess.Subject)
	}
	stats, _ = s.GetStats()
	if stats.Sessions != 1 {
		t.Fatalf("expected 1 session after upsert, got %d", stats.Sessions)
	}
}

func TestArtifacts(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertSession("s1", "biology"); err != nil {
		t.Fatalf("UpsertSession: %v", err)
	}

	// No artifacts yet.
	list, err := s.ListArtifacts("s1")
	if err != nil {
		t.Fatalf("ListArtifacts: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	for _, a := range []struct{ kind, path string }{
		{"json", "/data/outputs/json/exam_s1.json"},
		{"pdf", "/data/outputs/pdf/exam_s1.pdf"},
		{"docx", "/data/outputs/docx/exam_s1.docx"},
	} {
		if _, err := s.AddArtifact("s1", a.kind, a.path); err != nil {
			t.Fatalf("AddArtifact(%s): %v", a.kind, err)
		}
	}

	list, err = s.ListArtifacts("s1")
	if err != nil {
		t.Fatalf("ListArtifacts: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(list))
	}
	// Creation order.
	if list[0].Kind != "json" || list[2].Kind != "docx" {
		t.Errorf("unexpected artifact order: %q, %q, %q", list[0].Kind, list[1].Kind, list[2].Kind)
	}
	if list[1].Path != "/data/outputs/pdf/exam_s1.pdf" {
		t.Errorf("unexpected pdf path %q", list[1].Path)
	}

	stats, _ := s.GetStats()
	if stats.Artifacts != 3 {
		t.Errorf("expected 3 artifacts in stats, got %d", stats.Artifacts)
	}
}

func TestRecentSessions(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"s1", "s2", "s3"} {
		if err := s.UpsertSession(id, "maths"); err != nil {
			t.Fatalf("UpsertSession(%s): %v", id, err)
		}
	}

	sessions, err := s.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	sessions, _ = s.RecentSessions(10)
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertSession("gone", "english"); err != nil {
		t.Fatalf("UpsertSession: %v", err)
	}
	if _, err := s.AddArtifact("gone", "json", "/data/outputs/json/exam_gone.json"); err != nil {
		t.Fatalf("AddArtifact: %v", err)
	}

	if err := s.DeleteSession("gone"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}

	if _, err := s.GetSession("gone"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	list, _ := s.ListArtifacts("gone")
	if len(list) != 0 {
		t.Errorf("expected artifacts removed, got %d", len(list))
	}
}
