package app

import (
	"context"
	"testing"
)

func TestJournalAddValidation(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	if _, err := s.journal.Add(ctx, "   ", "body", 0); err == nil {
		t.Error("blank title should be rejected")
	}
	if _, err := s.journal.Add(ctx, "Title", "", 7); err == nil {
		t.Error("out-of-range mood score should be rejected")
	}
}

func TestJournalAddTrimsAndNumbers(t *testing.T) {
	s := newTestServices()

	entry, err := s.journal.Add(context.Background(), "  Morning pages  ", "  wrote a bit  ", 4)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if entry.ID != "JRN-001" {
		t.Errorf("ID = %s, want JRN-001", entry.ID)
	}
	if entry.Title != "Morning pages" || entry.Body != "wrote a bit" {
		t.Errorf("entry = %+v, want trimmed fields", entry)
	}
	if entry.MoodScore != 4 {
		t.Errorf("MoodScore = %d, want 4", entry.MoodScore)
	}
}

func TestJournalListNewestFirst(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := s.journal.Add(ctx, title, "", 0); err != nil {
			t.Fatalf("Add(%s) error = %v", title, err)
		}
	}

	entries, err := s.journal.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Title != "three" || entries[1].Title != "two" {
		t.Errorf("order = [%s %s], want newest first", entries[0].Title, entries[1].Title)
	}

	count, err := s.journal.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}
}
