package runlog

import (
	"context"
	"errors"
	"testing"
)

func TestStoreNoopWhenMongoURIEmpty(t *testing.T) {
	s := Store{}
	r := NewRun("setup", "space1")
	r.Finish(nil)

	// should be noop and not error when URI empty
	if err := s.Save(context.Background(), r); err != nil {
		t.Fatalf("expected no error for empty URI, got %v", err)
	}
	if got, err := s.Load(context.Background(), r.RunID); err != nil || got != nil {
		t.Fatalf("expected nil result for empty URI, got %v err=%v", got, err)
	}
	if runs, err := s.Recent(context.Background(), 10); err != nil || runs != nil {
		t.Fatalf("expected nil list for empty URI, got %v err=%v", runs, err)
	}
}

func TestRunFinish(t *testing.T) {
	r := NewRun("export", "")
	if r.RunID == "" || r.StartedAt.IsZero() {
		t.Fatalf("run id and start time should be set: %+v", r)
	}
	r.Finish(nil)
	if r.Status != StatusOK || r.Error != "" {
		t.Fatalf("status = %q err = %q, want ok", r.Status, r.Error)
	}

	r = NewRun("export", "")
	r.Finish(errors.New("disk full"))
	if r.Status != StatusFailed || r.Error != "disk full" {
		t.Fatalf("status = %q err = %q, want failed/disk full", r.Status, r.Error)
	}
	if r.FinishedAt.Before(r.StartedAt) {
		t.Fatalf("finished before started")
	}
}
