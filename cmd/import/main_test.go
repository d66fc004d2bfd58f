package main

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

type fakeRegistrar struct {
	known map[int64]bool
	calls int
}

func (f *fakeRegistrar) RegisterMany(_ context.Context, ids []int64) (int, error) {
	f.calls++
	var added int
	for _, id := range ids {
		if !f.known[id] {
			f.known[id] = true
			added++
		}
	}
	return added, nil
}

func TestParseIDs(t *testing.T) {
	input := "# exported users\n123\n\n  456  \nnot-a-number\n789\n"

	ids, skipped, err := parseIDs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseIDs: %v", err)
	}
	if want := []int64{123, 456, 789}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestImportIDsCountsOnlyNew(t *testing.T) {
	users := &fakeRegistrar{known: map[int64]bool{456: true}}

	added, err := importIDs(context.Background(), users, []int64{123, 456, 123, 789})
	if err != nil {
		t.Fatalf("importIDs: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if users.calls != 1 {
		t.Errorf("store written %d times, want 1", users.calls)
	}
}

func TestImportIDsBatches(t *testing.T) {
	users := &fakeRegistrar{known: map[int64]bool{}}
	ids := make([]int64, batchSize+1)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	added, err := importIDs(context.Background(), users, ids)
	if err != nil {
		t.Fatalf("importIDs: %v", err)
	}
	if added != len(ids) || users.calls != 2 {
		t.Errorf("added = %d in %d calls, want %d in 2", added, users.calls, len(ids))
	}
}
