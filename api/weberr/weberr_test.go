package weberr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStorageRespondsWithRootCause(t *testing.T) {
	driverErr := errors.New(`pq: relation "master_classes" does not exist`)
	err := Storage(fmt.Errorf("selecting master classes: %w", driverErr))

	body, status, ok := Response(err)
	if !ok {
		t.Fatal("expected error to carry a response")
	}
	if status != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, status)
	}

	exp := &ErrorResponse{Error: driverErr.Error()}
	if diff := cmp.Diff(exp, body); diff != "" {
		t.Fatalf("unexpected body (-want +got):\n%s", diff)
	}

	if !errors.Is(err, driverErr) {
		t.Fatal("expected wrapped error to match the driver error")
	}
}

func TestWithFields(t *testing.T) {
	err := NotFound(errors.New("no rows"), WithFields(map[string]interface{}{"id": int64(7)}))

	fields, ok := Fields(err)
	if !ok {
		t.Fatal("expected error to carry fields")
	}
	if fields["id"] != int64(7) {
		t.Fatalf("unexpected fields: %v", fields)
	}

	_, status, ok := Response(err)
	if !ok || status != http.StatusNotFound {
		t.Fatalf("expected a %d response, got %d (ok=%v)", http.StatusNotFound, status, ok)
	}
}

func TestFieldsMergeOuterWins(t *testing.T) {
	inner := Wrap(errors.New("boom"), WithFields(map[string]interface{}{"id": 1, "table": "cart"}))
	outer := BadRequest(inner, WithFields(map[string]interface{}{"id": 2}))

	fields, ok := Fields(outer)
	if !ok {
		t.Fatal("expected error to carry fields")
	}

	exp := map[string]interface{}{"id": 2, "table": "cart"}
	if diff := cmp.Diff(exp, fields); diff != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", diff)
	}
}
