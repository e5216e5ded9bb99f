package errors

import (
	"encoding/json"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestWithDetail_CopyOnWrite(t *testing.T) {
	base := NotFound().WithDetail("name", "John")
	derived := base.WithDetail("phone", "+380501234567")

	if _, ok := base.Details["phone"]; ok {
		t.Fatalf("base details mutated: %+v", base.Details)
	}
	if derived.Details["name"] != "John" || derived.Details["phone"] != "+380501234567" {
		t.Fatalf("derived details mismatch: %+v", derived.Details)
	}
}

func TestNew_ClonesDetails(t *testing.T) {
	in := map[string]string{"k": "v"}
	e := New("msg", codes.InvalidArgument, in)
	in["k"] = "changed"
	if e.Details["k"] != "v" {
		t.Fatalf("details were not cloned")
	}
}

func TestToString(t *testing.T) {
	e := ValidationField("birthday", "invalid_date")

	var out map[string]any
	if err := json.Unmarshal([]byte(e.Error()), &out); err != nil {
		t.Fatalf("Error() is not JSON: %v", err)
	}
	if out["code"] != "InvalidArgument" || out["reason"] != "validation_failed" {
		t.Fatalf("unexpected payload: %v", out)
	}
}
