package intents_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/features/intents"
	"github.com/talentboard/careerhub/internal/testutil"
)

func submit(t *testing.T, h *intents.Handler, body interface{}, user testutil.TestUser) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/registration-intents", body, user)
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)
	return rec
}

func TestHandleSubmit_CreatesPendingIntent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := intents.NewHandler(db, zap.NewNop())
	student := testutil.StudentUser()

	rec := submit(t, h, map[string]string{
		"organizationType": "institute",
		"organizationName": "<b>Bold</b> Institute",
		"email":            "apply@bold.test",
		"contactName":      "Sam Tailor",
		"contactPhone":     "555-0100",
	}, student)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	body := testutil.DecodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]interface{})
	if data["status"] != "pending" {
		t.Errorf("status: got %v, want pending", data["status"])
	}
	if data["organizationName"] != "Bold Institute" {
		t.Errorf("markup not stripped: %v", data["organizationName"])
	}
}

func TestHandleSubmit_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := intents.NewHandler(db, zap.NewNop())

	rec := submit(t, h, map[string]string{"organizationType": "charity"}, testutil.StudentUser())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	body := testutil.DecodeEnvelope(t, rec)
	details, _ := body["details"].(map[string]interface{})
	for _, field := range []string{"organizationType", "organizationName", "email", "contactName"} {
		if details[field] == nil {
			t.Errorf("expected a problem for %q", field)
		}
	}
}

func TestHandleSubmit_DuplicatePendingConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := intents.NewHandler(db, zap.NewNop())
	student := testutil.StudentUser()

	payload := map[string]string{
		"organizationType": "business",
		"organizationName": "Acme Corp",
		"email":            "hr@acme.test",
		"contactName":      "Pat Doe",
	}
	if rec := submit(t, h, payload, student); rec.Code != http.StatusCreated {
		t.Fatalf("first submit: got %d", rec.Code)
	}
	rec := submit(t, h, payload, student)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second submit: got %d, want 409", rec.Code)
	}
	body := testutil.DecodeEnvelope(t, rec)
	if body["details"] == nil {
		t.Error("expected the conflicting key in details")
	}
}

func TestServeMine_ListsOwnOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := intents.NewHandler(db, zap.NewNop())
	alice := testutil.StudentUser()
	bob := testutil.StudentUser()

	if rec := submit(t, h, map[string]string{
		"organizationType": "institute",
		"organizationName": "Alice's Academy",
		"email":            "a@a.test",
		"contactName":      "Alice",
	}, alice); rec.Code != http.StatusCreated {
		t.Fatalf("seed submit failed: %d", rec.Code)
	}

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/api/registration-intents", bob)
	rec := httptest.NewRecorder()
	h.ServeMine(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	body := testutil.DecodeEnvelope(t, rec)
	items, _ := body["data"].([]interface{})
	if len(items) != 0 {
		t.Errorf("bob sees %d intents, want 0", len(items))
	}

	req = testutil.NewAuthenticatedRequest(http.MethodGet, "/api/registration-intents", alice)
	rec = httptest.NewRecorder()
	h.ServeMine(rec, req)
	body = testutil.DecodeEnvelope(t, rec)
	items, _ = body["data"].([]interface{})
	if len(items) != 1 {
		t.Errorf("alice sees %d intents, want 1", len(items))
	}
}
