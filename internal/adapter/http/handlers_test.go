package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	adapthttp "dailytrack/internal/adapter/http"
	"dailytrack/internal/adapter/memory"
	"dailytrack/internal/app"
	"dailytrack/internal/domain"
)

const day = "2026-02-08"

// ---------------------------------------------------------------------------
// Test-server helper
// ---------------------------------------------------------------------------

type testEnv struct {
	db      *memory.DB
	authSvc *app.AuthService
	ts      *httptest.Server
}

func newTestServer(t *testing.T, withAuth bool) *testEnv {
	t.Helper()
	ctx := context.Background()

	db := memory.New()
	ns := app.NewNutritionService(ctx, db)
	ws := app.NewWorkoutService(ctx, db)
	ps := app.NewProfileService(ctx, db, domain.DefaultUnitOptions())
	ss := app.NewSummaryService(ns, ws, ps)
	authSvc := app.NewAuthService(db, db.NewSessionRepo(), app.DefaultSessionTTL)

	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := adapthttp.New(ns, ws, ps, ss, authSvc, webDir)
	if !withAuth {
		srv = srv.WithoutAuth()
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &testEnv{db: db, authSvc: authSvc, ts: ts}
}

func doJSON(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() }) //nolint:errcheck
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	env := newTestServer(t, false)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]any
	decodeInto(t, resp, &body)
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestConfigEndpoint(t *testing.T) {
	env := newTestServer(t, false)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/config", "")
	var body struct {
		SSOEnabled bool               `json:"sso_enabled"`
		Units      domain.UnitOptions `json:"units"`
	}
	decodeInto(t, resp, &body)
	if body.SSOEnabled {
		t.Fatal("expected sso disabled")
	}
	if diff := cmp.Diff(domain.DefaultUnitOptions(), body.Units); diff != "" {
		t.Fatalf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestEntriesLifecycle(t *testing.T) {
	env := newTestServer(t, false)
	url := env.ts.URL + "/api/entries"

	doJSON(t, http.DefaultClient, http.MethodPost, url, `{"date":"`+day+`","food":"Apple","calories":95}`)
	resp := doJSON(t, http.DefaultClient, http.MethodPost, url, `{"date":"`+day+`","food":"Bread","calories":"120,4"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got domain.NutritionDay
	decodeInto(t, resp, &got)
	want := domain.NutritionDay{
		Day: day,
		Entries: []domain.NutritionEntry{
			{Food: "Bread", Calories: 120},
			{Food: "Apple", Calories: 95},
		},
		TotalCalories: 215,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("day mismatch (-want +got):\n%s", diff)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodDelete, url+"?date="+day+"&index=0", "")
	decodeInto(t, resp, &got)
	if len(got.Entries) != 1 || got.Entries[0].Food != "Apple" || got.TotalCalories != 95 {
		t.Fatalf("unexpected day after delete: %+v", got)
	}

	stored, _, _ := env.db.Get(context.Background(), domain.KeyEntries)
	if !strings.Contains(stored, `"Apple"`) || strings.Contains(stored, `"Bread"`) {
		t.Fatalf("unexpected persisted entries: %s", stored)
	}
}

func TestEntriesInvalidInputIsNoop(t *testing.T) {
	env := newTestServer(t, false)
	url := env.ts.URL + "/api/entries"

	for _, body := range []string{
		`{"date":"` + day + `","food":"  ","calories":100}`,
		`{"date":"` + day + `","food":"Soup"}`,
		`{"date":"` + day + `","food":"Soup","calories":"abc"}`,
		`{"date":"` + day + `","food":"Soup","calories":-5}`,
	} {
		resp := doJSON(t, http.DefaultClient, http.MethodPost, url, body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", body, resp.StatusCode)
		}
		var got domain.NutritionDay
		decodeInto(t, resp, &got)
		if len(got.Entries) != 0 {
			t.Fatalf("%s: expected no entries, got %+v", body, got.Entries)
		}
	}
	if _, found, _ := env.db.Get(context.Background(), domain.KeyEntries); found {
		t.Fatal("expected nothing persisted")
	}
}

func TestEntriesBadRequests(t *testing.T) {
	env := newTestServer(t, false)
	url := env.ts.URL + "/api/entries"

	tests := []struct {
		name, method, url, body string
	}{
		{"bad date query", http.MethodGet, url + "?date=yesterday", ""},
		{"bad date body", http.MethodPost, url, `{"date":"02/08/2026","food":"Apple","calories":1}`},
		{"unknown field", http.MethodPost, url, `{"food":"Apple","kcal":1}`},
		{"bad index", http.MethodDelete, url + "?date=" + day + "&index=first", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.DefaultClient, tt.method, tt.url, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}

	resp := doJSON(t, http.DefaultClient, http.MethodPatch, url, "")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestWorkoutsLifecycle(t *testing.T) {
	env := newTestServer(t, false)
	url := env.ts.URL + "/api/workouts"

	doJSON(t, http.DefaultClient, http.MethodPost, url, `{"date":"`+day+`","name":"Run","type":"cardio","minutes":30}`)
	resp := doJSON(t, http.DefaultClient, http.MethodPost, url, `{"date":"`+day+`","name":"Lift","type":"strength","minutes":"45.4"}`)

	var got domain.WorkoutDay
	decodeInto(t, resp, &got)
	want := domain.WorkoutDay{
		Day: day,
		Sessions: []domain.WorkoutEntry{
			{Name: "Lift", Type: domain.WorkoutStrength, Minutes: 45},
			{Name: "Run", Type: domain.WorkoutCardio, Minutes: 30},
		},
		TotalMinutes: 75,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("day mismatch (-want +got):\n%s", diff)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodPost, url, `{"date":"`+day+`","name":"Swim","type":"aquatic","minutes":20}`)
	decodeInto(t, resp, &got)
	if len(got.Sessions) != 2 {
		t.Fatalf("expected unknown type to be ignored, got %+v", got.Sessions)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodDelete, url+"?date="+day+"&index=5", "")
	decodeInto(t, resp, &got)
	if len(got.Sessions) != 2 {
		t.Fatalf("expected out-of-range delete to be ignored, got %+v", got.Sessions)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodGet, url+"?date=2026-02-09", "")
	decodeInto(t, resp, &got)
	if got.Day != "2026-02-09" || len(got.Sessions) != 0 || got.Sessions == nil {
		t.Fatalf("expected empty non-nil day, got %+v", got)
	}
}

func TestProfileAndBMI(t *testing.T) {
	env := newTestServer(t, false)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/profile", "")
	var got struct {
		Profile domain.BodyProfile `json:"profile"`
		BMI     struct {
			BMI      *float64 `json:"bmi"`
			Category string   `json:"category"`
			Display  string   `json:"display"`
		} `json:"bmi"`
	}
	decodeInto(t, resp, &got)
	if got.BMI.BMI != nil || got.BMI.Category != domain.CategoryIncomplete || got.BMI.Display != "BMI: --" {
		t.Fatalf("expected incomplete reading, got %+v", got.BMI)
	}
	if got.Profile.WeightUnit != domain.Kilograms || got.Profile.HeightUnit != domain.Centimeters {
		t.Fatalf("expected default units, got %+v", got.Profile)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodPut, env.ts.URL+"/api/profile",
		`{"weight":"70","weightUnit":"kg","height":175,"heightUnit":"cm"}`)
	decodeInto(t, resp, &got)
	if got.BMI.Display != "BMI: 22.9" || got.BMI.Category != domain.CategoryNormal {
		t.Fatalf("unexpected reading: %+v", got.BMI)
	}
	if v, _, _ := env.db.Get(context.Background(), domain.KeyHeight); v != "175" {
		t.Fatalf("expected stored height 175, got %q", v)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/bmi?weight=150&weightUnit=lb&height=65&heightUnit=in", "")
	decodeInto(t, resp, &got.BMI)
	if got.BMI.Display != "BMI: 25.0" || got.BMI.Category != domain.CategoryNormal {
		t.Fatalf("unexpected stateless reading: %+v", got.BMI)
	}
}

func TestTinyHeightGivesIncompleteReading(t *testing.T) {
	env := newTestServer(t, false)

	var reading struct {
		BMI      *float64 `json:"bmi"`
		Category string   `json:"category"`
	}
	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/bmi?weight=70&weightUnit=kg&height=1e-200&heightUnit=m", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	decodeInto(t, resp, &reading)
	if reading.BMI != nil || reading.Category != domain.CategoryIncomplete {
		t.Fatalf("expected incomplete reading, got %+v", reading)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodPut, env.ts.URL+"/api/profile",
		`{"weight":70,"weightUnit":"kg","height":1e-200,"heightUnit":"m"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/summary?date="+day, "")
	var got app.DailySummary
	decodeInto(t, resp, &got)
	if got.Day != day || got.BMI.BMI != nil || got.BMI.Category != domain.CategoryIncomplete {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	env := newTestServer(t, false)

	doJSON(t, http.DefaultClient, http.MethodPost, env.ts.URL+"/api/entries", `{"date":"`+day+`","food":"Apple","calories":95}`)
	doJSON(t, http.DefaultClient, http.MethodPost, env.ts.URL+"/api/workouts", `{"date":"`+day+`","name":"Run","type":"cardio","minutes":30}`)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/summary?date="+day, "")
	var got app.DailySummary
	decodeInto(t, resp, &got)
	want := app.DailySummary{
		Day:           day,
		TotalCalories: 95,
		EntryCount:    1,
		TotalMinutes:  30,
		WorkoutCount:  1,
		BMI:           domain.BMIResult{Category: domain.CategoryIncomplete},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestServer(t, true)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/entries?date="+day, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected health to stay public, got %d", resp.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	env := newTestServer(t, true)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Jar: jar}

	resp := doJSON(t, client, http.MethodPost, env.ts.URL+"/api/auth/setup", `{"username":"owner","password":"hunter22"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("setup: expected 200, got %d", resp.StatusCode)
	}
	resp = doJSON(t, client, http.MethodPost, env.ts.URL+"/api/auth/setup", `{"username":"other","password":"hunter22"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second setup: expected 409, got %d", resp.StatusCode)
	}

	resp = doJSON(t, client, http.MethodPost, env.ts.URL+"/api/auth/login", `{"username":"owner","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", resp.StatusCode)
	}

	resp = doJSON(t, client, http.MethodPost, env.ts.URL+"/api/auth/login", `{"username":"owner","password":"hunter22"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}

	resp = doJSON(t, client, http.MethodGet, env.ts.URL+"/api/auth/me", "")
	var me map[string]string
	decodeInto(t, resp, &me)
	if me["username"] != "owner" {
		t.Fatalf("expected owner, got %v", me)
	}

	resp = doJSON(t, client, http.MethodPost, env.ts.URL+"/api/auth/logout", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}
	resp = doJSON(t, client, http.MethodGet, env.ts.URL+"/api/auth/me", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("after logout: expected 401, got %d", resp.StatusCode)
	}
}

func TestSSODisabled(t *testing.T) {
	env := newTestServer(t, false)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/api/auth/sso/login", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSPAFallback(t *testing.T) {
	env := newTestServer(t, false)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, env.ts.URL+"/some/client/route", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Cache-Control") != "no-store" {
		t.Fatalf("expected no-store, got %q", resp.Header.Get("Cache-Control"))
	}
}
