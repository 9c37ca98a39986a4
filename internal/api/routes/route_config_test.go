package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"FitLog-Backend/domain"
	"FitLog-Backend/entities"
	"FitLog-Backend/internal/api/handlers"
	"FitLog-Backend/internal/middleware"
	"FitLog-Backend/internal/utils"
	"FitLog-Backend/pkg/jwt"
	"FitLog-Backend/pkg/meal"
	"FitLog-Backend/pkg/user"
	"FitLog-Backend/pkg/workout"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const testSuperAdminEmail = "admin@fitlog.app"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	utils.InitValidator()

	databasePath := filepath.Join(t.TempDir(), "routes-test.db")
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}, &entities.MealEntry{}, &entities.WorkoutEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	jwtService := jwt.NewJWTServiceWithSecret("route-test-secret")
	userService := user.NewUserService(user.NewUserRepository(db), jwtService, nil, testSuperAdminEmail)
	mealService := meal.NewMealService(meal.NewMealRepository(db))
	workoutService := workout.NewWorkoutService(workout.NewWorkoutRepository(db))

	app := fiber.New()
	config := Config{
		App:            app,
		UserHandler:    handlers.NewUserHandler(userService, utils.Validate),
		MealHandler:    handlers.NewMealHandler(mealService, utils.Validate),
		WorkoutHandler: handlers.NewWorkoutHandler(workoutService, utils.Validate),
		Middleware:     middleware.NewMiddleware(userService),
		JWTService:     jwtService,
	}
	config.Setup()
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var parsed map[string]any
	if resp.Header.Get("Content-Type") != "" {
		_ = json.NewDecoder(resp.Body).Decode(&parsed)
	}
	resp.Body.Close()
	return resp, parsed
}

func signIn(t *testing.T, app *fiber.App, email string) (token string, userID string) {
	t.Helper()

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/v1/auth/callback", "", map[string]any{
		"email":    email,
		"name":     "Test User",
		"provider": "google",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign in %s: status %d body %v", email, resp.StatusCode, parsed)
	}
	data := parsed["data"].(map[string]any)
	token = data["token"].(string)
	userID = data["user"].(map[string]any)["id"].(string)
	return token, userID
}

func approveMember(t *testing.T, app *fiber.App, adminToken, memberID string) {
	t.Helper()

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/v1/users/approve", adminToken, map[string]any{
		"user_id": memberID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve: status %d body %v", resp.StatusCode, parsed)
	}
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/ping", "", nil)
	if resp.StatusCode != http.StatusOK || parsed["message"] != "pong" {
		t.Fatalf("status %d body %v", resp.StatusCode, parsed)
	}
}

func TestAPIRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/v1/users/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if parsed["success"] != false || parsed["error"] != domain.MessageUnauthorized {
		t.Fatalf("unexpected body %v", parsed)
	}

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/users/me", "tampered.token.here", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", resp.StatusCode)
	}
}

func TestPendingMemberBlockedFromTrackers(t *testing.T) {
	app := newTestApp(t)
	memberToken, _ := signIn(t, app, "jane@example.com")

	// profile works, tracking does not
	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/users/me", memberToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/v1/meals", memberToken, map[string]any{
		"date":  "2026-01-05",
		"meals": []map[string]any{{"meal_type": "LUNCH", "source": "HOME"}},
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body %v", resp.StatusCode, parsed)
	}
	if parsed["error"] != domain.MessageAccessPending {
		t.Fatalf("unexpected error message %v", parsed["error"])
	}
}

func TestAdminEndpointsForbiddenForMembers(t *testing.T) {
	app := newTestApp(t)
	memberToken, memberID := signIn(t, app, "jane@example.com")

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/v1/users/unapproved", memberToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if parsed["error"] != domain.MessageForbidden {
		t.Fatalf("unexpected error message %v", parsed["error"])
	}

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/users/approve", memberToken, map[string]any{
		"user_id": memberID,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 on self-approval, got %d", resp.StatusCode)
	}
}

func TestApprovalUnlocksExistingSession(t *testing.T) {
	app := newTestApp(t)
	memberToken, memberID := signIn(t, app, "jane@example.com")
	adminToken, _ := signIn(t, app, testSuperAdminEmail)

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/v1/users/unapproved", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unapproved list: status %d body %v", resp.StatusCode, parsed)
	}
	pending := parsed["data"].([]any)
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending user, got %d", len(pending))
	}
	entry := pending[0].(map[string]any)
	if entry["email"] != "jane@example.com" {
		t.Fatalf("unexpected pending entry %v", entry)
	}
	if _, leaked := entry["role"]; leaked {
		t.Fatalf("pending projection should not include role: %v", entry)
	}

	approveMember(t, app, adminToken, memberID)

	// Token issued before approval works now; approval is read from the
	// store per request, not from the stale claims.
	resp, parsed = doRequest(t, app, http.MethodPost, "/api/v1/meals", memberToken, map[string]any{
		"date":  "2026-01-05",
		"meals": []map[string]any{{"meal_type": "BREAKFAST", "source": "HOME", "food_description": "oats"}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save meals after approval: status %d body %v", resp.StatusCode, parsed)
	}
	data := parsed["data"].(map[string]any)
	if data["upserted_count"].(float64) != 1 || data["modified_count"].(float64) != 0 {
		t.Fatalf("unexpected counts %v", data)
	}

	resp, parsed = doRequest(t, app, http.MethodGet, "/api/v1/meals?date=2026-01-05", memberToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("fetch meals: status %d body %v", resp.StatusCode, parsed)
	}
	meals := parsed["data"].(map[string]any)["meals"].(map[string]any)
	if len(meals) != 4 {
		t.Fatalf("expected all 4 meal categories in the response, got %v", meals)
	}
	if meals["BREAKFAST"] == nil || meals["LUNCH"] != nil {
		t.Fatalf("unexpected meal shape %v", meals)
	}
}

func TestSaveMealsValidation(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := signIn(t, app, testSuperAdminEmail)

	cases := []struct {
		name  string
		meals []map[string]any
	}{
		{"empty batch", []map[string]any{}},
		{"unknown category", []map[string]any{{"meal_type": "BRUNCH", "source": "HOME"}}},
		{"unknown source", []map[string]any{{"meal_type": "LUNCH", "source": "RESTAURANT"}}},
	}
	oversized := make([]map[string]any, 0, 11)
	for i := 0; i < 11; i++ {
		oversized = append(oversized, map[string]any{"meal_type": "LUNCH", "source": "HOME", "food_description": fmt.Sprintf("item %d", i)})
	}
	cases = append(cases, struct {
		name  string
		meals []map[string]any
	}{"oversized batch", oversized})

	for _, tc := range cases {
		resp, parsed := doRequest(t, app, http.MethodPost, "/api/v1/meals", adminToken, map[string]any{
			"date":  "2026-01-05",
			"meals": tc.meals,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body %v", tc.name, resp.StatusCode, parsed)
		}
		if _, ok := parsed["details"]; !ok {
			t.Fatalf("%s: expected field details in %v", tc.name, parsed)
		}
	}
}

func TestSaveWorkoutsValidation(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := signIn(t, app, testSuperAdminEmail)

	// duplicate categories in one batch
	resp, parsed := doRequest(t, app, http.MethodPost, "/api/v1/workouts", adminToken, map[string]any{
		"date": "2026-01-05",
		"workouts": []map[string]any{
			{"workout_type": "GYM"},
			{"workout_type": "GYM"},
		},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate categories, got %d body %v", resp.StatusCode, parsed)
	}

	// malformed date never reaches the store
	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/workouts", adminToken, map[string]any{
		"date":     "05-01-2026",
		"workouts": []map[string]any{{"workout_type": "GYM"}},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", resp.StatusCode)
	}
}

func TestWorkoutRoundTrip(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := signIn(t, app, testSuperAdminEmail)

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/v1/workouts", adminToken, map[string]any{
		"date": "2026-01-05",
		"workouts": []map[string]any{
			{"workout_type": "GYM", "description": "leg day"},
			{"workout_type": "WALKING"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save workouts: status %d body %v", resp.StatusCode, parsed)
	}

	resp, parsed = doRequest(t, app, http.MethodGet, "/api/v1/workouts?date=2026-01-05", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("fetch workouts: status %d body %v", resp.StatusCode, parsed)
	}
	data := parsed["data"].(map[string]any)
	if data["date"] != "2026-01-05" {
		t.Fatalf("unexpected date %v", data["date"])
	}
	if len(data["workouts"].([]any)) != 2 {
		t.Fatalf("expected 2 workouts, got %v", data["workouts"])
	}
}

func TestPageRedirects(t *testing.T) {
	app := newTestApp(t)
	memberToken, memberID := signIn(t, app, "jane@example.com")
	adminToken, _ := signIn(t, app, testSuperAdminEmail)

	get := func(path, token string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		return resp
	}

	// anonymous visitors land on the sign-in page
	resp := get("/meals", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/auth/signin" {
		t.Fatalf("expected redirect to /auth/signin, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	// unapproved members are held on the access-pending page
	resp = get("/meals", memberToken)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/access-pending" {
		t.Fatalf("expected redirect to /access-pending, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if resp := get("/access-pending", memberToken); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected access-pending page to load, got %d", resp.StatusCode)
	}

	// approved members cannot open admin pages
	approveMember(t, app, adminToken, memberID)
	resp = get("/approval", memberToken)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/meals" {
		t.Fatalf("expected redirect to /meals, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if resp := get("/meals", memberToken); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected meals page to load after approval, got %d", resp.StatusCode)
	}

	// the root page forwards signed-in users to the tracker
	resp = get("/", adminToken)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/meals" {
		t.Fatalf("expected / to forward to /meals, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if resp := get("/approval", adminToken); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected approval page for the super admin, got %d", resp.StatusCode)
	}
}
