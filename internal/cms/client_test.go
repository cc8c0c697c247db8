package cms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sabur-pro/rayan-admin/config"
	"github.com/sabur-pro/rayan-admin/internal/cms"
)

func newTestClient(t *testing.T, handler http.Handler) (*cms.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.CMS.BaseURL = srv.URL
	cfg.CMS.AccessToken = "token-1"
	cfg.CMS.RefreshToken = "refresh-1"
	cfg.CMS.Timeout = 5 * time.Second

	return cms.NewClient(cfg), srv
}

func TestUsersSendsBearerAndQuery(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotQuery url.Values
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(cms.Page[cms.User]{
			Data:       []cms.User{{ID: 7, Login: "student7", Role: "student"}},
			Page:       1,
			Limit:      10,
			TotalCount: 1,
		})
	}))

	page, err := client.Users(context.Background(), cms.UserQuery{
		Page: 1, Limit: 10, Role: "student", Login: "student7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer token-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	want := map[string]string{"page": "1", "limit": "10", "role": "student", "login": "student7"}
	for key, value := range want {
		if got := gotQuery.Get(key); got != value {
			t.Fatalf("expected query %s=%s, got %q", key, value, got)
		}
	}
	if page.TotalCount != 1 || len(page.Data) != 1 || page.Data[0].Login != "student7" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestSignInStoresTokenPair(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/sign-in":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["login"] != "admin" || body["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(cms.AuthResponse{
				AccessToken:  "fresh-access",
				RefreshToken: "fresh-refresh",
				ExpiresIn:    900,
			})
		case "/semester":
			if r.Header.Get("Authorization") != "Bearer fresh-access" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			json.NewEncoder(w).Encode(cms.Page[cms.Semester]{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	if err := client.SignIn(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Semesters(context.Background(), 1, 10); err != nil {
		t.Fatalf("expected new token to be used: %v", err)
	}
}

func TestRefreshOnUnauthorizedRetriesOnce(t *testing.T) {
	t.Parallel()

	var refreshCalls int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh-token":
			atomic.AddInt32(&refreshCalls, 1)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["refresh_token"] != "refresh-1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(cms.AuthResponse{
				AccessToken:  "token-2",
				RefreshToken: "refresh-2",
				ExpiresIn:    900,
			})
		case "/semester":
			if r.Header.Get("Authorization") != "Bearer token-2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(cms.Page[cms.Semester]{
				Data:       []cms.Semester{{ID: 1, Number: 1}},
				TotalCount: 1,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	page, err := client.Semesters(context.Background(), 1, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].Number != 1 {
		t.Fatalf("unexpected semesters: %+v", page)
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Fatalf("expected exactly one refresh call, got %d", got)
	}

	// the refreshed token must stick for subsequent requests
	if _, err := client.Semesters(context.Background(), 1, 50); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Fatalf("expected no further refresh calls, got %d", got)
	}
}

func TestUpstreamErrorCarriesStatus(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))

	_, err := client.Courses(context.Background(), "ru", 1, 10)
	if err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestAllDegreesWalksPages(t *testing.T) {
	t.Parallel()

	pages := map[string][]cms.Degree{
		"1": {{ID: 1}, {ID: 2}},
		"2": {{ID: 3}},
	}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := pages[r.URL.Query().Get("page")]
		json.NewEncoder(w).Encode(cms.Page[cms.Degree]{
			Data:       data,
			TotalCount: 3,
		})
	}))

	degrees, err := client.AllDegrees(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(degrees) != 3 {
		t.Fatalf("expected 3 degrees, got %d", len(degrees))
	}
	if degrees[2].ID != 3 {
		t.Fatalf("expected pages concatenated in order, got %+v", degrees)
	}
}

func TestAllDegreesStopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	var calls int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// total_count claims more rows than the server ever returns
		json.NewEncoder(w).Encode(cms.Page[cms.Degree]{Data: nil, TotalCount: 100})
	}))

	degrees, err := client.AllDegrees(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(degrees) != 0 {
		t.Fatalf("expected no degrees, got %d", len(degrees))
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected walk to stop after the first empty page, got %d calls", calls)
	}
}

func TestActivateSubscription(t *testing.T) {
	t.Parallel()

	var gotBody map[string]interface{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/subscription/activate" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))

	err := client.ActivateSubscription(context.Background(), 42, cms.SubscriptionAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["subscription_id"] != float64(42) || gotBody["status"] != "accepted" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}
