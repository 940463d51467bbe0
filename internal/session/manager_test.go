package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), "test-secret", time.Hour)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestLoadCreatesSessionAndCookie(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	data, err := m.Load(rec, req)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data.ID == "" {
		t.Fatal("expected a session ID")
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Error("cookie must be SameSite=Lax")
	}
}

func TestLoadReusesSessionAcrossRequests(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	first, err := m.Load(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first.SelectCharacter("sara")
	first.Append(RoleAssistant, "ئەلۆ؟")
	if err := m.Save(context.Background(), first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cookie := sessionCookie(t, rec)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(cookie)

	second, err := m.Load(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("session ID changed across requests: %q vs %q", second.ID, first.ID)
	}
	if second.CharacterID != "sara" || len(second.History) != 1 {
		t.Errorf("session state not restored: %+v", second)
	}
}

func TestLoadRejectsTamperedCookie(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	first, err := m.Load(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cookie := sessionCookie(t, rec)
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(cookie)

	second, err := m.Load(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second.ID == first.ID {
		t.Error("tampered cookie must not resolve to the existing session")
	}
}

func TestLoadRejectsForeignSecret(t *testing.T) {
	other := NewManager(NewMemoryStore(), "other-secret", time.Hour)

	rec := httptest.NewRecorder()
	if _, err := other.Load(rec, httptest.NewRequest(http.MethodPost, "/", nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cookie := sessionCookie(t, rec)

	m := newTestManager()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(cookie)

	data, err := m.Load(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data == nil || data.ID == "" {
		t.Fatal("expected a fresh session for a foreign-signed cookie")
	}
}
