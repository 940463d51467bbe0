package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "peywendi_sid"

// Manager binds a Store to HTTP requests. The session token travels in an
// HTTP-only cookie as an HS256-signed JWT whose subject is the session ID;
// a missing, tampered, or expired cookie yields a fresh session.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Load returns the request's session, creating one (and setting the cookie)
// on first touch.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*Data, error) {
	ctx := r.Context()

	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, ok := m.verify(cookie.Value); ok {
			data, err := m.store.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			if data != nil {
				return data, nil
			}
			// Valid token for an expired/unknown session: reuse the ID so the
			// cookie stays stable.
			data = &Data{ID: id}
			if err := m.store.Put(ctx, data); err != nil {
				return nil, err
			}
			return data, nil
		}
	}

	data := &Data{ID: uuid.NewString()}
	if err := m.store.Put(ctx, data); err != nil {
		return nil, err
	}

	token, err := m.sign(data.ID)
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl / time.Second),
	})

	return data, nil
}

// Save persists session mutations made during a request.
func (m *Manager) Save(ctx context.Context, data *Data) error {
	return m.store.Put(ctx, data)
}

// Ping reports backing-store health.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *Manager) sign(id string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) verify(tokenStr string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
