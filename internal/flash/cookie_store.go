package flash

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/utils"
)

const (
	flashCookie   = "fyyur_flash"
	pendingCtxKey = "flash.pending"
	cookieTTL     = 5 * time.Minute
)

type cookieClaims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// CookieStore keeps messages in an HS256-signed cookie.  It needs no
// server state and is used when Redis is unavailable.
type CookieStore struct {
	secret string
	secure bool
	now    func() time.Time
}

// NewCookieStore returns a store signing cookies with secret.
func NewCookieStore(secret string, secure bool) *CookieStore {
	return &CookieStore{secret: secret, secure: secure, now: time.Now}
}

// pending returns the messages queued so far: those added during this
// request, or else whatever a valid cookie carries.
func (s *CookieStore) pending(c echo.Context) []Message {
	if msgs, ok := c.Get(pendingCtxKey).([]Message); ok {
		return msgs
	}
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return nil
	}
	var claims cookieClaims
	if err := utils.ParseHS256(s.secret, ck.Value, &claims); err != nil {
		return nil
	}
	return claims.Messages
}

func (s *CookieStore) Add(c echo.Context, m Message) error {
	msgs := append(s.pending(c), m)
	raw, err := utils.SignHS256(s.secret, cookieClaims{
		Messages:         msgs,
		RegisteredClaims: utils.ExpiringClaims(s.now(), cookieTTL),
	})
	if err != nil {
		return err
	}
	s.setCookie(c, raw, int(cookieTTL/time.Second))
	c.Set(pendingCtxKey, msgs)
	return nil
}

func (s *CookieStore) Pop(c echo.Context) ([]Message, error) {
	msgs := s.pending(c)
	if _, err := c.Cookie(flashCookie); err == nil || len(msgs) > 0 {
		s.setCookie(c, "", -1)
	}
	c.Set(pendingCtxKey, []Message{})
	return msgs, nil
}

// setCookie writes the flash cookie, replacing any flash cookie already
// set on this response.
func (s *CookieStore) setCookie(c echo.Context, value string, maxAge int) {
	h := c.Response().Header()
	kept := h.Values(echo.HeaderSetCookie)
	h.Del(echo.HeaderSetCookie)
	for _, v := range kept {
		if !strings.HasPrefix(v, flashCookie+"=") {
			h.Add(echo.HeaderSetCookie, v)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
