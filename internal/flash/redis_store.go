package flash

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	sessionCookie = "fyyur_session"
	sessionCtxKey = "flash.session"
	redisTTL      = 5 * time.Minute
	redisPrefix   = "fyyur:flash:"
)

// RedisStore keeps messages in a Redis list keyed by an opaque session id
// held in a cookie.  Lists expire after redisTTL so abandoned sessions do
// not accumulate.
type RedisStore struct {
	rdb    *redis.Client
	secure bool
}

// NewRedisStore returns a store backed by rdb.
func NewRedisStore(rdb *redis.Client, secure bool) *RedisStore {
	return &RedisStore{rdb: rdb, secure: secure}
}

// sessionID returns the browser's session id, issuing a new cookie when
// create is true and none is present.
func (s *RedisStore) sessionID(c echo.Context, create bool) string {
	if id, ok := c.Get(sessionCtxKey).(string); ok {
		return id
	}
	if ck, err := c.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			c.Set(sessionCtxKey, ck.Value)
			return ck.Value
		}
	}
	if !create {
		return ""
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionCtxKey, id)
	return id
}

func (s *RedisStore) Add(c echo.Context, m Message) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	key := redisPrefix + s.sessionID(c, true)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, b)
	pipe.Expire(ctx, key, redisTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Pop(c echo.Context) ([]Message, error) {
	id := s.sessionID(c, false)
	if id == "" {
		return nil, nil
	}
	ctx := c.Request().Context()
	key := redisPrefix + id
	pipe := s.rdb.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	msgs := make([]Message, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var m Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			continue // skip entries written by an incompatible version
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
