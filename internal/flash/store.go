// Package flash carries one-shot notices ("Venue X was successfully
// listed!") from the request that produced them to the next page rendered
// for the same browser.
package flash

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Message categories understood by the layout template.
const (
	CategoryInfo  = "info"
	CategoryError = "error"
)

// Message is a single flash notice.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Info returns an informational message.
func Info(text string) Message { return Message{Category: CategoryInfo, Text: text} }

// Error returns an error message.
func Error(text string) Message { return Message{Category: CategoryError, Text: text} }

// Store queues messages for a browser and hands them out once.
type Store interface {
	// Add queues m for the current browser.
	Add(c echo.Context, m Message) error
	// Pop returns and forgets every queued message.  Messages added
	// earlier in the same request are included.
	Pop(c echo.Context) ([]Message, error)
}

// New picks the Redis store when a client is available and the signed
// cookie store otherwise.
func New(rdb *redis.Client, secret string, secure bool) Store {
	if rdb != nil {
		return NewRedisStore(rdb, secure)
	}
	return NewCookieStore(secret, secure)
}
