package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/skycast/frontend/internal/domain"
)

const noticesKey = "notices"

// Flash is a session-scoped queue of notices. Notices pushed before a
// redirect are returned exactly once by the next Pop.
type Flash struct {
	store *session.Store
}

// NewSessionStore creates the in-memory session store backing flash notices
func NewSessionStore(secure bool) *session.Store {
	store := session.New(session.Config{
		Expiration:     30 * time.Minute,
		KeyLookup:      "cookie:weather_session",
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
	store.RegisterType([]domain.Notice{})
	return store
}

// NewFlash creates a flash queue on top of store
func NewFlash(store *session.Store) *Flash {
	return &Flash{store: store}
}

// Push appends a notice to the caller's session
func (f *Flash) Push(c *fiber.Ctx, n domain.Notice) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return fmt.Errorf("flash: failed to load session: %w", err)
	}

	notices, _ := sess.Get(noticesKey).([]domain.Notice)
	sess.Set(noticesKey, append(notices, n))

	if err := sess.Save(); err != nil {
		return fmt.Errorf("flash: failed to save session: %w", err)
	}
	return nil
}

// Pop returns and clears the pending notices. A request without pending
// notices leaves the session untouched.
func (f *Flash) Pop(c *fiber.Ctx) ([]domain.Notice, error) {
	sess, err := f.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("flash: failed to load session: %w", err)
	}

	notices, _ := sess.Get(noticesKey).([]domain.Notice)
	if len(notices) == 0 {
		return nil, nil
	}

	sess.Delete(noticesKey)
	if err := sess.Save(); err != nil {
		return nil, fmt.Errorf("flash: failed to save session: %w", err)
	}
	return notices, nil
}
