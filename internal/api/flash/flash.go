// Package flash carries one-shot status messages across redirects using
// the cookie session installed by echo-contrib's session middleware.
package flash

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "crm_flash"

// Add queues a message for display on the next rendered page.
func Add(c echo.Context, msg string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(msg)
	_ = sess.Save(c.Request(), c.Response())
}

// Pop returns all queued messages and clears them.
func Pop(c echo.Context) []string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Save persists the now-empty flash list back into the cookie.
	_ = sess.Save(c.Request(), c.Response())

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
