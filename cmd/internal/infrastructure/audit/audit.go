// Package audit is a best-effort side channel for change events. Nothing here
// reports back to the caller, and a failed log line never affects the write
// that produced it.
package audit

import (
	"encoding/json"
	"github.com/labstack/gommon/log"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionInfo   Action = "INFO"
)

type Logger interface {
	Log(tenantID int64, entity string, action Action, payload any)
}

// DefaultLogger writes one line per event from its own goroutine.
type DefaultLogger struct {
	out func(format string, args ...any)
}

func NewLogger() *DefaultLogger {
	return &DefaultLogger{out: log.Infof}
}

func (l *DefaultLogger) Log(tenantID int64, entity string, action Action, payload any) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warnf("audit: dropped %s/%s event: %v", entity, action, r)
			}
		}()

		data, err := json.Marshal(payload)
		if err != nil {
			log.Warnf("audit: failed to encode %s/%s payload: %v", entity, action, err)
			return
		}
		l.out("[AUDIT RLK][%s][%s] tenant=%d %s", entity, action, tenantID, data)
	}()
}

// Nop discards every event.
type Nop struct{}

func (Nop) Log(int64, string, Action, any) {}
