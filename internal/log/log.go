package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	TS      string         `json:"ts"`
	Level   string         `json:"level"`
	Session string         `json:"session,omitempty"`
	Action  string         `json:"action,omitempty"`
	Err     string         `json:"err,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

var session string

// StartSession stamps every following entry with a fresh session id.
func StartSession() string {
	session = uuid.NewString()
	return session
}

func write(level string, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Session: session, Action: action, Fields: fields}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(action string, fields map[string]any) { write("info", action, nil, fields) }
func Audit(action string, fields map[string]any) {
	write("audit", action, nil, fields)
}
func Warn(action string, fields map[string]any) {
	write("warn", action, nil, fields)
}
func Error(action string, err error, fields map[string]any) {
	write("error", action, err, fields)
}
