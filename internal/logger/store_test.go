package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

func runCommand(m *event.CommandMonitor, id int64, d time.Duration) {
	ctx := context.Background()
	m.Started(ctx, &event.CommandStartedEvent{CommandName: "find", DatabaseName: "blogsDB", RequestID: id})
	m.Succeeded(ctx, &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", RequestID: id, Duration: d},
	})
}

func TestCommandMonitor(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		duration time.Duration
		want     []string
		dontWant []string
	}{
		{name: "quiet fast command", duration: time.Millisecond, dontWant: []string{"mongo command"}},
		{
			name:     "slow command",
			duration: time.Second,
			want:     []string{`"level":"warn"`, `"slow":true`, `"command":"find"`},
		},
		{
			name:     "verbose",
			verbose:  true,
			duration: time.Millisecond,
			want:     []string{"mongo command started", "mongo command succeeded"},
			dontWant: []string{`"slow"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewCommandMonitor(zerolog.New(&buf), tt.verbose, 500*time.Millisecond)

			runCommand(m, 7, tt.duration)

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output %q missing %s", out, s)
				}
			}
			for _, s := range tt.dontWant {
				if strings.Contains(out, s) {
					t.Errorf("output %q should not contain %s", out, s)
				}
			}
		})
	}
}

func TestCommandMonitorFailure(t *testing.T) {
	var buf bytes.Buffer
	m := NewCommandMonitor(zerolog.New(&buf), false, 0)

	m.Started(context.Background(), &event.CommandStartedEvent{CommandName: "insert", RequestID: 1})
	m.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{RequestID: 1},
		Failure:              "connection reset",
	})

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"command":"insert"`) {
		t.Errorf("unexpected output %q", out)
	}
}
