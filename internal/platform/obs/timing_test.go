package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestTimeLogsFailureWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", &buf)
	defer Init("info", nil)

	ctx := WithRequestID(context.Background(), "abc-123")

	err := errors.New("boom")
	Time(ctx, "amap.Driving")(&err)

	line := strings.TrimSpace(buf.String())
	var fields map[string]any
	if e := json.Unmarshal([]byte(line), &fields); e != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}

	if fields["req_id"] != "abc-123" {
		t.Errorf("req_id = %v", fields["req_id"])
	}
	if fields["op"] != "amap.Driving" {
		t.Errorf("op = %v", fields["op"])
	}
	if fields["error"] != "boom" {
		t.Errorf("error = %v", fields["error"])
	}
	if fields["level"] != "warning" {
		t.Errorf("level = %v", fields["level"])
	}
}

func TestTimeSuccessIsDebug(t *testing.T) {
	var buf bytes.Buffer
	Init("info", &buf)
	defer Init("info", nil)

	var err error
	Time(context.Background(), "quiet")(&err)

	if buf.Len() != 0 {
		t.Fatalf("expected no output at info level, got %q", buf.String())
	}
}
