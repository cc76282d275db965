package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vending-machine/internal/api"
	"vending-machine/internal/coin"
	"vending-machine/internal/dispatch"
	"vending-machine/internal/journal"
	"vending-machine/internal/machine"
	"vending-machine/pkg"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	zapLogger := zap.NewNop()
	logger := pkg.NewZapLogger(zapLogger)

	m := machine.New(logger, journal.Nop{})
	if err := m.Restock("A", "cola", 150, 5); err != nil {
		t.Fatalf("restock: %v", err)
	}
	if err := m.Restock("B", "chips", 65, 3); err != nil {
		t.Fatalf("restock: %v", err)
	}
	for _, d := range coin.Denominations {
		if err := m.AddStock(d, 10); err != nil {
			t.Fatalf("addstock: %v", err)
		}
	}

	e := echo.New()
	api.RegisterHandlers(e, &api.Handlers{
		Machine:    m,
		Dispatcher: dispatch.New(m),
		Logger:     logger,
		JWTSecret:  "integration-secret",
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func command(t *testing.T, srv *httptest.Server, token string) []string {
	t.Helper()
	body := `{"command":"` + token + `"}`
	resp, err := http.Post(srv.URL+"/api/command", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("command %q failed: %v", token, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("command %q: status %d", token, resp.StatusCode)
	}
	var out struct {
		Lines []string `json:"lines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode command response: %v", err)
	}
	return out.Lines
}

func inserted(t *testing.T, srv *httptest.Server) int {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/inserted")
	if err != nil {
		t.Fatalf("inserted failed: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		Inserted int `json:"inserted"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode inserted: %v", err)
	}
	return out.Inserted
}

func TestVendingSession(t *testing.T) {
	srv := newServer(t)

	// Pay exact for chips: 25+25+10+5 = 65.
	for _, tok := range []string{"q", "q", "d", "n"} {
		command(t, srv, tok)
	}
	if got := inserted(t, srv); got != 65 {
		t.Fatalf("expected 65 inserted, got %d", got)
	}

	lines := command(t, srv, "B")
	if len(lines) != 1 || lines[0] != "B" {
		t.Fatalf("expected dispense with no change, got %v", lines)
	}
	if got := inserted(t, srv); got != 0 {
		t.Errorf("inserted not cleared after purchase: %d", got)
	}

	// Overpay for cola with two dollars, expect 50 in change.
	command(t, srv, "1")
	command(t, srv, "1")
	lines = command(t, srv, "A")
	if len(lines) != 2 || lines[0] != "A" {
		t.Fatalf("expected dispense with change, got %v", lines)
	}
	if lines[1] != "change: quarter, quarter" {
		t.Errorf("unexpected change line: %q", lines[1])
	}

	// Insert and take it back.
	command(t, srv, "d")
	lines = command(t, srv, "return")
	if len(lines) != 1 || lines[0] != "returned: dime" {
		t.Errorf("unexpected return: %v", lines)
	}
	if got := inserted(t, srv); got != 0 {
		t.Errorf("inserted not cleared after return: %d", got)
	}

	// Garbage token is reported, not fatal.
	lines = command(t, srv, "fizz")
	if len(lines) != 1 || lines[0] != `invalid command or selector "fizz"` {
		t.Errorf("unexpected invalid-token response: %v", lines)
	}
}
