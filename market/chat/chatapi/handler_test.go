package chatapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/careerbuddy/compass/market/chat"
	"github.com/careerbuddy/compass/market/chat/chatsrv"
	"github.com/careerbuddy/compass/pkg/errx"
	"github.com/gofiber/fiber/v2"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.reply, g.err
}

func newTestApp(generator chat.Generator) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		},
	})
	RegisterRoutes(app, NewHandlers(chatsrv.NewChatService(generator)))
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp.StatusCode, parsed
}

func TestChat_ReturnsReply(t *testing.T) {
	app := newTestApp(&stubGenerator{reply: "look into Go backend roles"})

	status, body := postChat(t, app, `{"message":"what should I learn next?"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["response"] != "look into Go backend roles" {
		t.Errorf("response = %v", body["response"])
	}
}

func TestChat_MissingMessageIsBadRequest(t *testing.T) {
	app := newTestApp(&stubGenerator{reply: "unused"})

	for _, payload := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		status, body := postChat(t, app, payload)
		if status != fiber.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want 400", payload, status)
		}
		if body["message"] != "Message is required" {
			t.Errorf("payload %s: message = %v", payload, body["message"])
		}
	}
}

func TestChat_MalformedBodyIsBadRequest(t *testing.T) {
	app := newTestApp(&stubGenerator{reply: "unused"})

	status, _ := postChat(t, app, `{"message":`)
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}
