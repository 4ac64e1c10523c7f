package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/pubsub"
)

type fakeCarts struct {
	cleared []string
}

func (f *fakeCarts) ClearCart(ctx context.Context, userID string) error {
	f.cleared = append(f.cleared, userID)
	return nil
}

func TestLogoutClearsCartAndNotifies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	carts := &fakeCarts{}
	bus := pubsub.NewBus()
	cartCh, cancel := bus.Subscribe(pubsub.TopicCartChanged, 1)
	defer cancel()
	authCh, cancelAuth := bus.Subscribe(pubsub.TopicAuthChanged, 1)
	defer cancelAuth()

	r := gin.New()
	r.POST("/user/logout", func(c *gin.Context) {
		c.Set("user_id", "u1") // what the JWT middleware would set
		LogoutHandler(carts, bus)(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != "u1" {
		t.Errorf("cleared carts = %v, want [u1]", carts.cleared)
	}

	select {
	case ev := <-cartCh:
		if ev.Payload != "u1" {
			t.Errorf("cart event payload = %v", ev.Payload)
		}
	default:
		t.Error("no cart change notification fired")
	}
	select {
	case <-authCh:
	default:
		t.Error("no auth change notification fired")
	}
}

func TestLogoutWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	carts := &fakeCarts{}
	r := gin.New()
	r.POST("/user/logout", LogoutHandler(carts, pubsub.NewBus()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user/logout", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if len(carts.cleared) != 0 {
		t.Errorf("cart cleared without identity")
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("secret", "u1", "a@b.co", RoleUser, sessionTTL)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token %q is not a JWT", token)
	}
}
