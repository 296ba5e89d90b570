package gateway

import (
	"context"
	"net/http"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

// AuthGateway talks to the backend's signup and login endpoints.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type userPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
	Token string `json:"token"`
}

// Signup creates an account. It does not log the user in.
func (g *AuthGateway) Signup(ctx context.Context, name, email, password, role string) error {
	req := signupRequest{Name: name, Email: email, Password: password, Type: role}
	return g.client.do(ctx, http.MethodPost, "/signup", req, nil)
}

// Login verifies the credentials and returns the user plus the bearer token
// for subsequent order calls.
func (g *AuthGateway) Login(ctx context.Context, email, password, role string) (*domain.User, string, error) {
	req := loginRequest{Email: email, Password: password, Type: role}

	var payload userPayload
	if err := g.client.do(ctx, http.MethodPost, "/login", req, &payload); err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:    payload.ID,
		Name:  payload.Name,
		Email: payload.Email,
		Type:  payload.Type,
	}
	return user, payload.Token, nil
}
