// Package identity talks to the external identity provider that owns user
// accounts and profile images. The API surface mirrors the provider's REST
// endpoints: token introspection, admin metadata updates, and bucket storage.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity is the minimal verified identity attached to authenticated
// requests.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// ErrInvalidToken is returned for missing, malformed, expired, or revoked
// bearer tokens. Guards translate it into an HTTP 401 response.
var ErrInvalidToken = errors.New("invalid token")

// ErrUpstream is returned when the provider itself fails. Handlers surface
// it as a generic client error, never the raw provider response.
var ErrUpstream = errors.New("identity provider error")

type Client struct {
	baseURL    string
	serviceKey string
	jwtSecret  string
	bucket     string
	http       *http.Client
	log        *zap.Logger
}

func NewClient(cfg utils.IdentityConfig, storage utils.StorageConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.URL,
		serviceKey: cfg.ServiceKey,
		jwtSecret:  cfg.JWTSecret,
		bucket:     storage.Bucket,
		http:       &http.Client{Timeout: 10 * time.Second},
		log:        log.With(zap.String("client", "identity")),
	}
}

// VerifyToken validates a bearer token and returns the identity it carries.
// With a configured JWT secret the token is parsed locally as HS256;
// otherwise the provider is asked on every request.
func (c *Client) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	if c.jwtSecret != "" {
		return c.verifyLocal(token)
	}
	return c.verifyRemote(ctx, token)
}

func (c *Client) verifyLocal(token string) (*Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	identity := &Identity{ID: userID}
	identity.Email, _ = claims["email"].(string)
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		identity.Name, _ = meta["name"].(string)
	}

	return identity, nil
}

type userPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (c *Client) verifyRemote(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Identity provider unreachable", zap.Error(err))
		return nil, fmt.Errorf("verify token: %w", ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("Identity provider returned unexpected status",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("verify token status %d: %w", resp.StatusCode, ErrUpstream)
	}

	var payload userPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", ErrUpstream)
	}

	userID, err := uuid.Parse(payload.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		ID:    userID,
		Email: payload.Email,
		Name:  payload.UserMetadata.Name,
	}, nil
}

// UpdateUserName updates the display name in the provider's user metadata.
func (c *Client) UpdateUserName(ctx context.Context, userID uuid.UUID, name string) error {
	body, err := json.Marshal(map[string]any{
		"user_metadata": map[string]string{"name": name},
	})
	if err != nil {
		return fmt.Errorf("marshal metadata update: %w", err)
	}

	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.baseURL, userID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build metadata update request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Failed to update user metadata",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("update user name: %w", ErrUpstream)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Metadata update rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("update user name status %d: %w", resp.StatusCode, ErrUpstream)
	}

	return nil
}

func (c *Client) profileImagePath(userID uuid.UUID) string {
	return fmt.Sprintf("%s/user-%s.jpeg", userID.String(), userID.String())
}

// PublicImageURL returns the public URL of a user's profile image. The URL
// is derivable without a request; the object may or may not exist.
func (c *Client) PublicImageURL(userID uuid.UUID) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		c.baseURL, c.bucket, c.profileImagePath(userID))
}

// UploadProfileImage stores a JPEG in the profile-image bucket, replacing
// any previous upload for the user.
func (c *Client) UploadProfileImage(ctx context.Context, userID uuid.UUID, data []byte) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		c.baseURL, c.bucket, c.profileImagePath(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "image/jpeg")
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Failed to upload profile image",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("upload profile image: %w", ErrUpstream)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Profile image upload rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("upload profile image status %d: %w", resp.StatusCode, ErrUpstream)
	}

	c.log.Info("Profile image uploaded",
		zap.String("user_id", userID.String()),
		zap.Int("bytes", len(data)),
	)

	return nil
}
