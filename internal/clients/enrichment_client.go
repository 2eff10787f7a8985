package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 3 * time.Second

var errBaseURLRequired = errors.New("enrichment base url is required")

// EnrichmentClient fetches user and product detail from the user and product
// services over HTTP.
type EnrichmentClient struct {
	userBaseURL    string
	productBaseURL string
	timeout        time.Duration
}

// Option configures optional client behavior.
type Option func(*EnrichmentClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *EnrichmentClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewEnrichmentClient builds a client for the given service base URLs.
func NewEnrichmentClient(userBaseURL, productBaseURL string, opts ...Option) (*EnrichmentClient, error) {
	userBaseURL = strings.TrimRight(strings.TrimSpace(userBaseURL), "/")
	productBaseURL = strings.TrimRight(strings.TrimSpace(productBaseURL), "/")
	if userBaseURL == "" || productBaseURL == "" {
		return nil, errBaseURLRequired
	}

	client := &EnrichmentClient{
		userBaseURL:    userBaseURL,
		productBaseURL: productBaseURL,
		timeout:        defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// FetchUser calls GET {userBase}/api/users/{id}.
func (c *EnrichmentClient) FetchUser(userID int) (*dto.UserDto, error) {
	var user dto.UserDto
	if err := c.getJSON(fmt.Sprintf("%s/api/users/%d", c.userBaseURL, userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchProduct calls GET {productBase}/api/products/{id}.
func (c *EnrichmentClient) FetchProduct(productID int) (*dto.ProductDto, error) {
	var product dto.ProductDto
	if err := c.getJSON(fmt.Sprintf("%s/api/products/%d", c.productBaseURL, productID), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *EnrichmentClient) getJSON(url string, v any) error {
	agent := fiber.Get(url).Timeout(c.timeout)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return fmt.Errorf("GET %s: %w", url, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("GET %s: %w", url, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, code)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", url, err)
	}
	return nil
}
