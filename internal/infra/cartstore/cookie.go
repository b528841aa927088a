package cartstore

import (
	"encoding/json"
	"time"

	"stitchcart/internal/domain/cart"
	"stitchcart/internal/pkg/config"
	"stitchcart/internal/pkg/cookie"
	"stitchcart/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MainCartCookieName   = "main_cart"
	SampleCartCookieName = "sample_cart"
)

func CookieNameFor(kind cart.Kind) string {
	if kind == cart.KindSample {
		return SampleCartCookieName
	}
	return MainCartCookieName
}

// CookieStore persists cart snapshots as JSON cookies, one slot per cart
// kind. It is request-scoped: handlers build one per request around the gin
// context. Gin URL-escapes cookie values, so the raw JSON payload survives
// the round trip.
type CookieStore struct {
	c   *gin.Context
	cfg config.CookieConfig
	ttl time.Duration
}

func NewCookieStore(c *gin.Context, cfg config.CookieConfig, ttl time.Duration) *CookieStore {
	return &CookieStore{c: c, cfg: cfg, ttl: ttl}
}

// Load returns nil when no cookie is set for the kind. A cookie that cannot
// be decoded is reported as an error; callers decide whether to start fresh.
func (s *CookieStore) Load(kind cart.Kind) (*cart.Cart, error) {
	raw, err := s.c.Cookie(CookieNameFor(kind))
	if err != nil || raw == "" {
		return nil, nil
	}

	var snapshot cart.Cart
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart cookie")
	}

	return &snapshot, nil
}

// Save overwrites the slot with a full snapshot.
func (s *CookieStore) Save(c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart snapshot")
	}

	s.c.SetSameSite(cookie.SameSiteFromString(s.cfg.SameSite))
	s.c.SetCookie(
		CookieNameFor(c.Kind),
		string(payload),
		int(s.ttl.Seconds()),
		"/",
		s.cfg.Domain,
		s.cfg.Secure,
		false, // the storefront reads the cart client-side
	)

	return nil
}
