package cookie

import (
	"net/http"

	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
)

// Jar reads and writes HttpOnly cookies whose values are signed with the
// configured hash key, and encrypted as well when a block key is set.
type Jar struct {
	cfg   config.CookieConfig
	codec *securecookie.SecureCookie
}

func NewJar(cfg config.CookieConfig) *Jar {
	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey = []byte(cfg.BlockKey)
	}
	codec := securecookie.New([]byte(cfg.HashKey), blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(cfg.MaxAge.Seconds()))
	return &Jar{cfg: cfg, codec: codec}
}

// Encode returns the signed cookie value for name.
func (j *Jar) Encode(name, value string) (string, error) {
	encoded, err := j.codec.Encode(name, value)
	if err != nil {
		return "", errs.Wrapf(err, "failed to encode cookie %s", name)
	}
	return encoded, nil
}

func (j *Jar) Set(c *gin.Context, name, value string) error {
	encoded, err := j.Encode(name, value)
	if err != nil {
		return err
	}
	c.SetSameSite(getSameSite(j.cfg.SameSite))

	c.SetCookie(
		name,
		encoded,
		int(j.cfg.MaxAge.Seconds()),
		"/",
		j.cfg.Domain,
		j.cfg.Secure,
		true, // HttpOnly
	)
	return nil
}

func (j *Jar) Clear(c *gin.Context, name string) {
	c.SetSameSite(getSameSite(j.cfg.SameSite))

	c.SetCookie(
		name,
		"",
		-1,
		"/",
		j.cfg.Domain,
		j.cfg.Secure,
		true,
	)
}

// Get returns the verified value. A missing, tampered, expired or foreign
// cookie reads as absent.
func (j *Jar) Get(c *gin.Context, name string) (string, bool) {
	raw, err := c.Cookie(name)
	if err != nil || raw == "" {
		return "", false
	}
	var value string
	if err := j.codec.Decode(name, raw, &value); err != nil {
		return "", false
	}
	return value, true
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
