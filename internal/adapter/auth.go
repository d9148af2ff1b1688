package adapter

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/utils"
)

// tokenRefreshMargin renews the bearer token this long before it expires.
const tokenRefreshMargin = 30 * time.Second

// tokenSource mints the session bearer token presented to the executor and
// re-mints it shortly before expiry. Without a sign key it yields "".
type tokenSource struct {
	issuer   string
	signKey  string
	duration time.Duration
	subject  string
	now      func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newTokenSource(issuer, signKey string, duration time.Duration) *tokenSource {
	return &tokenSource{
		issuer:   issuer,
		signKey:  signKey,
		duration: duration,
		subject:  utils.NewRequestID(),
		now:      time.Now,
	}
}

func (s *tokenSource) Token() (string, error) {
	if s == nil || s.signKey == "" {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Add(tokenRefreshMargin).Before(s.expires) {
		return s.token, nil
	}

	token, err := utils.GenerateJWTToken(s.issuer, s.subject, s.duration, s.signKey)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = now.Add(s.duration)
	return token, nil
}
