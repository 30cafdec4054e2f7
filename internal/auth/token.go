package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token is malformed, carries a
	// bad signature, or was signed with an unexpected method.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")
)

const (
	// ClaimUserID is the claim carrying the subject's user id.
	ClaimUserID = "user_id"

	// ClaimTokenType marks the kind of token. Access tokens omit it.
	ClaimTokenType = "token-type"

	// RefreshTokenType is the ClaimTokenType value for refresh tokens.
	RefreshTokenType = "refresh-token"
)

// TokenPair carries the two tokens issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Codec signs and verifies claim sets with a shared HMAC secret. The
// codec is stateless after construction and safe for concurrent use.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewCodec builds a codec from the configured secret, algorithm
// identifier (HS256, HS384 or HS512) and token TTL.
func NewCodec(secret, algorithm string, ttl time.Duration) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("signing secret is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &Codec{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Encode signs the given claims, overwriting exp with now + TTL. The
// input map is not modified.
func (c *Codec) Encode(claims map[string]any) (string, error) {
	payload := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		payload[k] = v
	}
	payload["exp"] = time.Now().Add(c.ttl).Unix()

	token := jwt.NewWithClaims(c.method, payload)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token's signature and expiry and returns its
// claims. No claim is exposed before verification completes.
func (c *Codec) Decode(tokenString string) (map[string]any, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
	)

	claims := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IssuePair issues an access and a refresh token for the given user.
// Both carry the user id; the refresh token additionally carries the
// refresh marker claim.
func (c *Codec) IssuePair(userID int) (TokenPair, error) {
	access, err := c.Encode(map[string]any{ClaimUserID: userID})
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := c.Encode(map[string]any{
		ClaimUserID:    userID,
		ClaimTokenType: RefreshTokenType,
	})
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// UserID extracts the user id claim from a decoded claim set. JSON
// decoding turns numbers into float64, so several representations are
// accepted.
func UserID(claims map[string]any) (int, error) {
	switch subject := claims[ClaimUserID].(type) {
	case int:
		if subject < 1 {
			return 0, errors.New("invalid user id claim")
		}
		return subject, nil
	case int64:
		if subject < 1 {
			return 0, errors.New("invalid user id claim")
		}
		return int(subject), nil
	case float64:
		if subject < 1 {
			return 0, errors.New("invalid user id claim")
		}
		return int(subject), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(subject))
		if err != nil || parsed < 1 {
			return 0, errors.New("invalid user id claim")
		}
		return parsed, nil
	default:
		return 0, errors.New("missing user id claim")
	}
}

// IsRefresh reports whether the claim set carries the refresh marker.
// The codec itself never enforces this; callers do.
func IsRefresh(claims map[string]any) bool {
	kind, _ := claims[ClaimTokenType].(string)
	return kind == RefreshTokenType
}
