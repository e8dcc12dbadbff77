package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-share-cache/models"
)

// changeTokenClaims is the payload of a change token: the stream it belongs
// to and the last sequence number the holder has seen.
type changeTokenClaims struct {
	jwt.RegisteredClaims
	Stream string `json:"zone"`
	Seq    int64  `json:"seq"`
}

type changeTokenIssuer struct {
	signKey []byte
	ttl     time.Duration
	now     func() time.Time
}

func newChangeTokenIssuer(signKey string, ttl time.Duration) (*changeTokenIssuer, error) {
	if signKey == "" || ttl <= 0 {
		return nil, ErrInvalidTokenConfig
	}

	return &changeTokenIssuer{
		signKey: []byte(signKey),
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

func recordStream(zoneID models.ZoneID) string {
	return "zone:" + string(zoneID)
}

func zoneStream(scope models.Scope) string {
	return "db:" + string(scope)
}

func (i *changeTokenIssuer) issue(stream string, seq int64) (models.ChangeToken, error) {
	now := i.now()
	claims := changeTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Stream: stream,
		Seq:    seq,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signKey)
	if err != nil {
		return nil, fmt.Errorf("error occurred during signing change token: %w", err)
	}

	return models.ChangeToken(signed), nil
}

// parse returns the sequence number carried by token. An empty token starts
// from zero. A token that is expired, forged or issued for another stream
// is reported as models.ErrChangeTokenExpired so the client refetches.
func (i *changeTokenIssuer) parse(stream string, token models.ChangeToken) (int64, error) {
	if token.IsZero() {
		return 0, nil
	}

	var claims changeTokenClaims
	_, err := jwt.ParseWithClaims(token.String(), &claims, func(*jwt.Token) (any, error) {
		return i.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", models.ErrChangeTokenExpired, err)
	}

	if claims.Stream != stream {
		return 0, fmt.Errorf("%w: token issued for %q", models.ErrChangeTokenExpired, claims.Stream)
	}

	return claims.Seq, nil
}
