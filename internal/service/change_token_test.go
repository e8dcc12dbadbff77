package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/models"
)

func TestNewChangeTokenIssuer_InvalidConfig(t *testing.T) {
	_, err := newChangeTokenIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidTokenConfig)

	_, err = newChangeTokenIssuer("key", 0)
	assert.ErrorIs(t, err, ErrInvalidTokenConfig)
}

func TestChangeTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := newChangeTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.issue(recordStream("z1"), 42)
	require.NoError(t, err)
	require.False(t, token.IsZero())

	seq, err := issuer.parse(recordStream("z1"), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
}

func TestChangeTokenIssuer_EmptyTokenStartsFromZero(t *testing.T) {
	issuer, err := newChangeTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	seq, err := issuer.parse(zoneStream(models.ScopePrivate), nil)
	require.NoError(t, err)
	assert.Zero(t, seq)
}

func TestChangeTokenIssuer_RejectedTokens(t *testing.T) {
	issuer, err := newChangeTokenIssuer("secret", time.Minute)
	require.NoError(t, err)

	valid, err := issuer.issue(recordStream("z1"), 7)
	require.NoError(t, err)

	other, err := newChangeTokenIssuer("other-secret", time.Minute)
	require.NoError(t, err)
	forged, err := other.issue(recordStream("z1"), 7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		stream string
		token  models.ChangeToken
		now    time.Time
	}{
		{name: "garbage", stream: recordStream("z1"), token: models.ChangeToken("not-a-jwt"), now: time.Now()},
		{name: "other zone", stream: recordStream("z2"), token: valid, now: time.Now()},
		{name: "zone token used for records", stream: zoneStream(models.ScopeShared), token: valid, now: time.Now()},
		{name: "wrong key", stream: recordStream("z1"), token: forged, now: time.Now()},
		{name: "expired", stream: recordStream("z1"), token: valid, now: time.Now().Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			issuer.now = func() time.Time { return now }
			t.Cleanup(func() { issuer.now = time.Now })

			_, err := issuer.parse(tt.stream, tt.token)
			assert.ErrorIs(t, err, models.ErrChangeTokenExpired)
		})
	}
}
