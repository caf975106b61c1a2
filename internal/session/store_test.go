package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/session"
)

var testUser = entity.User{ID: "42", Name: "Jane Doe", Email: "jane@example.com", Role: "customer"}

func newStore(t *testing.T) (*session.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return session.NewStore(rdb, 24*time.Hour), mr
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestStore_SaveHydrateClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, mr := newStore(t)

	sess, err := s.Save(ctx, "opaque-token", testUser)
	require.NoError(t, err)
	require.Equal(t, entity.Session{Token: "opaque-token", User: testUser}, sess)
	require.Equal(t, 24*time.Hour, mr.TTL(session.Key("opaque-token")), "non JWT tokens use the default TTL")

	got, err := s.Hydrate(ctx, "opaque-token")
	require.NoError(t, err)
	require.Equal(t, sess, got)

	require.NoError(t, s.Clear(ctx, "opaque-token"))

	_, err = s.Hydrate(ctx, "opaque-token")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestStore_TTLFromJWT(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, mr := newStore(t)

	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	token := signedToken(t, now.Add(2*time.Hour))

	_, err := s.Save(ctx, token, testUser)
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour, mr.TTL(session.Key(token)))

	mr.FastForward(2*time.Hour + time.Second)

	_, err = s.Hydrate(ctx, token)
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestStore_Save_Rejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStore(t)

	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	_, err := s.Save(ctx, signedToken(t, now.Add(-time.Minute)), testUser)
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	_, err = s.Save(ctx, "token", entity.User{})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.Hydrate(ctx, "")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestStore_Save_VerifiesSignedToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := session.NewStore(rdb, 24*time.Hour, session.WithSigningKey([]byte("secret")))

	sign := func(key, subject string, method jwt.SigningMethod) string {
		token, err := jwt.NewWithClaims(method, jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte(key))
		require.NoError(t, err)

		return token
	}

	valid := sign("secret", "42", jwt.SigningMethodHS256)

	sess, err := s.Save(ctx, valid, testUser)
	require.NoError(t, err)
	require.Equal(t, testUser, sess.User)
	require.InDelta(t, time.Hour, mr.TTL(session.Key(valid)), float64(time.Minute))

	for _, tt := range []struct {
		name  string
		token string
		user  entity.User
	}{
		{name: "claims another user", token: valid, user: entity.User{ID: "999"}},
		{name: "wrong key", token: sign("other", "42", jwt.SigningMethodHS256), user: testUser},
		{name: "other algorithm", token: sign("secret", "42", jwt.SigningMethodHS512), user: testUser},
		{name: "not a jwt", token: "opaque-token", user: testUser},
	} {
		_, err := s.Save(ctx, tt.token, tt.user)
		require.ErrorIs(t, err, entity.ErrUnauthenticated, tt.name)
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	k := session.Key("token")
	require.Equal(t, "portal:session:3c469e9d6c5875d37a43f353d4f88e61fcf812c66eee3457465a40b0da4153e0", k)
	require.NotContains(t, k, "token")
}
