// Package session keeps the logged in user of a bearer token in Redis.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/portal/internal/entity"
)

const keyPrefix = "portal:session:"

type Store struct {
	rdb        *redis.Client
	defaultTTL time.Duration
	signingKey []byte
	now        func() time.Time
}

type Option func(*Store)

// WithSigningKey makes Save accept only HS256 tokens signed with key whose
// subject is the user being saved.
func WithSigningKey(key []byte) Option {
	return func(s *Store) {
		s.signingKey = key
	}
}

func NewStore(rdb *redis.Client, defaultTTL time.Duration, opts ...Option) *Store {
	s := &Store{
		rdb:        rdb,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Key is the Redis key of token. Tokens are never stored in clear.
func Key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Save stores user for token until the token expires.
func (s *Store) Save(ctx context.Context, token string, user entity.User) (entity.Session, error) {
	if token == "" || user.ID == "" {
		return entity.Session{}, fmt.Errorf("%w: token and user id are required", entity.ErrValidation)
	}

	ttl, err := s.ttl(token, user.ID)
	if err != nil {
		return entity.Session{}, err
	}

	if ttl <= 0 {
		return entity.Session{}, fmt.Errorf("token expired: %w", entity.ErrUnauthenticated)
	}

	b, err := json.Marshal(user)
	if err != nil {
		return entity.Session{}, fmt.Errorf("marshal user: %w", err)
	}

	err = s.rdb.Set(ctx, Key(token), b, ttl).Err()
	if err != nil {
		return entity.Session{}, fmt.Errorf("save session: %w", err)
	}

	return entity.Session{Token: token, User: user}, nil
}

// Hydrate restores the session of token or returns ErrUnauthenticated.
func (s *Store) Hydrate(ctx context.Context, token string) (entity.Session, error) {
	if token == "" {
		return entity.Session{}, entity.ErrUnauthenticated
	}

	b, err := s.rdb.Get(ctx, Key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Session{}, entity.ErrUnauthenticated
	}

	if err != nil {
		return entity.Session{}, fmt.Errorf("get session: %w", err)
	}

	var user entity.User

	err = json.Unmarshal(b, &user)
	if err != nil {
		return entity.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return entity.Session{Token: token, User: user}, nil
}

func (s *Store) Clear(ctx context.Context, token string) error {
	err := s.rdb.Del(ctx, Key(token)).Err()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// ttl follows the exp claim when the token is a JWT. Without a signing key
// the signature is left to the backend.
func (s *Store) ttl(token, userID string) (time.Duration, error) {
	if len(s.signingKey) > 0 {
		return s.verifiedTTL(token, userID)
	}

	var claims jwt.RegisteredClaims

	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return s.defaultTTL, nil
	}

	return claims.ExpiresAt.Sub(s.now()), nil
}

func (s *Store) verifiedTTL(token, userID string) (time.Duration, error) {
	var claims jwt.RegisteredClaims

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("verify token: %w: %w", entity.ErrUnauthenticated, err)
	}

	if claims.Subject != userID {
		return 0, fmt.Errorf("token subject %q does not match user %q: %w", claims.Subject, userID, entity.ErrUnauthenticated)
	}

	if claims.ExpiresAt == nil {
		return s.defaultTTL, nil
	}

	return claims.ExpiresAt.Sub(s.now()), nil
}
