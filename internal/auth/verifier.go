// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

/*
Package auth glues token verification to the revocation list.

Shelfmark does not issue tokens — login and registration belong to the
identity service. This package only answers one question for the middleware:
"is this access token currently acceptable?" That requires two checks:

 1. Cryptographic validity (signature, expiry, issuer) via [sec.TokenService].
 2. Revocation: a token whose 'jti' appears in the Redis revocation list is
    rejected even if it is otherwise valid.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/longpham/shelfmark/internal/platform/constants"
	"github.com/longpham/shelfmark/internal/platform/sec"
)

// RevocationStore tracks access tokens (by jti) that were invalidated before
// their natural expiry.
//
// This service only reads the list: IsRevoked runs on every authenticated
// request. Revoke is the write side of the same Redis contract — in
// production it is the identity service (which shares the Redis instance)
// that places entries on logout and credential resets.
type RevocationStore interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, until time.Time) error
}

// Verifier combines signature verification with a revocation check.
//
// # Failure Mode
//
// If the revocation store cannot be reached, verification fails closed: the
// request is rejected with an authentication error rather than admitting a
// possibly-revoked token.
type Verifier struct {
	tokens  *sec.TokenService
	revoked RevocationStore
}

// NewVerifier creates a Verifier. The revocation store may be nil, in which
// case only cryptographic validity is checked (useful in tests).
func NewVerifier(tokens *sec.TokenService, revoked RevocationStore) *Verifier {
	return &Verifier{tokens: tokens, revoked: revoked}
}

// VerifyToken implements [middleware.TokenVerifier].
func (verifier *Verifier) VerifyToken(ctx context.Context, tokenStr string) (*sec.AuthClaims, error) {
	claims, err := verifier.tokens.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}

	if verifier.revoked != nil && claims.ID != "" {
		isRevoked, err := verifier.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("auth: revocation check failed: %w", err)
		}
		if isRevoked {
			return nil, fmt.Errorf("auth: token has been revoked")
		}
	}

	return claims, nil
}

// # Redis Revocation Store

// RedisRevocationStore implements [RevocationStore] using Redis keys with TTL.
//
// Entries expire together with the token itself, so the list never grows
// beyond the set of tokens that are still cryptographically valid.
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore creates a Redis-backed RevocationStore.
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
IsRevoked reports whether the given token id is on the revocation list.

Parameters:
  - ctx: context.Context
  - tokenID: the token's 'jti' claim

Returns:
  - bool: true if the token was revoked
  - error: connectivity errors
*/
func (store *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := constants.RedisPrefixRevokedToken + tokenID

	count, err := store.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revoked_token_check_failed: %w", err)
	}

	return count > 0, nil
}

/*
Revoke places a token id on the revocation list until the token's own expiry.

It exists to document and exercise the write side of the key contract; the
production writer is the identity service, not this API.

Parameters:
  - ctx: context.Context
  - tokenID: the token's 'jti' claim
  - until: the token's 'exp' claim; the list entry expires with the token

Returns:
  - error: storage failures
*/
func (store *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	key := constants.RedisPrefixRevokedToken + tokenID

	ttl := time.Until(until)
	if ttl <= 0 {
		// Already expired tokens fail signature verification anyway.
		return nil
	}

	if err := store.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revoked_token_set_failed: %w", err)
	}

	return nil
}
