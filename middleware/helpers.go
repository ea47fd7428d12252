package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/golf-matchplay/models"
)

// Имена JWT claims
const (
	JWTClaimPlayerID = "player_id"
	JWTClaimRole     = "role"
	JWTClaimName     = "name"
)

func GetPlayerIDFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value(playerContextKey).(jwt.MapClaims)
	if !ok {
		return 0, errors.New("player claims not found in context or invalid type")
	}

	idClaim, ok := claims[JWTClaimPlayerID]
	if !ok {
		return 0, fmt.Errorf("missing '%s' claim in token", JWTClaimPlayerID)
	}

	var playerID int
	switch v := idClaim.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("'%s' claim is not an integer: %f", JWTClaimPlayerID, v)
		}
		playerID = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid '%s' claim: %q", JWTClaimPlayerID, v)
		}
		playerID = parsed
	default:
		return 0, fmt.Errorf("invalid type for '%s' claim: expected number or string, got %T", JWTClaimPlayerID, idClaim)
	}

	if playerID <= 0 {
		return 0, fmt.Errorf("invalid player ID value in '%s' claim: %d", JWTClaimPlayerID, playerID)
	}
	return playerID, nil
}

func GetRoleFromContext(ctx context.Context) (models.PlayerRole, error) {
	claims, ok := ctx.Value(playerContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("player claims not found in context or invalid type")
	}

	roleClaim, ok := claims[JWTClaimRole]
	if !ok {
		return "", fmt.Errorf("missing '%s' claim in token", JWTClaimRole)
	}
	roleStr, ok := roleClaim.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for '%s' claim: expected string, got %T", JWTClaimRole, roleClaim)
	}

	role := models.PlayerRole(roleStr)
	switch role {
	case models.RoleAdmin, models.RolePlayer:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role value in claim: %q", roleStr)
	}
}

// WithClaims returns ctx carrying claims the way Authenticate stores them.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, playerContextKey, claims)
}
