package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dosada05/golf-matchplay/models"
)

func newTestPlayerService(repo *fakePlayerRepo) *playerService {
	svc := NewPlayerService(repo, nil).(*playerService)
	svc.hashCost = bcrypt.MinCost
	return svc
}

func TestPlayerService_Create(t *testing.T) {
	repo := newFakePlayerRepo()
	svc := newTestPlayerService(repo)
	ctx := context.Background()

	player, err := svc.Create(ctx, CreatePlayerInput{Name: "  Jack  ", Handicap: 14, PIN: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "Jack", player.Name)
	assert.Equal(t, models.RolePlayer, player.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(player.PinHash), []byte("1234")))

	_, err = svc.Create(ctx, CreatePlayerInput{Name: "Jack", Handicap: 3, PIN: "9999"})
	assert.ErrorIs(t, err, ErrPlayerNameConflict)
}

func TestPlayerService_CreateValidation(t *testing.T) {
	svc := newTestPlayerService(newFakePlayerRepo())

	_, err := svc.Create(context.Background(), CreatePlayerInput{Name: "", Handicap: 99, PIN: "12ab", Role: "owner"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 4)
	for _, field := range []string{"name", "handicap", "pin", "role"} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestPlayerService_UpdateHandicap(t *testing.T) {
	svc := newTestPlayerService(seedPlayers())
	ctx := context.Background()

	player, err := svc.UpdateHandicap(ctx, 1, 11)
	require.NoError(t, err)
	assert.Equal(t, 11, player.Handicap)

	_, err = svc.UpdateHandicap(ctx, 1, -1)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.UpdateHandicap(ctx, 404, 10)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakePlayerRepo()
	created, err := newTestPlayerService(repo).Create(context.Background(), CreatePlayerInput{Name: "Jack", Handicap: 14, PIN: "4321", Role: models.RoleAdmin})
	require.NoError(t, err)

	auth := NewAuthService(repo)

	player, err := auth.Login(context.Background(), LoginInput{PlayerID: created.ID, PIN: "4321"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, player.Role)
	assert.Empty(t, player.PinHash)

	_, err = auth.Login(context.Background(), LoginInput{PlayerID: created.ID, PIN: "0000"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = auth.Login(context.Background(), LoginInput{PlayerID: 404, PIN: "4321"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
