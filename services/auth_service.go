package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.Player, error)
}

type LoginInput struct {
	PlayerID int    `json:"player_id"`
	PIN      string `json:"pin"`
}

type authService struct {
	playerRepo repositories.PlayerRepository
}

func NewAuthService(playerRepo repositories.PlayerRepository) AuthService {
	return &authService{
		playerRepo: playerRepo,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find player by id: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(player.PinHash), []byte(input.PIN))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare pin hash: %w", err)
	}

	player.PinHash = ""

	return player, nil
}
