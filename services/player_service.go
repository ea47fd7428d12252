package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
)

const (
	maxHandicap   = 54
	maxNameLength = 100
	minPINLength  = 4
	maxPINLength  = 8
)

type PlayerService interface {
	List(ctx context.Context) ([]*models.Player, error)
	Get(ctx context.Context, id int) (*models.Player, error)
	Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	UpdateHandicap(ctx context.Context, id int, handicap int) (*models.Player, error)
}

type CreatePlayerInput struct {
	Name     string            `json:"name"`
	Handicap int               `json:"handicap"`
	PIN      string            `json:"pin"`
	Role     models.PlayerRole `json:"role,omitempty"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	logger     *slog.Logger
	hashCost   int
}

func NewPlayerService(playerRepo repositories.PlayerRepository, logger *slog.Logger) PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &playerService{
		playerRepo: playerRepo,
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

func (s *playerService) List(ctx context.Context) ([]*models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *playerService) Get(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapPlayerRepoError(err, id)
	}
	return player, nil
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	input.Name = strings.TrimSpace(input.Name)

	v := newValidationError()
	if input.Name == "" {
		v.Add("name", "name is required")
	} else if len(input.Name) > maxNameLength {
		v.Add("name", fmt.Sprintf("name must not be longer than %d characters", maxNameLength))
	}
	validateHandicap(v, "handicap", input.Handicap)
	if !validPIN(input.PIN) {
		v.Add("pin", fmt.Sprintf("pin must be %d to %d digits", minPINLength, maxPINLength))
	}
	switch input.Role {
	case "", models.RolePlayer, models.RoleAdmin:
	default:
		v.Add("role", "role must be player or admin")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка хеширования pin: %w", err)
	}

	player := &models.Player{
		Name:     input.Name,
		Handicap: input.Handicap,
		Role:     input.Role,
		PinHash:  string(hash),
	}
	if err := s.playerRepo.Create(ctx, nil, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, ErrPlayerNameConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", slog.Int("player_id", player.ID), slog.String("role", string(player.Role)))
	return player, nil
}

func (s *playerService) UpdateHandicap(ctx context.Context, id int, handicap int) (*models.Player, error) {
	v := newValidationError()
	validateHandicap(v, "handicap", handicap)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if err := s.playerRepo.UpdateHandicap(ctx, id, handicap); err != nil {
		return nil, mapPlayerRepoError(err, id)
	}
	s.logger.InfoContext(ctx, "player handicap updated", slog.Int("player_id", id), slog.Int("handicap", handicap))
	return s.Get(ctx, id)
}

func validateHandicap(v *ValidationError, field string, handicap int) {
	if handicap < 0 || handicap > maxHandicap {
		v.Add(field, fmt.Sprintf("handicap must be between 0 and %d", maxHandicap))
	}
}

func validPIN(pin string) bool {
	if len(pin) < minPINLength || len(pin) > maxPINLength {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func mapPlayerRepoError(err error, id int) error {
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return fmt.Errorf("failed to load player %d: %w", id, err)
}
