package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Dosada05/golf-matchplay/hub"
	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/metrics"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
	"github.com/Dosada05/golf-matchplay/scoring"
	"github.com/Dosada05/golf-matchplay/storage"
)

const (
	EventResultRecorded  = "RESULT_RECORDED"
	EventResultCorrected = "RESULT_CORRECTED"
	EventResultDeleted   = "RESULT_DELETED"
)

type MatchResultService interface {
	Record(ctx context.Context, year int, input RecordResultInput, actor Actor) (*models.MatchResult, error)
	List(ctx context.Context, year int, foursomeID *int) ([]*models.MatchResult, error)
	Correct(ctx context.Context, year, resultID int, input CorrectResultInput, actor Actor) (*models.MatchResult, error)
	Delete(ctx context.Context, year, resultID int, actor Actor) error
	AttachScorecard(ctx context.Context, year, resultID int, actor Actor, file io.Reader, contentType string) (*models.MatchResult, error)
}

type RecordResultInput struct {
	FoursomeGroupID int    `json:"foursome_group_id"`
	Player1ID       int    `json:"player1_id"`
	Player2ID       int    `json:"player2_id"`
	HoleSegment     string `json:"hole_segment"`
	Player1Gross    int    `json:"player1_gross_score"`
	Player2Gross    int    `json:"player2_gross_score"`
}

// CorrectResultInput holds replacement gross scores in the stored player order.
type CorrectResultInput struct {
	Player1Gross int `json:"player1_gross_score"`
	Player2Gross int `json:"player2_gross_score"`
}

// LeaderboardUpdate is the websocket payload sent after every write.
type LeaderboardUpdate struct {
	Event       string                  `json:"event"`
	ResultID    int                     `json:"result_id"`
	Result      *models.MatchResult     `json:"result,omitempty"`
	Leaderboard []models.PlayerStanding `json:"leaderboard"`
}

type MatchResultServiceConfig struct {
	Table       MatchupTable
	PlayerRepo  repositories.PlayerRepository
	ResultRepo  repositories.MatchResultRepository
	Tx          repositories.TxRunner
	Leaderboard LeaderboardService
	Broadcaster Broadcaster          // может быть nil
	Uploader    storage.FileUploader // может быть nil, тогда загрузка карточек отключена
	Policy      scoring.StrokePolicy
	Scale       scoring.PointScale
	Logger      *slog.Logger
}

type matchResultService struct {
	table       MatchupTable
	playerRepo  repositories.PlayerRepository
	resultRepo  repositories.MatchResultRepository
	tx          repositories.TxRunner
	leaderboard LeaderboardService
	broadcaster Broadcaster
	uploader    storage.FileUploader
	policy      scoring.StrokePolicy
	scale       scoring.PointScale
	logger      *slog.Logger
}

func NewMatchResultService(cfg MatchResultServiceConfig) MatchResultService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &matchResultService{
		table:       cfg.Table,
		playerRepo:  cfg.PlayerRepo,
		resultRepo:  cfg.ResultRepo,
		tx:          cfg.Tx,
		leaderboard: cfg.Leaderboard,
		broadcaster: cfg.Broadcaster,
		uploader:    cfg.Uploader,
		policy:      cfg.Policy,
		scale:       cfg.Scale,
		logger:      logger,
	}
}

func (s *matchResultService) Record(ctx context.Context, year int, input RecordResultInput, actor Actor) (*models.MatchResult, error) {
	v := newValidationError()
	if input.FoursomeGroupID <= 0 {
		v.Add("foursome_group_id", "foursome_group_id is required")
	}
	if input.Player1ID <= 0 {
		v.Add("player1_id", "player1_id is required")
	}
	if input.Player2ID <= 0 {
		v.Add("player2_id", "player2_id is required")
	}
	if input.Player1ID == input.Player2ID && input.Player1ID > 0 {
		v.Add("player2_id", "a player cannot play against themselves")
	}
	segment, segErr := models.ParseHoleSegment(input.HoleSegment)
	if segErr != nil {
		v.Add("hole_segment", segErr.Error())
	}
	validateGross(v, input.Player1Gross, input.Player2Gross)
	if err := v.orNil(); err != nil {
		metrics.ValidationFailureCounter.WithLabelValues("record").Inc()
		return nil, err
	}

	t, err := s.table.Year(year)
	if err != nil {
		if errors.Is(err, matchups.ErrTournamentYearNotFound) {
			v.Add("tournament_year", fmt.Sprintf("no matchup table for %d", year))
			metrics.ValidationFailureCounter.WithLabelValues("record").Inc()
			return nil, v
		}
		return nil, err
	}

	m, swapped, err := t.Find(input.FoursomeGroupID, input.Player1ID, input.Player2ID, segment)
	if err != nil {
		if errors.Is(err, matchups.ErrMatchupNotFound) {
			v.Add("matchup", fmt.Sprintf("players %d and %d are not scheduled on holes %s in foursome %d",
				input.Player1ID, input.Player2ID, segment, input.FoursomeGroupID))
			metrics.ValidationFailureCounter.WithLabelValues("record").Inc()
			return nil, v
		}
		return nil, err
	}

	if !actor.IsAdmin() && !m.Involves(actor.PlayerID) {
		return nil, fmt.Errorf("%w: only the two players can submit this result", ErrForbiddenOperation)
	}

	gross1, gross2 := input.Player1Gross, input.Player2Gross
	if swapped {
		// приводим к порядку из таблицы, чтобы ключ уникальности совпадал
		gross1, gross2 = gross2, gross1
	}

	p1, p2, err := loadPlayerPair(ctx, s.playerRepo, m.Player1ID, m.Player2ID)
	if err != nil {
		return nil, err
	}

	alloc := scoring.AllocateStrokes(p1.ID, p1.Handicap, p2.ID, p2.Handicap, t.SegmentHoles(segment), s.policy)
	outcome := scoring.DecideMatch(p1.ID, gross1, p2.ID, gross2, alloc, s.scale)

	result := &models.MatchResult{
		TournamentYear:    year,
		FoursomeGroupID:   m.FoursomeID,
		Player1ID:         p1.ID,
		Player2ID:         p2.ID,
		Player1Handicap:   p1.Handicap,
		Player2Handicap:   p2.Handicap,
		HoleSegment:       segment,
		StrokesGiven:      alloc.StrokesGiven,
		StrokeRecipientID: alloc.StrokeRecipientID,
		StrokeHoles:       alloc.StrokeHoles,
		Player1Gross:      gross1,
		Player2Gross:      gross2,
		Player1Net:        outcome.Player1Net,
		Player2Net:        outcome.Player2Net,
		WinnerID:          outcome.WinnerID,
		PointsAwarded:     outcome.PointsAwarded,
		SubmittedBy:       actor.PlayerID,
	}

	if err := s.resultRepo.CreateIfAbsent(ctx, nil, result); err != nil {
		if errors.Is(err, repositories.ErrMatchResultConflict) {
			metrics.ResultConflictCounter.Inc()
			return nil, &ConflictError{Message: fmt.Sprintf("a result for players %d and %d on holes %s in foursome %d is already recorded",
				p1.ID, p2.ID, segment, m.FoursomeID)}
		}
		if errors.Is(err, repositories.ErrMatchResultPlayerInvalid) {
			return nil, fmt.Errorf("%w: %v", ErrPlayerNotFound, err)
		}
		return nil, fmt.Errorf("failed to store match result: %w", err)
	}

	if result.IsTie() {
		metrics.ResultsRecordedCounter.WithLabelValues(metrics.OutcomeHalved).Inc()
	} else {
		metrics.ResultsRecordedCounter.WithLabelValues(metrics.OutcomeDecided).Inc()
	}
	s.logger.InfoContext(ctx, "match result recorded",
		slog.Int("year", year),
		slog.Int("result_id", result.ID),
		slog.Int("foursome", result.FoursomeGroupID),
		slog.String("segment", string(segment)),
		slog.Int("submitted_by", actor.PlayerID))

	s.publish(ctx, year, EventResultRecorded, result)
	return result, nil
}

func (s *matchResultService) List(ctx context.Context, year int, foursomeID *int) ([]*models.MatchResult, error) {
	if _, err := tournamentFor(s.table, year); err != nil {
		return nil, err
	}
	results, err := s.resultRepo.ListByYear(ctx, year, foursomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for %d: %w", year, err)
	}
	for _, r := range results {
		populateScorecardURLFunc(r, s.uploader)
	}
	return results, nil
}

// Correct replaces the gross scores of a stored result and recomputes strokes, winner and
// points from the handicaps captured when the result was first recorded.
func (s *matchResultService) Correct(ctx context.Context, year, resultID int, input CorrectResultInput, actor Actor) (*models.MatchResult, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins can correct results", ErrForbiddenOperation)
	}
	v := newValidationError()
	validateGross(v, input.Player1Gross, input.Player2Gross)
	if err := v.orNil(); err != nil {
		metrics.ValidationFailureCounter.WithLabelValues("correct").Inc()
		return nil, err
	}

	t, err := tournamentFor(s.table, year)
	if err != nil {
		return nil, err
	}

	var result *models.MatchResult
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		current, err := s.resultRepo.GetByID(ctx, exec, year, resultID, true)
		if err != nil {
			return err
		}

		alloc := scoring.AllocateStrokes(current.Player1ID, current.Player1Handicap, current.Player2ID, current.Player2Handicap,
			t.SegmentHoles(current.HoleSegment), s.policy)
		outcome := scoring.DecideMatch(current.Player1ID, input.Player1Gross, current.Player2ID, input.Player2Gross, alloc, s.scale)

		current.StrokesGiven = alloc.StrokesGiven
		current.StrokeRecipientID = alloc.StrokeRecipientID
		current.StrokeHoles = alloc.StrokeHoles
		current.Player1Gross = input.Player1Gross
		current.Player2Gross = input.Player2Gross
		current.Player1Net = outcome.Player1Net
		current.Player2Net = outcome.Player2Net
		current.WinnerID = outcome.WinnerID
		current.PointsAwarded = outcome.PointsAwarded
		current.SubmittedBy = actor.PlayerID

		if err := s.resultRepo.UpdateOutcome(ctx, exec, current); err != nil {
			return err
		}
		result = current
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrMatchResultNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrResultNotFound, resultID)
		}
		return nil, fmt.Errorf("failed to correct match result %d: %w", resultID, err)
	}

	metrics.ResultCorrectionsCounter.Inc()
	s.logger.InfoContext(ctx, "match result corrected",
		slog.Int("year", year),
		slog.Int("result_id", resultID),
		slog.Int("corrected_by", actor.PlayerID))

	populateScorecardURLFunc(result, s.uploader)
	s.publish(ctx, year, EventResultCorrected, result)
	return result, nil
}

func (s *matchResultService) Delete(ctx context.Context, year, resultID int, actor Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins can delete results", ErrForbiddenOperation)
	}

	existing, err := s.resultRepo.GetByID(ctx, nil, year, resultID, false)
	if err != nil {
		return mapResultRepoError(err, resultID)
	}
	if err := s.resultRepo.Delete(ctx, year, resultID); err != nil {
		return mapResultRepoError(err, resultID)
	}

	if existing.ScorecardKey != nil && s.uploader != nil {
		if delErr := s.uploader.Delete(ctx, *existing.ScorecardKey); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete scorecard object",
				slog.Int("result_id", resultID),
				slog.String("key", *existing.ScorecardKey),
				slog.Any("error", delErr))
		}
	}

	s.logger.InfoContext(ctx, "match result deleted",
		slog.Int("year", year),
		slog.Int("result_id", resultID),
		slog.Int("deleted_by", actor.PlayerID))
	s.publish(ctx, year, EventResultDeleted, &models.MatchResult{ID: resultID, TournamentYear: year})
	return nil
}

func (s *matchResultService) AttachScorecard(ctx context.Context, year, resultID int, actor Actor, file io.Reader, contentType string) (*models.MatchResult, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	result, err := s.resultRepo.GetByID(ctx, nil, year, resultID, false)
	if err != nil {
		return nil, mapResultRepoError(err, resultID)
	}
	if !actor.IsAdmin() && actor.PlayerID != result.Player1ID && actor.PlayerID != result.Player2ID {
		return nil, fmt.Errorf("%w: only the two players can attach a scorecard", ErrForbiddenOperation)
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		v := newValidationError()
		v.Add("scorecard", err.Error())
		return nil, v
	}

	key := fmt.Sprintf("scorecards/%d/result_%d_%d%s", year, resultID, time.Now().UnixNano(), ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload scorecard for result %d: %w", resultID, err)
	}

	if err := s.resultRepo.SetScorecardKey(ctx, year, resultID, key); err != nil {
		// откатываем загрузку, чтобы не оставлять сирот в бакете
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned scorecard", slog.String("key", key), slog.Any("error", delErr))
		}
		return nil, mapResultRepoError(err, resultID)
	}

	if result.ScorecardKey != nil && *result.ScorecardKey != key {
		if delErr := s.uploader.Delete(ctx, *result.ScorecardKey); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete previous scorecard",
				slog.String("key", *result.ScorecardKey), slog.Any("error", delErr))
		}
	}

	metrics.ScorecardUploadsCounter.Inc()
	result.ScorecardKey = &key
	populateScorecardURLFunc(result, s.uploader)
	return result, nil
}

// publish pushes the refreshed leaderboard to the year's websocket room. Failures are
// logged; the write that triggered it has already been committed.
func (s *matchResultService) publish(ctx context.Context, year int, event string, result *models.MatchResult) {
	if s.broadcaster == nil || s.leaderboard == nil {
		return
	}
	standings, err := s.leaderboard.Compute(ctx, year, nil)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to compute leaderboard for broadcast", slog.Int("year", year), slog.Any("error", err))
		return
	}
	update := LeaderboardUpdate{
		Event:       event,
		ResultID:    result.ID,
		Leaderboard: standings,
	}
	if event != EventResultDeleted {
		update.Result = result
	}
	s.broadcaster.BroadcastToRoom(hub.TournamentRoom(year), hub.Message{
		Type:    "LEADERBOARD_UPDATED",
		Payload: update,
		RoomID:  hub.TournamentRoom(year),
	})
}

func validateGross(v *ValidationError, gross1, gross2 int) {
	if gross1 <= 0 {
		v.Add("player1_gross_score", "gross scores must be positive")
	}
	if gross2 <= 0 {
		v.Add("player2_gross_score", "gross scores must be positive")
	}
}

func mapResultRepoError(err error, resultID int) error {
	if errors.Is(err, repositories.ErrMatchResultNotFound) {
		return fmt.Errorf("%w: %d", ErrResultNotFound, resultID)
	}
	return fmt.Errorf("match result %d: %w", resultID, err)
}
