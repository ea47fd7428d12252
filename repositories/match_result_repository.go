package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/Dosada05/golf-matchplay/models"
)

var (
	ErrMatchResultNotFound      = errors.New("match result not found")
	ErrMatchResultConflict      = errors.New("a result for this matchup is already recorded")
	ErrMatchResultPlayerInvalid = errors.New("match result references an unknown player")
)

// MatchResultRepository stores segment results. A matchup identity
// (year, foursome, player1, player2, segment) can hold at most one row.
type MatchResultRepository interface {
	CreateIfAbsent(ctx context.Context, exec SQLExecutor, result *models.MatchResult) error
	GetByID(ctx context.Context, exec SQLExecutor, year, id int, forUpdate bool) (*models.MatchResult, error)
	ListByYear(ctx context.Context, year int, foursomeID *int) ([]*models.MatchResult, error)
	UpdateOutcome(ctx context.Context, exec SQLExecutor, result *models.MatchResult) error
	SetScorecardKey(ctx context.Context, year, id int, key string) error
	Delete(ctx context.Context, year, id int) error
}

type postgresMatchResultRepository struct {
	db *sql.DB
}

func NewPostgresMatchResultRepository(db *sql.DB) MatchResultRepository {
	return &postgresMatchResultRepository{db: db}
}

func (r *postgresMatchResultRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchResultColumns = `
	id, tournament_year, foursome_group_id, player1_id, player2_id, player1_handicap, player2_handicap,
	hole_segment, strokes_given, stroke_recipient_id, stroke_holes, player1_gross, player2_gross,
	player1_net, player2_net, winner_id, player1_points, player2_points, submitted_by, scorecard_key,
	created_at, updated_at`

// CreateIfAbsent inserts the result unless the matchup already has one. The unique
// constraint decides the race between two concurrent submissions.
func (r *postgresMatchResultRepository) CreateIfAbsent(ctx context.Context, exec SQLExecutor, m *models.MatchResult) error {
	query := `
		INSERT INTO match_results
			(tournament_year, foursome_group_id, player1_id, player2_id, player1_handicap, player2_handicap,
			 hole_segment, strokes_given, stroke_recipient_id, stroke_holes, player1_gross, player2_gross,
			 player1_net, player2_net, winner_id, player1_points, player2_points, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT ON CONSTRAINT match_results_matchup_key DO NOTHING
		RETURNING id, created_at, updated_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		m.TournamentYear,
		m.FoursomeGroupID,
		m.Player1ID,
		m.Player2ID,
		m.Player1Handicap,
		m.Player2Handicap,
		m.HoleSegment,
		m.StrokesGiven,
		m.StrokeRecipientID,
		toInt64s(m.StrokeHoles),
		m.Player1Gross,
		m.Player2Gross,
		m.Player1Net,
		m.Player2Net,
		m.WinnerID,
		m.PointsAwarded.Player1,
		m.PointsAwarded.Player2,
		m.SubmittedBy,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		// DO NOTHING сработал — строка уже есть
		return ErrMatchResultConflict
	}
	return r.handleMatchResultError(err)
}

func (r *postgresMatchResultRepository) scanMatchResult(row rowScanner) (*models.MatchResult, error) {
	var (
		m       models.MatchResult
		holes   pq.Int64Array
		segment string
	)
	err := row.Scan(
		&m.ID,
		&m.TournamentYear,
		&m.FoursomeGroupID,
		&m.Player1ID,
		&m.Player2ID,
		&m.Player1Handicap,
		&m.Player2Handicap,
		&segment,
		&m.StrokesGiven,
		&m.StrokeRecipientID,
		&holes,
		&m.Player1Gross,
		&m.Player2Gross,
		&m.Player1Net,
		&m.Player2Net,
		&m.WinnerID,
		&m.PointsAwarded.Player1,
		&m.PointsAwarded.Player2,
		&m.SubmittedBy,
		&m.ScorecardKey,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchResultNotFound
		}
		return nil, err
	}
	m.HoleSegment = models.HoleSegment(segment)
	m.StrokeHoles = fromInt64s(holes)
	return &m, nil
}

func (r *postgresMatchResultRepository) GetByID(ctx context.Context, exec SQLExecutor, year, id int, forUpdate bool) (*models.MatchResult, error) {
	query := `SELECT ` + matchResultColumns + ` FROM match_results WHERE tournament_year = $1 AND id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := r.scanMatchResult(r.getExecutor(exec).QueryRowContext(ctx, query, year, id))
	if err != nil && !errors.Is(err, ErrMatchResultNotFound) {
		return nil, fmt.Errorf("failed to scan match result %d: %w", id, err)
	}
	return m, err
}

func (r *postgresMatchResultRepository) ListByYear(ctx context.Context, year int, foursomeID *int) ([]*models.MatchResult, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchResultColumns + ` FROM match_results WHERE tournament_year = $1`)

	args := []interface{}{year}
	if foursomeID != nil {
		args = append(args, *foursomeID)
		queryBuilder.WriteString(" AND foursome_group_id = $")
		queryBuilder.WriteString(strconv.Itoa(len(args)))
	}
	queryBuilder.WriteString(" ORDER BY foursome_group_id ASC, hole_segment ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match results for year %d: %w", year, err)
	}
	defer rows.Close()

	results := make([]*models.MatchResult, 0)
	for rows.Next() {
		m, scanErr := r.scanMatchResult(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match result row: %w", scanErr)
		}
		results = append(results, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match result rows iteration: %w", err)
	}
	return results, nil
}

// UpdateOutcome rewrites the scores and the derived outcome of an existing result.
func (r *postgresMatchResultRepository) UpdateOutcome(ctx context.Context, exec SQLExecutor, m *models.MatchResult) error {
	query := `
		UPDATE match_results SET
			strokes_given = $1, stroke_recipient_id = $2, stroke_holes = $3,
			player1_gross = $4, player2_gross = $5, player1_net = $6, player2_net = $7,
			winner_id = $8, player1_points = $9, player2_points = $10, submitted_by = $11,
			updated_at = NOW()
		WHERE tournament_year = $12 AND id = $13
		RETURNING updated_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		m.StrokesGiven, m.StrokeRecipientID, toInt64s(m.StrokeHoles),
		m.Player1Gross, m.Player2Gross, m.Player1Net, m.Player2Net,
		m.WinnerID, m.PointsAwarded.Player1, m.PointsAwarded.Player2, m.SubmittedBy,
		m.TournamentYear, m.ID,
	).Scan(&m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMatchResultNotFound
	}
	return r.handleMatchResultError(err)
}

func (r *postgresMatchResultRepository) SetScorecardKey(ctx context.Context, year, id int, key string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE match_results SET scorecard_key = $1, updated_at = NOW() WHERE tournament_year = $2 AND id = $3`,
		key, year, id)
	if err != nil {
		return fmt.Errorf("failed to set scorecard key for match result %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchResultNotFound)
}

func (r *postgresMatchResultRepository) Delete(ctx context.Context, year, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM match_results WHERE tournament_year = $1 AND id = $2`, year, id)
	if err != nil {
		return fmt.Errorf("failed to delete match result %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchResultNotFound)
}

func (r *postgresMatchResultRepository) handleMatchResultError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// "23503": foreign_key_violation
		// "23505": unique_violation
		switch pqErr.Constraint {
		case "match_results_matchup_key":
			return ErrMatchResultConflict
		case "match_results_player1_id_fkey", "match_results_player2_id_fkey",
			"match_results_winner_id_fkey", "match_results_stroke_recipient_id_fkey":
			return ErrMatchResultPlayerInvalid
		}
	}
	return err
}
