package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

var (
	ErrRoundLocked       = errors.New("round is locked for score entry")
	ErrInvalidRound      = errors.New("invalid round")
	ErrPointsOutOfRange  = errors.New("points outside the criterion range")
	ErrCriterionNotFound = repository.ErrCriterionNotFound
	ErrPlayerNotFound    = repository.ErrPlayerNotFound
	ErrJudgeNotFound     = repository.ErrJudgeNotFound
)

// ScoreEntry is one judge/criterion cell of a player's score sheet.
type ScoreEntry struct {
	PlayerID    string
	JudgeID     string
	CriterionID string
	Points      int
}

type ScoringScoreRepository interface {
	FindByRound(ctx context.Context, round domain.RoundType) ([]domain.Score, error)
	FindByPlayerAndRound(ctx context.Context, playerID string, round domain.RoundType) ([]domain.Score, error)
	Upsert(ctx context.Context, score domain.Score) (domain.Score, error)
}

type ScoringCriterionRepository interface {
	FindByID(ctx context.Context, id string) (domain.Criterion, error)
}

type ScoringPlayerRepository interface {
	FindByID(ctx context.Context, id string) (domain.Player, error)
}

type ScoringJudgeRepository interface {
	FindByID(ctx context.Context, id string) (domain.Judge, error)
}

type ScoringSettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
}

// ScoringService validates and persists score entries. Lock state is loaded
// fresh from the settings table before every write, never cached.
type ScoringService struct {
	scores   ScoringScoreRepository
	criteria ScoringCriterionRepository
	players  ScoringPlayerRepository
	judges   ScoringJudgeRepository
	settings ScoringSettingsRepository
}

func NewScoringService(
	scores ScoringScoreRepository,
	criteria ScoringCriterionRepository,
	players ScoringPlayerRepository,
	judges ScoringJudgeRepository,
	settings ScoringSettingsRepository,
) *ScoringService {
	return &ScoringService{
		scores:   scores,
		criteria: criteria,
		players:  players,
		judges:   judges,
		settings: settings,
	}
}

// SubmitScore validates one entry against the round lock and the criterion
// cap, then upserts it. Re-submitting the same tuple overwrites points.
func (s *ScoringService) SubmitScore(ctx context.Context, round domain.RoundType, entry ScoreEntry, enteredBy string) (domain.Score, error) {
	if err := s.checkRoundWritable(ctx, round); err != nil {
		return domain.Score{}, err
	}

	if err := s.validateEntry(ctx, round, entry); err != nil {
		return domain.Score{}, err
	}

	return s.upsert(ctx, round, entry, enteredBy)
}

// SubmitScores validates every entry before writing any of them, so a bad
// cell rejects the whole batch instead of persisting a partial sheet.
func (s *ScoringService) SubmitScores(ctx context.Context, round domain.RoundType, entries []ScoreEntry, enteredBy string) error {
	if err := s.checkRoundWritable(ctx, round); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := s.validateEntry(ctx, round, entry); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if _, err := s.upsert(ctx, round, entry, enteredBy); err != nil {
			return err
		}
	}

	return nil
}

// SavePlayerSheet persists a single player's sheet across all judges.
// Nil cells mean "not scored yet" and are skipped, not written as zero.
func (s *ScoringService) SavePlayerSheet(ctx context.Context, round domain.RoundType, playerID string, sheet map[string]map[string]*int, enteredBy string) error {
	var entries []ScoreEntry
	for judgeID, byCriterion := range sheet {
		for criterionID, points := range byCriterion {
			if points == nil {
				continue
			}

			entries = append(entries, ScoreEntry{
				PlayerID:    playerID,
				JudgeID:     judgeID,
				CriterionID: criterionID,
				Points:      *points,
			})
		}
	}

	return s.SubmitScores(ctx, round, entries, enteredBy)
}

// GetRoundSheet returns the round's raw rows grouped by player, judge and
// criterion - the shape the score-entry screen renders.
func (s *ScoringService) GetRoundSheet(ctx context.Context, round domain.RoundType) (domain.ScoreSheet, error) {
	if !round.Valid() {
		return nil, ErrInvalidRound
	}

	scores, err := s.scores.FindByRound(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("s.scores.FindByRound -> %w", err)
	}

	return domain.BuildScoreSheet(scores, round), nil
}

// ComputeJudgeTotal sums one judge's entered points for a player in a round.
func (s *ScoringService) ComputeJudgeTotal(ctx context.Context, playerID, judgeID string, round domain.RoundType) (int, error) {
	scores, err := s.scores.FindByPlayerAndRound(ctx, playerID, round)
	if err != nil {
		return 0, fmt.Errorf("s.scores.FindByPlayerAndRound -> %w", err)
	}

	return domain.JudgeTotal(scores, playerID, judgeID, round), nil
}

// ComputeGrandTotal sums a player's points across all judges for a round.
// A player with no entries totals 0.
func (s *ScoringService) ComputeGrandTotal(ctx context.Context, playerID string, round domain.RoundType) (int, error) {
	scores, err := s.scores.FindByPlayerAndRound(ctx, playerID, round)
	if err != nil {
		return 0, fmt.Errorf("s.scores.FindByPlayerAndRound -> %w", err)
	}

	return domain.GrandTotal(scores, playerID, round), nil
}

func (s *ScoringService) checkRoundWritable(ctx context.Context, round domain.RoundType) error {
	if !round.Valid() {
		return ErrInvalidRound
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("s.settings.Load -> %w", err)
	}

	if settings.RoundLocked(round) {
		return ErrRoundLocked
	}

	return nil
}

func (s *ScoringService) validateEntry(ctx context.Context, round domain.RoundType, entry ScoreEntry) error {
	criterion, err := s.criteria.FindByID(ctx, entry.CriterionID)
	if err != nil {
		if errors.Is(err, repository.ErrCriterionNotFound) {
			return ErrCriterionNotFound
		}

		return fmt.Errorf("s.criteria.FindByID -> %w", err)
	}

	if criterion.State == domain.StateDeleted || !criterion.AppliesTo(round) {
		return ErrCriterionNotFound
	}

	// Bounds are inclusive; out-of-range points are rejected, never clamped.
	if entry.Points < 0 || entry.Points > criterion.MaxPoints {
		return fmt.Errorf("%w: %d not in [0, %d] for criterion %q",
			ErrPointsOutOfRange, entry.Points, criterion.MaxPoints, criterion.ID)
	}

	if _, err = s.players.FindByID(ctx, entry.PlayerID); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}

		return fmt.Errorf("s.players.FindByID -> %w", err)
	}

	if _, err = s.judges.FindByID(ctx, entry.JudgeID); err != nil {
		if errors.Is(err, repository.ErrJudgeNotFound) {
			return ErrJudgeNotFound
		}

		return fmt.Errorf("s.judges.FindByID -> %w", err)
	}

	return nil
}

func (s *ScoringService) upsert(ctx context.Context, round domain.RoundType, entry ScoreEntry, enteredBy string) (domain.Score, error) {
	score, err := s.scores.Upsert(ctx, domain.Score{
		PlayerID:    entry.PlayerID,
		JudgeID:     entry.JudgeID,
		CriterionID: entry.CriterionID,
		Round:       round,
		Points:      entry.Points,
		EnteredBy:   enteredBy,
	})
	if err != nil {
		return domain.Score{}, fmt.Errorf("s.scores.Upsert -> %w", err)
	}

	return score, nil
}
