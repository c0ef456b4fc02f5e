package model

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"ultimate-holdem-server/pkg/db"
	"ultimate-holdem-server/pkg/handanalyzer"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateKey is returned when a round result has already been saved
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

const roundResultColumns = `
round_results.id,
round_results.ante_bet,
round_results.trips_bet,
round_results.blind_bet,
round_results.action_bet,
round_results.total_staked,
round_results.net_win,
round_results.main_pot_win,
round_results.trips_win,
round_results.blind_win,
round_results.bankroll_after,
round_results.outcome,
round_results.player_category,
round_results.dealer_category,
round_results.dealer_qualified,
round_results.created`

func getRoundResultByRow(row db.Scanner) (*ultimate.RoundResult, error) {
	var r ultimate.RoundResult
	var playerCategory, dealerCategory sql.NullInt32
	if err := row.Scan(&r.ID, &r.AnteBet, &r.TripsBet, &r.BlindBet, &r.ActionBet, &r.TotalStaked, &r.NetWin,
		&r.MainPotWin, &r.TripsWin, &r.BlindWin, &r.BankrollAfter, &r.Outcome, &playerCategory, &dealerCategory,
		&r.DealerQualified, &r.Time); err != nil {
		return nil, err
	}

	r.PlayerCategory = nullCategory(playerCategory)
	r.DealerCategory = nullCategory(dealerCategory)
	return &r, nil
}

func nullCategory(n sql.NullInt32) *handanalyzer.Category {
	if !n.Valid {
		return nil
	}

	c := handanalyzer.Category(n.Int32)
	return &c
}

func categoryValue(c *handanalyzer.Category) sql.NullInt32 {
	if c == nil {
		return sql.NullInt32{}
	}

	return sql.NullInt32{Int32: int32(*c), Valid: true}
}

// SaveRoundResult stores a round result for a session
func SaveRoundResult(ctx context.Context, sessionID uuid.UUID, r *ultimate.RoundResult) error {
	const query = `
INSERT INTO round_results (id, session_id, ante_bet, trips_bet, blind_bet, action_bet, total_staked, net_win,
                           main_pot_win, trips_win, blind_win, bankroll_after, outcome, player_category,
                           dealer_category, dealer_qualified, created)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := db.Instance().ExecContext(ctx, query, r.ID, sessionID, r.AnteBet, r.TripsBet, r.BlindBet, r.ActionBet,
		r.TotalStaked, r.NetWin, r.MainPotWin, r.TripsWin, r.BlindWin, r.BankrollAfter, r.Outcome,
		categoryValue(r.PlayerCategory), categoryValue(r.DealerCategory), r.DealerQualified, r.Time.UTC())
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateKey
		}

		return err
	}

	return nil
}

// GetRoundResultsBySession returns every round of a session, oldest first
func GetRoundResultsBySession(ctx context.Context, sessionID uuid.UUID) ([]*ultimate.RoundResult, error) {
	const query = `
SELECT ` + roundResultColumns + `
FROM round_results
WHERE session_id = $1
ORDER BY seq`

	rows, err := db.Instance().QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*ultimate.RoundResult, 0)
	for rows.Next() {
		r, err := getRoundResultByRow(rows)
		if err != nil {
			return nil, err
		}

		results = append(results, r)
	}

	return results, rows.Err()
}

// Recorder saves every round of a simulated session
type Recorder struct{}

// Record saves the round result
func (Recorder) Record(ctx context.Context, sessionID uuid.UUID, result *ultimate.RoundResult) error {
	return SaveRoundResult(ctx, sessionID, result)
}

// Rounds returns the rounds of a session
func (Recorder) Rounds(ctx context.Context, sessionID uuid.UUID) ([]*ultimate.RoundResult, error) {
	return GetRoundResultsBySession(ctx, sessionID)
}
