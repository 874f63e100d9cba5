package repository

import (
	"database/sql"
	"fmt"
)

type UsageStats struct {
	UniqueUsers   int `json:"uniqueUsers"`
	LedgerEntries int `json:"ledgerEntries"`
	GoalsTracked  int `json:"goals"`
	ForecastsRun  int `json:"forecasts"`
}

func GetUsageStats(tx *sql.DB) (*UsageStats, error) {
	query := `select
	(select count(distinct user_id) from ledger_entry) as "distinct_users",
	(select count(*) from ledger_entry) as "num_ledger_entries",
	(select count(*) from goal) as "num_goals",
	(select count(*) from api_request where route like '%forecast%') as "num_forecasts";`

	row := tx.QueryRow(query)

	out := UsageStats{}

	err := row.Scan(&out.UniqueUsers, &out.LedgerEntries, &out.GoalsTracked, &out.ForecastsRun)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
