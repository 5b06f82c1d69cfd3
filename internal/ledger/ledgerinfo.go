package ledger

import (
	"time"

	"gitlab.com/zlyzol/uledger/internal/models"
)

// GetStartTime returns ledger start time
func (l *Ledger) GetStartTime() time.Time {
	return l.startTime
}

// GetHealth returns health status of Ledger's crucial units.
func (l *Ledger) GetHealth() *models.HealthStatus {
	return &models.HealthStatus{
		Ledger:   !l.startTime.IsZero(),
		Database: l.store.Ping() == nil,
	}
}

// GetStats returns some statistic data of the ledger
func (l *Ledger) GetStats() (*models.Stats, error) {
	stats, err := l.store.GetStats()
	if err != nil {
		return nil, err
	}
	stats.TimeRunning = time.Since(l.GetStartTime()).String()
	return &stats, nil
}

// GetTransfers returns transfer list, newest first
func (l *Ledger) GetTransfers(limit int) (*models.Transfers, error) {
	transfers, err := l.store.GetTransfers(limit)
	if err != nil {
		return nil, err
	}
	return &transfers, nil
}
