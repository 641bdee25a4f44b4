package background

import (
	log "github.com/sirupsen/logrus"
)

// TaskScoreboardRefresh recomputes the persisted priority snapshot of a
// dataset. It is enqueued after every upload.
const TaskScoreboardRefresh = "scoreboard_refresh"

// RefreshScoreboard is the background job behind TaskScoreboardRefresh.
func (m *BackgroundManager) RefreshScoreboard(datasetID string) error {
	scoreboard, err := m.store.RefreshScoreboard(datasetID)
	if err != nil {
		log.WithField("prefix", "background").WithError(err).
			WithField("dataset_id", datasetID).Error("fail to refresh scoreboard")
		return err
	}

	log.WithField("prefix", "background").
		WithField("dataset_id", datasetID).
		WithField("countries", len(scoreboard.Scores)).Info("scoreboard refreshed")
	return nil
}
