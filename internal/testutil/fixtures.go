package testutil

import (
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
)

// PitchFixture creates a test PitchRecord with sensible defaults
func PitchFixture(overrides ...func(*models.PitchRecord)) models.PitchRecord {
	record := models.PitchRecord{
		PlayerName: "Cole, Gerrit",
		PitchType:  "FF",
		Event:      "",
		GameYear:   2024,
	}

	// Apply overrides
	for _, override := range overrides {
		override(&record)
	}

	return record
}

// Pitch creates a test record for a pitch type and outcome
func Pitch(pitchType, event string) models.PitchRecord {
	return PitchFixture(func(r *models.PitchRecord) {
		r.PitchType = pitchType
		r.Event = event
	})
}

// PlayerPitch creates a test record for a specific player
func PlayerPitch(player, pitchType, event string) models.PitchRecord {
	return PitchFixture(func(r *models.PitchRecord) {
		r.PlayerName = player
		r.PitchType = pitchType
		r.Event = event
	})
}
