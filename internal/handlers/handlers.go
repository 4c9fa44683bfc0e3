package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/aggregator"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/formatter"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/logger"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/mlb"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
	"github.com/redis/go-redis/v9"
)

// Provider fetches pitch-by-pitch data for a season.
type Provider interface {
	FetchSeason(ctx context.Context, year int) ([]models.PitchRecord, error)
}

// Cache stores fetched season data between requests.
type Cache interface {
	ReadSeason(ctx context.Context, year int) ([]models.PitchRecord, error)
	WriteSeason(ctx context.Context, year int, records []models.PitchRecord) error
	InvalidateSeason(ctx context.Context, year int) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	provider          Provider
	cache             Cache
	log               *logger.Logger
	defaultMinPitches int
}

// NewHandler creates a new handler with dependencies
func NewHandler(provider Provider, cache Cache, log *logger.Logger, defaultMinPitches int) *Handler {
	return &Handler{
		provider:          provider,
		cache:             cache,
		log:               log,
		defaultMinPitches: defaultMinPitches,
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pitch-stats-service",
		"timestamp": time.Now().UTC(),
	})
}

// GetPlayers returns the distinct player names seen in a season, formatted
// for display and sorted.
// Query params: year
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	year := parseIntParam(r, "year", time.Now().Year())

	records, err := h.loadSeason(r.Context(), year)
	if err != nil {
		h.log.WithRequest(r).WithField("year", year).Errorf("loading season: %v", err)
		respondError(w, http.StatusBadGateway, "failed to load statcast data")
		return
	}

	seen := make(map[string]struct{})
	players := []string{}
	for _, record := range records {
		if record.GameYear != year {
			continue
		}
		name := mlb.FormatPlayerName(record.PlayerName)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		players = append(players, name)
	}
	sort.Strings(players)

	respondJSON(w, http.StatusOK, models.PlayerList{
		Year:    year,
		Players: players,
	})
}

// GetOutPercentage returns a player's out-percentage breakdown by pitch
// type for one season, with overall summary and league-average comparison.
// Query params: player (required), year, min_pitches, sort, order
func (h *Handler) GetOutPercentage(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	year := parseIntParam(r, "year", time.Now().Year())
	minPitches := parseIntParam(r, "min_pitches", h.defaultMinPitches)
	if minPitches < 0 {
		respondError(w, http.StatusBadRequest, "min_pitches must be non-negative")
		return
	}

	sortKey, err := formatter.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	descending := r.URL.Query().Get("order") != "asc"

	season, err := h.loadSeason(r.Context(), year)
	if err != nil {
		h.log.WithRequest(r).WithField("year", year).Errorf("loading season: %v", err)
		respondError(w, http.StatusBadGateway, "failed to load statcast data")
		return
	}

	var playerRecords []models.PitchRecord
	seasonRecords := make([]models.PitchRecord, 0, len(season))
	for _, record := range season {
		if record.GameYear != year {
			continue
		}
		seasonRecords = append(seasonRecords, record)
		if record.PlayerName == player || mlb.FormatPlayerName(record.PlayerName) == player {
			playerRecords = append(playerRecords, record)
		}
	}

	if len(playerRecords) == 0 {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no statcast data for %s in %d", player, year))
		return
	}

	summaries, overall := aggregator.Aggregate(playerRecords, minPitches)
	ordered := formatter.Sort(summaries, sortKey, descending)

	leagueSummaries, _ := aggregator.Aggregate(seasonRecords, minPitches)
	leagueByType := make(map[string]float64, len(leagueSummaries))
	for _, s := range leagueSummaries {
		leagueByType[s.PitchType] = s.OutPercentage
	}

	comparisons := make([]models.PitchTypeComparison, 0, len(ordered))
	for _, s := range ordered {
		comparisons = append(comparisons, models.PitchTypeComparison{
			PitchType:           s.PitchType,
			PitchName:           s.PitchName,
			PlayerOutPercentage: s.OutPercentage,
			LeagueOutPercentage: leagueByType[s.PitchType],
		})
	}

	respondJSON(w, http.StatusOK, models.PlayerReport{
		Player:           mlb.FormatPlayerName(player),
		Year:             year,
		MinPitches:       minPitches,
		PitchTypes:       ordered,
		Summary:          overall,
		LeagueComparison: comparisons,
	})
}

// InvalidateCache drops a season's cached data.
// Query params: year (required)
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	year := parseIntParam(r, "year", 0)
	if year == 0 {
		respondError(w, http.StatusBadRequest, "year is required")
		return
	}

	if err := h.cache.InvalidateSeason(r.Context(), year); err != nil {
		h.log.WithRequest(r).WithField("year", year).Errorf("invalidating cache: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to invalidate cache")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "invalidated",
		"year":   year,
	})
}

// loadSeason returns a season's pitch records, preferring the cache. A
// cache miss falls through to the provider; the subsequent cache write is
// best-effort.
func (h *Handler) loadSeason(ctx context.Context, year int) ([]models.PitchRecord, error) {
	records, err := h.cache.ReadSeason(ctx, year)
	if err == nil {
		return records, nil
	}
	if !errors.Is(err, redis.Nil) {
		h.log.WithField("year", year).Warnf("season cache read: %v", err)
	}

	records, err = h.provider.FetchSeason(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetching season %d: %w", year, err)
	}

	if err := h.cache.WriteSeason(ctx, year, records); err != nil {
		h.log.WithField("year", year).Warnf("season cache write: %v", err)
	}

	return records, nil
}

// parseIntParam parses an integer query parameter with a default
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	if value := r.URL.Query().Get(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
