package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/Conceptual-Machines/lounge-api/internal/config"
	"github.com/Conceptual-Machines/lounge-api/internal/logger"
	"github.com/Conceptual-Machines/lounge-api/internal/lyrics"
	"github.com/Conceptual-Machines/lounge-api/internal/metrics"
	"github.com/Conceptual-Machines/lounge-api/internal/midi"
	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/playback"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompositionHandler serves arrangements, lyric sheets and playback plans.
// Nothing is stored: every request regenerates from the blueprint.
type CompositionHandler struct {
	cfg      *config.Config
	lyrics   *lyrics.Generator
	planner  *playback.Planner
	recorder metrics.Recorder
	newSeed  func() float64
}

func NewCompositionHandler(cfg *config.Config, gen *lyrics.Generator, recorder metrics.Recorder) *CompositionHandler {
	return &CompositionHandler{
		cfg:      cfg,
		lyrics:   gen,
		planner:  playback.NewPlanner(gen),
		recorder: recorder,
		newSeed:  lyrics.NewSeed,
	}
}

// GetArrangement generates the arrangement for the key in the path
func (h *CompositionHandler) GetArrangement(c *gin.Context) {
	key, err := arranger.LookupKey(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime := time.Now()
	arrangement, err := arranger.BuildArrangement(key)
	duration := time.Since(startTime)
	h.recorder.RecordGeneration(c.Request.Context(), kindArrangement, duration, err == nil)
	if err != nil {
		h.fail(c, "Arrangement generation failed", err, key)
		return
	}
	arrangement.ID = uuid.New().String()

	fields := logger.WithContext(c)
	fields["key"] = key.ID
	fields["sections"] = len(arrangement.Sections)
	fields["chord_events"] = len(arrangement.ChordEvents)
	fields["bass_events"] = len(arrangement.BassEvents)
	fields["melody_events"] = len(arrangement.MelodyEvents)
	logger.LogGeneration(c.Request.Context(), kindArrangement, duration, fields)

	c.JSON(http.StatusOK, arrangement)
}

// GetArrangementNotes renders the arrangement for the key as MIDI note tracks
func (h *CompositionHandler) GetArrangementNotes(c *gin.Context) {
	key, err := arranger.LookupKey(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime := time.Now()
	export, err := buildNoteExport(key)
	duration := time.Since(startTime)
	h.recorder.RecordGeneration(c.Request.Context(), kindNotes, duration, err == nil)
	if err != nil {
		h.fail(c, "Note export failed", err, key)
		return
	}

	fields := logger.WithContext(c)
	fields["key"] = key.ID
	fields["tracks"] = len(export.Tracks)
	logger.LogGeneration(c.Request.Context(), kindNotes, duration, fields)

	c.JSON(http.StatusOK, export)
}

func buildNoteExport(key models.Key) (*models.NoteExport, error) {
	arrangement, err := arranger.BuildArrangement(key)
	if err != nil {
		return nil, err
	}
	return midi.ExportArrangement(arrangement)
}

// GenerateLyrics builds a lyric sheet. A missing seed is drawn fresh and
// returned so the sheet can be replayed.
func (h *CompositionHandler) GenerateLyrics(c *gin.Context) {
	var req models.LyricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, err := arranger.LookupKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := h.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	startTime := time.Now()
	sheet, err := h.lyrics.Generate(key.Label, seed)
	duration := time.Since(startTime)
	h.recorder.RecordGeneration(c.Request.Context(), kindLyrics, duration, err == nil)
	if err != nil {
		h.fail(c, "Lyric generation failed", err, key)
		return
	}
	sheet.ID = uuid.New().String()

	fields := logger.WithContext(c)
	fields["key"] = key.ID
	fields["seed"] = seed
	logger.LogGeneration(c.Request.Context(), kindLyrics, duration, fields)

	c.JSON(http.StatusOK, sheet)
}

// PlanPlayback assembles everything one play needs. Omitted controls fall
// back to the configured defaults; lyrics get a fresh seed unless one is given.
func (h *CompositionHandler) PlanPlayback(c *gin.Context) {
	var req models.PlaybackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settings(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime := time.Now()
	plan, err := h.planner.Plan(settings)
	duration := time.Since(startTime)
	if errors.Is(err, playback.ErrTempoOutOfRange) || errors.Is(err, playback.ErrSwingOutOfRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.recorder.RecordGeneration(c.Request.Context(), kindPlayback, duration, err == nil)
	if err != nil {
		h.fail(c, "Playback planning failed", err, settings.Key)
		return
	}
	plan.Arrangement.ID = uuid.New().String()
	plan.Lyrics.ID = uuid.New().String()

	fields := logger.WithContext(c)
	fields["key"] = settings.Key.ID
	fields["tempo"] = settings.Tempo
	fields["swing"] = settings.Swing
	fields["seed"] = settings.Seed
	logger.LogGeneration(c.Request.Context(), kindPlayback, duration, fields)

	c.JSON(http.StatusOK, plan)
}

func (h *CompositionHandler) settings(req models.PlaybackRequest) (playback.Settings, error) {
	keyID := req.Key
	if keyID == "" {
		keyID = h.cfg.DefaultKey
	}
	key, err := arranger.LookupKey(keyID)
	if err != nil {
		return playback.Settings{}, err
	}

	settings := playback.Settings{
		Key:   key,
		Tempo: h.cfg.DefaultTempo,
		Swing: h.cfg.DefaultSwing,
		Seed:  h.newSeed(),
	}
	if req.Tempo != nil {
		settings.Tempo = *req.Tempo
	}
	if req.Swing != nil {
		settings.Swing = *req.Swing
	}
	if req.Seed != nil {
		settings.Seed = *req.Seed
	}
	return settings, nil
}

func (h *CompositionHandler) fail(c *gin.Context, msg string, err error, key models.Key) {
	fields := logger.WithContext(c)
	fields["key"] = key.ID
	logger.Error(msg, err, fields)

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      msg,
		"request_id": c.GetString("request_id"),
	})
}
