package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/terraincognita07/dayglow/internal/models"
	"github.com/terraincognita07/dayglow/internal/services"
)

const (
	moodFetchLimit    = 15
	stoolFetchLimit   = 15
	foodFetchLimit    = 7
	symptomFetchLimit = 10
	cycleLookbackDays = 90
)

var (
	ErrNoCategories    = errors.New("no categories requested")
	ErrUnknownCategory = errors.New("unknown category")

	errSourceUnavailable = errors.New("source not configured")
)

type MoodSource interface {
	ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.MoodEntry, error)
}

type StoolSource interface {
	ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.StoolEntry, error)
}

type FoodSource interface {
	ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.FoodEntry, error)
}

type SymptomSource interface {
	ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.SymptomEntry, error)
}

type CycleDaySource interface {
	ListSince(ctx context.Context, userID string, since time.Time) ([]models.CycleDay, error)
}

// Sources are the per-category stores the builder reads from.
type Sources struct {
	Moods     MoodSource
	Stools    StoolSource
	Foods     FoodSource
	Symptoms  SymptomSource
	CycleDays CycleDaySource
}

// EvidencePack holds one summary per queried category. DataFetched lists
// every queried category exactly once whether or not its retrieval worked;
// Degraded names the ones that failed and were summarised as empty.
type EvidencePack struct {
	Moods       *Summary   `json:"recentMoods,omitempty"`
	Stools      *Summary   `json:"recentStools,omitempty"`
	Foods       *Summary   `json:"recentFoods,omitempty"`
	Symptoms    *Summary   `json:"recentSymptoms,omitempty"`
	Cycle       *Summary   `json:"cycleInfo,omitempty"`
	DataFetched []Category `json:"dataFetched"`
	Degraded    []Category `json:"-"`
}

func (pack EvidencePack) summaries() []*Summary {
	return []*Summary{pack.Moods, pack.Stools, pack.Foods, pack.Symptoms, pack.Cycle}
}

// HasInformativeData reports whether any present category carries real content.
func (pack EvidencePack) HasInformativeData() bool {
	for _, summary := range pack.summaries() {
		if summary != nil && summary.Informative() {
			return true
		}
	}
	return false
}

func (sources Sources) has(category Category) bool {
	switch category {
	case CategoryMood:
		return sources.Moods != nil
	case CategoryStool:
		return sources.Stools != nil
	case CategoryFood:
		return sources.Foods != nil
	case CategorySymptom:
		return sources.Symptoms != nil
	case CategoryCycle:
		return sources.CycleDays != nil
	}
	return false
}

type rawEvidence struct {
	moods     []models.MoodEntry
	stools    []models.StoolEntry
	foods     []models.FoodEntry
	symptoms  []models.SymptomEntry
	cycleDays []models.CycleDay
}

type EvidenceBuilder struct {
	sources  Sources
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

func NewEvidenceBuilder(sources Sources, logger *zap.Logger, location *time.Location) *EvidenceBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &EvidenceBuilder{
		sources:  sources,
		logger:   logger,
		location: location,
		now:      time.Now,
	}
}

// Build fetches every requested category concurrently and summarises the
// results once all fetches have settled. A failed fetch never cancels its
// siblings. Build only fails on invalid input or a cancelled ctx.
func (builder *EvidenceBuilder) Build(ctx context.Context, userID string, categories []Category, windowDays int) (EvidencePack, error) {
	requested := appendUnique(nil, categories...)
	if len(requested) == 0 {
		return EvidencePack{}, ErrNoCategories
	}
	for _, category := range requested {
		if !category.Valid() {
			return EvidencePack{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	now := builder.now().In(builder.location)
	cutoff := now.AddDate(0, 0, -windowDays)

	var raw rawEvidence
	failed := make([]bool, len(requested))

	var group errgroup.Group
	for index, category := range requested {
		group.Go(func() error {
			if err := builder.fetch(ctx, userID, category, now, cutoff, &raw); err != nil {
				failed[index] = true
				builder.logger.Warn("evidence retrieval degraded",
					zap.String("category", string(category)),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return EvidencePack{}, err
	}

	pack := EvidencePack{DataFetched: requested}
	for index, category := range requested {
		if failed[index] {
			pack.Degraded = append(pack.Degraded, category)
			builder.summarize(&pack, category, rawEvidence{}, now)
			continue
		}
		builder.summarize(&pack, category, raw, now)
	}
	return pack, nil
}

// fetch writes only the field of raw that belongs to category.
func (builder *EvidenceBuilder) fetch(ctx context.Context, userID string, category Category, now, cutoff time.Time, raw *rawEvidence) error {
	if !builder.sources.has(category) {
		return fmt.Errorf("fetch %s entries: %w", category, errSourceUnavailable)
	}

	var err error
	switch category {
	case CategoryMood:
		raw.moods, err = builder.sources.Moods.ListSince(ctx, userID, cutoff, moodFetchLimit)
	case CategoryStool:
		raw.stools, err = builder.sources.Stools.ListSince(ctx, userID, cutoff, stoolFetchLimit)
	case CategoryFood:
		raw.foods, err = builder.sources.Foods.ListSince(ctx, userID, cutoff, foodFetchLimit)
	case CategorySymptom:
		raw.symptoms, err = builder.sources.Symptoms.ListSince(ctx, userID, cutoff, symptomFetchLimit)
	case CategoryCycle:
		raw.cycleDays, err = builder.sources.CycleDays.ListSince(ctx, userID, now.AddDate(0, 0, -cycleLookbackDays))
	}
	if err != nil {
		return fmt.Errorf("fetch %s entries: %w", category, err)
	}
	return nil
}

func (builder *EvidenceBuilder) summarize(pack *EvidencePack, category Category, raw rawEvidence, now time.Time) {
	var summary Summary
	switch category {
	case CategoryMood:
		summary = SummarizeMoods(raw.moods)
		pack.Moods = &summary
	case CategoryStool:
		summary = SummarizeStools(raw.stools)
		pack.Stools = &summary
	case CategoryFood:
		summary = SummarizeFoods(raw.foods, builder.location)
		pack.Foods = &summary
	case CategorySymptom:
		summary = SummarizeSymptoms(raw.symptoms)
		pack.Symptoms = &summary
	case CategoryCycle:
		summary = SummarizeCycle(services.CycleDayDates(raw.cycleDays), now)
		pack.Cycle = &summary
	}
}
