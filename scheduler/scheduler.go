package scheduler

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/color-game/swatch/colors"
	"github.com/color-game/swatch/datastore"
	"github.com/color-game/swatch/models"
	"github.com/color-game/swatch/timing"
)

// Scheduler features one entry of the generated palette each day.
type Scheduler struct {
	DailyPaletteRepo datastore.DailyPaletteRepository
	Namer            ColorNamer
	PaletteSize      int

	now    func() time.Time
	pick   func(n int) int
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(repo datastore.DailyPaletteRepository, namer ColorNamer, paletteSize int) *Scheduler {
	if paletteSize <= 0 {
		paletteSize = colors.DefaultPaletteSize
	}
	return &Scheduler{
		DailyPaletteRepo: repo,
		Namer:            namer,
		PaletteSize:      paletteSize,
		now:              time.Now,
		pick:             rand.Intn,
	}
}

// untilMidnight returns how long until the start of the day after now.
func untilMidnight(now time.Time) time.Duration {
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return nextMidnight.Sub(now)
}

// Start generates today's entry if it is missing, then runs at every
// midnight until Stop is called.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	if _, err := s.GenerateDailyPalette(); err != nil {
		log.Printf("Error generating daily palette on start: %v", err)
	}

	wait := untilMidnight(s.now())
	log.Printf("Scheduler started. Next daily palette generation in %v", wait)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			if err := timing.SleepContext(ctx, wait); err != nil {
				return
			}
			if _, err := s.GenerateDailyPalette(); err != nil {
				log.Printf("Error generating daily palette: %v", err)
			}
			wait = untilMidnight(s.now())
		}
	}()
}

// Stop stops the scheduler and waits for the loop to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	log.Println("Scheduler stopped")
}

// GenerateDailyPalette features a random entry of the palette for today. It
// returns the existing entry when today already has one.
func (s *Scheduler) GenerateDailyPalette() (models.DailyPalette, error) {
	log.Println("Generating daily palette...")

	today := datastore.NormalizeDate(s.now())

	existing, err := s.DailyPaletteRepo.GetByDate(today)
	if err == nil && existing.ID != 0 {
		log.Printf("Daily palette already exists for %s: %s", today.Format("2006-01-02"), existing.HSL)
		return existing, nil
	}
	var noRows datastore.NoRowsError
	if err != nil && !errors.As(err, &noRows) {
		return models.DailyPalette{}, err
	}

	palette := colors.GeneratePalette(s.PaletteSize)
	index := s.pick(len(palette))
	featured := palette[index]

	daily := models.DailyPalette{
		Date:          today,
		PaletteSize:   s.PaletteSize,
		FeaturedIndex: index,
		HSL:           featured.String(),
		Hex:           featured.Hex(),
		CreatedAt:     s.now(),
	}

	if s.Namer != nil {
		name, err := s.Namer.Name(daily.Hex)
		if err != nil {
			log.Printf("Error naming color %s: %v", daily.Hex, err)
		} else {
			daily.ColorName = name
		}
	}

	saved, err := s.DailyPaletteRepo.Create(daily)
	if err != nil {
		log.Printf("Error saving daily palette to database: %v", err)
		return models.DailyPalette{}, err
	}

	log.Printf("Successfully generated daily palette entry: %s %s (%s) for %s",
		saved.HSL, saved.Hex, saved.ColorName, saved.Date.Format("2006-01-02"))

	return saved, nil
}
