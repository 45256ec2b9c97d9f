package api

import (
	"github.com/color-game/swatch/datastore"
	"github.com/color-game/swatch/models"
)

type Config struct {
	HTTPPort          string
	DatabaseType      string
	DatabaseHost      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SSLMode           string
	JwtSecret         string
	JwtAccessDuration int // seconds
	JwtDomain         string
	AllowedOrigins    []string
	DevMode           bool
	PaletteSize       int
	MigrationsDir     string
}

// DailyPaletteGenerator produces (or returns the existing) entry for today.
type DailyPaletteGenerator interface {
	GenerateDailyPalette() (models.DailyPalette, error)
}

type Application struct {
	Config           Config
	UserRepo         datastore.UserRepository
	DailyPaletteRepo datastore.DailyPaletteRepository
	SwatchRepo       datastore.SwatchRepository
	Generator        DailyPaletteGenerator
}
