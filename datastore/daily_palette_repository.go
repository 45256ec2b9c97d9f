package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/color-game/swatch/models"
)

type DailyPaletteRepository interface {
	Create(daily models.DailyPalette) (models.DailyPalette, error)
	GetByDate(date time.Time) (models.DailyPalette, error)
	GetToday() (models.DailyPalette, error)
	GetAll() ([]models.DailyPalette, error)
}

type DailyPaletteDatabase struct {
	database *sql.DB
}

func NewDailyPaletteDatabase(db *sql.DB) (DailyPaletteDatabase, error) {
	var dailyPaletteDB DailyPaletteDatabase
	dailyPaletteDB.database = db
	return dailyPaletteDB, nil
}

// NormalizeDate truncates t to midnight in its own location.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

const dailyPaletteColumns = `id, date, palette_size, featured_index, hsl, hex, color_name, created_at`

func scanDailyPalette(row rowScanner) (models.DailyPalette, error) {
	var dp models.DailyPalette
	err := row.Scan(
		&dp.ID,
		&dp.Date,
		&dp.PaletteSize,
		&dp.FeaturedIndex,
		&dp.HSL,
		&dp.Hex,
		&dp.ColorName,
		&dp.CreatedAt,
	)

	switch err {
	case sql.ErrNoRows:
		return models.DailyPalette{}, NoRowsError{true, err}
	case nil:
		return dp, nil
	default:
		return models.DailyPalette{}, err
	}
}

// Create inserts a new daily palette entry into the database
func (dpdb DailyPaletteDatabase) Create(daily models.DailyPalette) (models.DailyPalette, error) {
	sqlStatement := `
		INSERT INTO daily_palette (date, palette_size, featured_index, hsl, hex, color_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := dpdb.database.QueryRow(
		sqlStatement,
		NormalizeDate(daily.Date),
		daily.PaletteSize,
		daily.FeaturedIndex,
		daily.HSL,
		daily.Hex,
		daily.ColorName,
		daily.CreatedAt,
	).Scan(&daily.ID)

	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to create daily palette: %v", err)
	}

	return daily, nil
}

// GetByDate retrieves a daily palette entry by date
func (dpdb DailyPaletteDatabase) GetByDate(date time.Time) (models.DailyPalette, error) {
	row := dpdb.database.QueryRow(`
		SELECT `+dailyPaletteColumns+`
		FROM daily_palette
		WHERE date = $1`, NormalizeDate(date))
	return scanDailyPalette(row)
}

func (dpdb DailyPaletteDatabase) GetToday() (models.DailyPalette, error) {
	return dpdb.GetByDate(time.Now())
}

// GetAll retrieves every daily palette entry, newest first
func (dpdb DailyPaletteDatabase) GetAll() ([]models.DailyPalette, error) {
	rows, err := dpdb.database.Query(`
		SELECT ` + dailyPaletteColumns + `
		FROM daily_palette
		ORDER BY date DESC`)
	if err != nil {
		return []models.DailyPalette{}, err
	}
	defer rows.Close()

	var dailies []models.DailyPalette
	for rows.Next() {
		dp, err := scanDailyPalette(rows)
		if err != nil {
			return []models.DailyPalette{}, err
		}
		dailies = append(dailies, dp)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyPalette{}, err
	}

	return dailies, nil
}
