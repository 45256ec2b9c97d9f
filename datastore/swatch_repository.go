package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/color-game/swatch/models"
)

type SwatchRepository interface {
	Create(swatch models.Swatch) (models.Swatch, error)
	ListByUser(userID string) ([]models.Swatch, error)
	Delete(swatchID, userID string) error
}

type SwatchDatabase struct {
	database *sql.DB
}

func NewSwatchDatabase(db *sql.DB) (SwatchDatabase, error) {
	var swatchDB SwatchDatabase
	swatchDB.database = db
	return swatchDB, nil
}

func (sdb SwatchDatabase) Create(swatch models.Swatch) (models.Swatch, error) {
	_, err := sdb.database.Exec(`
		INSERT INTO swatches (id, user_id, name, foreground, background, ratio, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		swatch.ID,
		swatch.UserID,
		swatch.Name,
		swatch.Foreground,
		swatch.Background,
		swatch.Ratio,
		swatch.Rating.String(),
		swatch.CreatedAt,
	)
	if err != nil {
		return models.Swatch{}, fmt.Errorf("failed to create swatch: %v", err)
	}
	return swatch, nil
}

func (sdb SwatchDatabase) ListByUser(userID string) ([]models.Swatch, error) {
	rows, err := sdb.database.Query(`
		SELECT id, user_id, name, foreground, background, ratio, rating, created_at
		FROM swatches
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return []models.Swatch{}, err
	}
	defer rows.Close()

	swatches := []models.Swatch{}
	for rows.Next() {
		var s models.Swatch
		var rating string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Foreground, &s.Background, &s.Ratio, &rating, &s.CreatedAt); err != nil {
			return []models.Swatch{}, err
		}
		if err := s.Rating.UnmarshalText([]byte(rating)); err != nil {
			return []models.Swatch{}, err
		}
		swatches = append(swatches, s)
	}

	if err = rows.Err(); err != nil {
		return []models.Swatch{}, err
	}
	return swatches, nil
}

// Delete removes a swatch owned by userID. A missing swatch is a NoRowsError.
func (sdb SwatchDatabase) Delete(swatchID, userID string) error {
	result, err := sdb.database.Exec(`DELETE FROM swatches WHERE id = $1 AND user_id = $2`, swatchID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}
