package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/color-game/swatch/models"
)

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	ValidateAndGetUser(credentials models.Credentials) (models.User, error)
	GetAllUsers() ([]models.User, error)
}

type UserDatabase struct {
	database *sql.DB
}

func NewUserDatabase(db *sql.DB) (UserDatabase, error) {
	var userDatabase UserDatabase
	userDatabase.database = db
	return userDatabase, nil
}

const userColumns = `
	user_id,
	username,
	email,
	password_hash,
	kind,
	approved,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	scanErr := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.Approved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.User{}, NoRowsError{true, scanErr}
	case nil:
		return user, nil
	default:
		return models.User{}, scanErr
	}
}

func (pgdb UserDatabase) Create(user models.User) (models.User, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO users (`+userColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.Approved,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if insertErr != nil {
		return user, fmt.Errorf("error creating user %v", insertErr)
	}

	return user, nil
}

func (pgdb UserDatabase) Get(userID string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (pgdb UserDatabase) GetAllUsers() ([]models.User, error) {
	rows, pgErr := pgdb.database.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if pgErr != nil {
		return []models.User{}, pgErr
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return []models.User{}, scanErr
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return []models.User{}, rows.Err()
	}

	return users, nil
}

func (pgdb UserDatabase) ValidateAndGetUser(credentials models.Credentials) (models.User, error) {
	user, err := pgdb.GetUserByEmail(credentials.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("error in row scan %v", err)
	}

	if bcryptErr := user.CheckPassword(credentials.Password); bcryptErr != nil {
		return models.User{}, fmt.Errorf("error in compare of hash %v", bcryptErr)
	}
	return user, nil
}
