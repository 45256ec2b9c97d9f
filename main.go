package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/color-game/swatch/api"
	"github.com/color-game/swatch/colors"
	"github.com/color-game/swatch/datastore"
	"github.com/color-game/swatch/migrations"
	"github.com/color-game/swatch/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := loadConfig()
	printBanner(config)

	connStr := datastore.BuildDBConnStr(
		config.DatabaseHost,
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	if err := migrations.RunMigrations(dbConn, config.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo, err := datastore.NewUserDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	dailyPaletteRepo, err := datastore.NewDailyPaletteDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create daily palette repository: %v", err)
	}

	swatchRepo, err := datastore.NewSwatchDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create swatch repository: %v", err)
	}

	paletteScheduler := scheduler.NewScheduler(dailyPaletteRepo, scheduler.NewTheColorAPI(), config.PaletteSize)
	paletteScheduler.Start()
	defer paletteScheduler.Stop()

	app := &api.Application{
		Config:           config,
		UserRepo:         userRepo,
		DailyPaletteRepo: dailyPaletteRepo,
		SwatchRepo:       swatchRepo,
		Generator:        paletteScheduler,
	}

	if err := app.Serve(http.NewServeMux()); err != nil {
		log.Printf("Server error: %v", err)
	}
}

func loadConfig() api.Config {
	return api.Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		DatabaseType:      getEnv("DB_TYPE", "postgres"),
		DatabaseHost:      getEnv("DB_HOST", "localhost"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", ""),
		DatabaseName:      getEnv("DB_NAME", "swatch"),
		SSLMode:           getEnv("SSL_MODE", "disable"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 900), // 15 minutes
		JwtDomain:         getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:           getEnvBool("DEV_MODE", true),
		PaletteSize:       min(getEnvInt("PALETTE_SIZE", colors.DefaultPaletteSize), api.MaxPaletteSize),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", migrations.DefaultDir),
	}
}

func printBanner(config api.Config) {
	badge := color.New(color.BgMagenta, color.FgWhite, color.Bold)
	dim := color.New(color.FgHiBlack)
	accent := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	fmt.Printf("%s %s\n", badge.Sprint(" ◆ SWATCH "), dim.Sprint("palette · contrast · classnames"))
	fmt.Printf("  %s %s\n", dim.Sprint("listen:"), accent.Sprint(config.HTTPPort))
	fmt.Printf("  %s %s\n", dim.Sprint("palette size:"), accent.Sprint(config.PaletteSize))
	if config.DevMode {
		fmt.Printf("  %s\n", color.YellowString("dev mode: localhost origins allowed"))
	}
	fmt.Println()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
