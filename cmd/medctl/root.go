package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/config"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
	"github.com/tbourn/go-medtrack-backend/internal/services"
)

var (
	dbDriverFlag string
	dbPathFlag   string
	dsnFlag      string
	jsonFlag     bool
)

// store is opened by the first subcommand that needs it and closed once
// the command finishes.
var store *gorm.DB

var rootCmd = &cobra.Command{
	Use:   "medctl",
	Short: "Manage the medtrack medication store",
	Long: `medctl works directly against the medication store used by the medtrack
server: create, drop, seed or reset the schema, record medications and
inspect what is overdue.

Connection settings come from the environment (DB_DRIVER, DB_PATH, DB_DSN,
optionally via .env) and may be overridden with flags.`,
	SilenceUsage:       true,
	PersistentPostRunE: closeStore,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dbDriverFlag, "db-driver", "", "Store driver: sqlite, postgres, mysql or sqlserver (default from DB_DRIVER)")
	pf.StringVar(&dbPathFlag, "db-path", "", "SQLite file (default from DB_PATH)")
	pf.StringVar(&dsnFlag, "dsn", "", "Driver DSN for non-SQLite stores (default from DB_DSN)")
	pf.BoolVar(&jsonFlag, "json", false, "Output as JSON")
}

// dbConfig resolves the store settings. Flags win over the environment.
func dbConfig(cmd *cobra.Command) (config.DBConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.DBConfig{}, err
	}
	db := cfg.DB
	if changed(cmd, "db-driver") {
		db.Driver = strings.ToLower(strings.TrimSpace(dbDriverFlag))
	}
	if changed(cmd, "db-path") {
		db.Path = dbPathFlag
	}
	if changed(cmd, "dsn") {
		db.DSN = dsnFlag
	}
	if db.Source() == "" {
		return db, fmt.Errorf("no connection source for driver %q", db.Driver)
	}
	return db, nil
}

// changed reports whether the named flag, local or inherited, was set.
func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func openStore(cmd *cobra.Command) (*gorm.DB, error) {
	if store != nil {
		return store, nil
	}
	cfg, err := dbConfig(cmd)
	if err != nil {
		return nil, err
	}
	db, err := repo.Open(repo.Options{
		Driver:       cfg.Driver,
		DSN:          cfg.Source(),
		MaxOpenConns: cfg.MaxOpenConns,
	})
	if err != nil {
		return nil, err
	}
	store = db
	return db, nil
}

func closeStore(_ *cobra.Command, _ []string) error {
	if store == nil {
		return nil
	}
	err := repo.Close(store)
	store = nil
	return err
}

// app bundles the services a subcommand works through.
type app struct {
	meds     *services.MedicationService
	schedule *services.ScheduleService
	schema   *services.SchemaService
	search   *services.SearchService
}

func newApp(cmd *cobra.Command) (app, error) {
	db, err := openStore(cmd)
	if err != nil {
		return app{}, err
	}
	var mu sync.RWMutex
	r := repo.Repository{}
	return app{
		meds:     services.NewMedicationService(db, r, &mu),
		schedule: services.NewScheduleService(db, r, &mu),
		schema:   services.NewSchemaService(db, &mu),
		search:   services.NewSearchService(db, r, &mu),
	}, nil
}
