package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/vacation-planner/internal/balance"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/config"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/kvstore"
	"github.com/username/vacation-planner/internal/planner"
	"github.com/username/vacation-planner/internal/session"
	"github.com/username/vacation-planner/internal/vacation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	userID     string
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vacation-planner",
		Short:         "Team vacation planner",
		Long:          "Plan vacations, home office and business trips on a shared team calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				cfg.ExpandEnvVars()
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search for config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "Employee id to act as (default: session.auto_login_user_id or session.default_user_id)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(matrixCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(vacationsCmd())
	rootCmd.AddCommand(favoritesCmd())

	return rootCmd
}

// app bundles the planner with the resources it must release
type app struct {
	cfg     *config.Config
	planner *planner.Manager
	closers []io.Closer
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
}

// loadApp loads the config and wires the planner
func loadApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()
	return initializePlanner(cfg)
}

func initializePlanner(cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	// Holidays: operator file first, built-in table as fallback
	var primary, fallback calendar.HolidayCalendar
	if cfg.Calendar.HolidaysFile != "" {
		primary = calendar.NewFileCalendar(cfg.Calendar.HolidaysFile, logger)
	}
	if cfg.Calendar.Builtin == config.BuiltinPL {
		fallback = calendar.PolishHolidays()
	}
	cal := calendar.NewCompositeCalendar(primary, fallback, logger)
	if err := cal.LoadPrimary(); err != nil {
		logger.Warn("Failed to load holidays file, continuing with built-in holidays",
			zap.String("file", cfg.Calendar.HolidaysFile),
			zap.Error(err))
	}

	// Favorites persistence
	var kv kvstore.Store
	switch cfg.Storage.Type {
	case config.StorageSQLite:
		if err := ensureDir(cfg.Storage.SQLitePath); err != nil {
			return nil, err
		}
		store, err := kvstore.OpenSQLite(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		a.closers = append(a.closers, store)
		kv = store
	default:
		if err := ensureDir(cfg.Storage.FavoritesFile); err != nil {
			return nil, err
		}
		kv = kvstore.NewFileStore(cfg.Storage.FavoritesFile, logger)
	}

	dir, err := directory.New(cfg.Seed.EmployeesOrDefault())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid employee directory: %w", err)
	}

	store := vacation.NewStore(logger)
	if cfg.Seed.DemoData {
		if err := store.Seed(vacation.DemoRecords()...); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to seed demo vacations: %w", err)
		}
	}

	calc := balance.NewCalculator(store, cal, cfg.Seed.AllotmentsOrDefault())
	identity := directory.NewMockIdentity(dir, cfg.Session.DefaultUserID, logger)
	sessions := session.NewManager(identity, kv, logger)

	a.planner = planner.NewManager(store, cal, dir, calc, sessions, planner.SystemClock{}, logger)

	logger.Info("Planner initialized",
		zap.Int("employees", dir.Len()),
		zap.Int("vacations", len(store.All())),
		zap.String("storage", cfg.Storage.Type))

	return a, nil
}

// login starts the session the command acts as: --user, then the
// configured auto-login user, then the default user
func (a *app) login() (*session.Session, error) {
	id := userID
	if id == "" {
		id = a.cfg.Session.AutoLoginUserID
	}
	if id == "" {
		id = a.cfg.Session.DefaultUserID
	}
	return a.planner.Sessions().Login(id)
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := ensureDir(logFile); err != nil {
		return nil, err
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
