// Package cli - команды клиента сервиса объявлений
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	logger_adapter "github.com/Abhishek10293/PropertyManagement/internal/adapters/logger"
	"github.com/Abhishek10293/PropertyManagement/internal/client/apiclient"
	"github.com/Abhishek10293/PropertyManagement/internal/client/favorites"
	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/Abhishek10293/PropertyManagement/pkg/badgerkv"
	"github.com/spf13/cobra"
)

// session - зависимости одного запуска команды
type session struct {
	apiURL  string
	dataDir string
	verbose bool

	logger    port.LoggerPort
	api       *apiclient.Client
	favorites *favorites.Service
	store     *badgerkv.Store
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".property-listings"
	}
	return filepath.Join(home, ".property-listings")
}

// Execute разбирает аргументы и выполняет команду.
// Хранилище избранного закрывается при любом исходе.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	s := &session{}
	defer s.close()

	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// newRootCommand собирает дерево команд. Пустой --data-dir хранит
// избранное только в памяти процесса.
func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "listings",
		Short:         "Browse and manage property listings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&s.apiURL, "api", envOr("LISTINGS_API_URL", apiclient.DefaultBaseURL), "base URL of the listing API")
	root.PersistentFlags().StringVar(&s.dataDir, "data-dir", envOr("LISTINGS_DATA_DIR", defaultDataDir()), "directory for local favorites")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newListCommand(s),
		newShowCommand(s),
		newCreateCommand(s),
		newDeleteCommand(s),
		newFavoritesCommand(s),
		newWatchCommand(s),
	)
	return root
}

func (s *session) open(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if s.verbose {
		level = slog.LevelDebug
	}
	s.logger = logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   cmd.ErrOrStderr(),
		Level:    level,
		UseColor: true,
	}).WithFields(port.Fields{"app": "listings-cli"})

	store, err := badgerkv.Open(badgerkv.Config{Path: s.dataDir, InMemory: s.dataDir == ""})
	if err != nil {
		return fmt.Errorf("failed to open favorites storage: %w", err)
	}
	s.store = store
	s.favorites = favorites.NewService(favorites.NewBadgerStorage(store), s.logger)
	s.api = apiclient.New(s.apiURL)

	// trace_id одного запуска попадает в логи сервиса
	ctx := contextkeys.ContextWithLogger(cmd.Context(), s.logger)
	ctx = contextkeys.ContextWithTraceID(ctx, contextkeys.NewTraceID())
	cmd.SetContext(ctx)

	s.logger.Debug("CLI session opened", port.Fields{"api": s.apiURL, "data_dir": s.dataDir})
	return nil
}

func (s *session) close() error {
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
