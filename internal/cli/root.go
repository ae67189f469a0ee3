// Package cli implements the addressbook CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/rcliao/addressbook/internal/config"
	"github.com/rcliao/addressbook/internal/logger"
	"github.com/rcliao/addressbook/internal/model"
	"github.com/rcliao/addressbook/internal/store"
	"github.com/spf13/cobra"
)

var (
	filePath   string
	dbPath     string
	configPath string
	formatFlag string
	logLevel   string
)

// RootCmd is the top-level command. Without a subcommand it starts the
// interactive assistant.
var RootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Personal contact directory",
	Long:  "A small address book: contacts with phone numbers and birthdays, kept in a JSON file or SQLite.",
	Args:  cobra.NoArgs,
	Run:   runREPL,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&filePath, "file", "F", "", "JSON data file (default: $ADDRESSBOOK_FILE or ~/.addressbook/data.json)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Use a SQLite database at this path instead of the JSON file")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $ADDRESSBOOK_CONFIG or ~/.addressbook/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		exitErr("load config", err)
	}

	if filePath != "" {
		cfg.Storage.Backend = string(store.BackendJSON)
		cfg.Storage.File = filePath
	}
	if dbPath != "" {
		cfg.Storage.Backend = string(store.BackendSQLite)
		cfg.Storage.DB = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg
}

// session is an opened store with its book loaded.
type session struct {
	cfg   config.Config
	log   *slog.Logger
	store store.Store
	book  *book.Book
	found bool
}

func openSession(cmd *cobra.Command) *session {
	cfg := loadConfig(cmd)
	log := logger.New(cfg.Log)

	s, err := store.Open(store.Backend(cfg.Storage.Backend), cfg.Storage.Path())
	if err != nil {
		exitErr("open store", err)
	}

	b := book.New()
	found, err := s.Load(cmd.Context(), b)
	if err != nil {
		s.Close()
		exitErr("load contacts", err)
	}
	if found {
		log.Info("contacts.loaded", "path", s.Path(), "count", b.Len())
	} else {
		log.Info("contacts.missing", "path", s.Path())
	}

	return &session{cfg: cfg, log: log, store: s, book: b, found: found}
}

func (s *session) save(cmd *cobra.Command) {
	if err := s.store.Save(cmd.Context(), s.book); err != nil {
		exitErr("save contacts", err)
	}
	s.log.Info("contacts.saved", "path", s.store.Path(), "count", s.book.Len())
}

func (s *session) close() {
	s.store.Close()
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func printRecords(cmd *cobra.Command, rs []*model.Record) {
	if formatFlag == "json" {
		dtos := make([]book.RecordDTO, len(rs))
		for i, r := range rs {
			dtos[i] = book.ToDTO(r)
		}
		printJSON(cmd, dtos)
		return
	}
	for _, r := range rs {
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
	}
}

func exitErr(msg string, err error) {
	if kind := model.KindOf(err); kind != "" {
		fmt.Fprintf(os.Stderr, "error: %s [%s]: %v\n", msg, kind, err)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	}
	os.Exit(1)
}
