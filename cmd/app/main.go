package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/analysis"
	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/database"
	"github.com/akyairhashvil/coachtrack/internal/settings"
	"github.com/akyairhashvil/coachtrack/internal/store"
	"github.com/akyairhashvil/coachtrack/internal/tui"
	"github.com/akyairhashvil/coachtrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "coachtrack needs an interactive terminal")
		os.Exit(1)
	}

	dataRoot := strings.TrimSpace(os.Getenv(config.EnvDataDir))
	if dataRoot == "" {
		dataRoot = util.DataDir(config.AppName)
	}
	util.MustSucceed("create data dir", os.MkdirAll(dataRoot, 0o755))

	logFile := setupLogging(dataRoot)
	defer logFile.Close()

	// 1. Preference persistence
	db, err := database.Open(filepath.Join(dataRoot, config.DBFileName))
	util.MustSucceed("open preferences database", err)
	defer db.Close()

	prefs := settings.NewStore(db, tui.SetDarkMode, lipgloss.HasDarkBackground)

	// 2. Session data (in-memory, reseeded every start)
	data := store.New()
	toasts := store.NewQueue()

	// 3. Analysis service client
	analyzeURL := strings.TrimSpace(os.Getenv(config.EnvAnalyzeURL))
	if analyzeURL == "" {
		analyzeURL = "http://localhost:8080"
	}
	client := analysis.NewClient(analyzeURL)

	model := tui.NewMainModel(data, prefs, toasts, client)
	if key := promptExportKey(); key != "" {
		model.SetExportKey(key)
	}

	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// promptExportKey reads an optional passphrase for sealing settings
// exports. Opt-in via the encrypt-exports env var; the key itself is
// never stored.
func promptExportKey() string {
	if os.Getenv(config.EnvEncryptExports) == "" {
		return ""
	}
	fmt.Fprint(os.Stderr, "Export encryption passphrase (leave empty to skip): ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		util.LogError("read export passphrase", err)
		return ""
	}
	return strings.TrimSpace(string(pass))
}

// setupLogging mirrors log output to a file so the TUI does not swallow
// diagnostics.
func setupLogging(dataRoot string) *os.File {
	logDir := filepath.Join(dataRoot, "logs")
	util.MustSucceed("create log dir", os.MkdirAll(logDir, 0o755))

	f, err := os.OpenFile(filepath.Join(logDir, "app.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	util.MustSucceed("open log file", err)

	// File only: stderr writes would tear the TUI frame.
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return f
}
