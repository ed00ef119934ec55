package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"plutusgrip-client/internal/client"
	"plutusgrip-client/internal/config"
	"plutusgrip-client/internal/session"
	"plutusgrip-client/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return fmt.Errorf("missing command")
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(stdout)
		return nil
	}

	cfg := config.Load()
	logger := newLogger(stderr)

	db, err := storage.Open(&cfg.Storage)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := session.NewStore(storage.NewCredentialRepository(db.DB), cfg.Storage.Passphrase, logger)
	if err != nil {
		return err
	}

	api := client.New(cfg.API, store, logger, client.WithBreakerConfig(client.CircuitBreakerConfig{
		MaxFailures:     cfg.Security.BreakerMaxFailures,
		ResetTimeout:    cfg.Security.BreakerResetTimeout,
		HalfOpenMaxSucc: client.DefaultCircuitBreakerConfig().HalfOpenMaxSucc,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{api: api, stdin: stdin, stdout: stdout, stderr: stderr}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "register":
		return app.register(ctx, rest)
	case "login":
		return app.login(ctx, rest)
	case "logout":
		return app.logout(ctx)
	case "whoami":
		return app.whoami(ctx)
	case "tx":
		return app.transactions(ctx, rest)
	case "categories":
		return app.categories(ctx, rest)
	case "budgets":
		return app.budgets(ctx, rest)
	case "goals":
		return app.goals(ctx, rest)
	case "recurring":
		return app.recurring(ctx, rest)
	case "dashboard":
		return app.dashboard(ctx)
	case "summary":
		return app.summary(ctx, rest)
	case "trends":
		return app.trends(ctx, rest)
	case "patterns":
		return app.patterns(ctx)
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("PLUTUSGRIP_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: plutusgrip <command> [flags]

Commands:
  register    Create an account and log in
  login       Log in with email and password
  logout      Log out and clear the stored session
  whoami      Show the authenticated user

  tx          Manage transactions (list, add, get, rm)
  categories  Manage categories (list, add, rm)
  budgets     Manage budgets (list, add, status, rm)
  goals       Manage goals (list, add, progress, complete, rm)
  recurring   List recurring transactions

  dashboard   Show the dashboard snapshot
  summary     Show a financial summary for a date range
  trends      Show monthly income/expense trends
  patterns    Show spending patterns

Environment:
  PLUTUSGRIP_API_URL           API base URL (default http://localhost:8000/api)
  PLUTUSGRIP_STORE_PATH        Session database path
  PLUTUSGRIP_STORE_PASSPHRASE  Encrypt stored tokens with this passphrase
  PLUTUSGRIP_LOG_LEVEL         debug, info, warn or error`)
}

// readPassword reads a password without echo when stdin is a terminal.
func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	var password string
	if _, err := fmt.Fscanln(stdin, &password); err != nil {
		return "", err
	}
	return strings.TrimSpace(password), nil
}
