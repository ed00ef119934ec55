package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/client"
	"plutusgrip-client/internal/dto"
	"plutusgrip-client/internal/fetch"
	"plutusgrip-client/internal/models"
)

type app struct {
	api    client.API
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) printJSON(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(encoded))
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: name, email")
	}

	pass, err := a.resolvePassword(*password)
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, dto.RegisterRequest{Name: *name, Email: *email, Password: pass})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Registered and logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email")
	}

	pass, err := a.resolvePassword(*password)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, dto.LoginRequest{Email: *email, Password: pass})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(a.stdout, "Password: ")
	password, err := readPassword(a.stdin)
	fmt.Fprintln(a.stdout)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		// Local credentials are gone regardless.
		fmt.Fprintf(a.stderr, "Warning: server-side logout failed: %v\n", err)
	}
	fmt.Fprintln(a.stdout, "Logged out.")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	if !a.api.IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}

	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) transactions(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tx <list|add|get|rm> [flags]")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		return a.txList(ctx, rest)
	case "add":
		return a.txAdd(ctx, rest)
	case "get":
		return a.txGet(ctx, rest)
	case "rm":
		return a.txRemove(ctx, rest)
	default:
		return fmt.Errorf("unknown tx subcommand %q", sub)
	}
}

func (a *app) txList(ctx context.Context, args []string) error {
	fs := a.flagSet("tx list")
	page := fs.Int("page", 1, "Page number")
	size := fs.Int("size", 20, "Page size")
	txType := fs.String("type", "", "Filter by type (income or expense)")
	category := fs.String("category", "", "Filter by category id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.api.ListTransactions(ctx, models.TransactionFilters{
		Page:       *page,
		PageSize:   *size,
		Type:       models.TransactionType(*txType),
		CategoryID: *category,
	})
	if err != nil {
		return err
	}

	for _, tx := range resp.Transactions {
		fmt.Fprintf(a.stdout, "%s  %-36s %-7s %10s  %s\n",
			tx.Date, tx.ID, tx.Type, tx.Amount.StringFixed(2), tx.Description)
	}
	fmt.Fprintf(a.stdout, "Page %d/%d transactions, %d total\n", resp.Page, len(resp.Transactions), resp.Total)
	return nil
}

func (a *app) txAdd(ctx context.Context, args []string) error {
	fs := a.flagSet("tx add")
	description := fs.String("desc", "", "Description")
	amount := fs.String("amount", "", "Amount, e.g. 42.50")
	txType := fs.String("type", "expense", "Type (income or expense)")
	category := fs.Int("category", 0, "Category id")
	date := fs.String("date", "", "Date as YYYY-MM-DD (default today)")
	notes := fs.String("notes", "", "Free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *description == "" || *amount == "" || *category == 0 {
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: desc, amount, category")
	}

	value, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amount, err)
	}

	when := models.DateOf(time.Now())
	if *date != "" {
		when, err = models.ParseDate(*date)
		if err != nil {
			return err
		}
	}

	tx, err := a.api.CreateTransaction(ctx, dto.TransactionCreateRequest{
		Description: *description,
		Amount:      value,
		Type:        models.TransactionType(*txType),
		CategoryID:  *category,
		Date:        when,
		Notes:       *notes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Created transaction %s\n", tx.ID)
	return nil
}

func (a *app) txGet(ctx context.Context, args []string) error {
	fs := a.flagSet("tx get")
	id := fs.String("id", "", "Transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("missing required flags: id")
	}

	tx, err := a.api.GetTransaction(ctx, *id)
	if err != nil {
		return err
	}
	return a.printJSON(tx)
}

func (a *app) txRemove(ctx context.Context, args []string) error {
	fs := a.flagSet("tx rm")
	id := fs.String("id", "", "Transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("missing required flags: id")
	}

	if err := a.api.DeleteTransaction(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted transaction %s\n", *id)
	return nil
}

func (a *app) categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: categories <list|add|rm> [flags]")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		fs := a.flagSet("categories list")
		catType := fs.String("type", "", "Filter by type (income or expense)")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		resp, err := a.api.ListCategories(ctx, models.CategoryFilters{Type: models.TransactionType(*catType)})
		if err != nil {
			return err
		}
		for _, cat := range resp.Categories {
			fmt.Fprintf(a.stdout, "%-36s %-7s %s\n", cat.ID, cat.Type, cat.Name)
		}
		return nil
	case "add":
		fs := a.flagSet("categories add")
		name := fs.String("name", "", "Category name")
		catType := fs.String("type", "expense", "Type (income or expense)")
		color := fs.String("color", "", "Hex color, e.g. #ff8800")
		icon := fs.String("icon", "", "Icon name")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("missing required flags: name")
		}

		cat, err := a.api.CreateCategory(ctx, dto.CategoryCreateRequest{
			Name:  *name,
			Type:  models.TransactionType(*catType),
			Color: *color,
			Icon:  *icon,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Created category %s\n", cat.ID)
		return nil
	case "rm":
		fs := a.flagSet("categories rm")
		id := fs.String("id", "", "Category id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing required flags: id")
		}
		if err := a.api.DeleteCategory(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Deleted category %s\n", *id)
		return nil
	default:
		return fmt.Errorf("unknown categories subcommand %q", sub)
	}
}

func (a *app) budgets(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: budgets <list|add|status|rm> [flags]")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		fs := a.flagSet("budgets list")
		skip := fs.Int("skip", 0, "Records to skip")
		limit := fs.Int("limit", 100, "Maximum records")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		budgets, err := a.api.ListBudgets(ctx, models.BudgetFilters{Skip: *skip, Limit: *limit})
		if err != nil {
			return err
		}
		for _, b := range budgets {
			fmt.Fprintf(a.stdout, "%-36s category=%d %s/%s from %s\n",
				b.ID, b.CategoryID, b.Amount.StringFixed(2), b.Period, b.StartDate)
		}
		return nil
	case "add":
		fs := a.flagSet("budgets add")
		category := fs.Int("category", 0, "Category id")
		amount := fs.String("amount", "", "Budget cap, e.g. 500.00")
		period := fs.String("period", "monthly", "Period (monthly, quarterly or yearly)")
		start := fs.String("start", "", "Start date as YYYY-MM-DD (default today)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *category == 0 || *amount == "" {
			return fmt.Errorf("missing required flags: category, amount")
		}

		value, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", *amount, err)
		}
		startDate := models.DateOf(time.Now())
		if *start != "" {
			startDate, err = models.ParseDate(*start)
			if err != nil {
				return err
			}
		}

		budget, err := a.api.CreateBudget(ctx, dto.BudgetCreateRequest{
			CategoryID: *category,
			Amount:     value,
			Period:     models.BudgetPeriod(*period),
			StartDate:  startDate,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Created budget %s\n", budget.ID)
		return nil
	case "status":
		fs := a.flagSet("budgets status")
		id := fs.String("id", "", "Budget id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing required flags: id")
		}

		status, err := a.api.BudgetStatus(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Spent %s of %s (%s%%), remaining %s\n",
			status.SpentAmount.StringFixed(2),
			status.BudgetAmount.StringFixed(2),
			status.PercentageUsed.StringFixed(1),
			status.RemainingAmount.StringFixed(2))
		if status.IsExceeded {
			fmt.Fprintln(a.stdout, "Budget exceeded.")
		}
		return nil
	case "rm":
		fs := a.flagSet("budgets rm")
		id := fs.String("id", "", "Budget id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing required flags: id")
		}
		if err := a.api.DeleteBudget(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Deleted budget %s\n", *id)
		return nil
	default:
		return fmt.Errorf("unknown budgets subcommand %q", sub)
	}
}

func (a *app) goals(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: goals <list|add|progress|complete|rm> [flags]")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		fs := a.flagSet("goals list")
		completed := fs.String("completed", "", "Filter by completion (true or false)")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		filters := models.GoalFilters{}
		if *completed != "" {
			flagValue := *completed == "true"
			filters.IsCompleted = &flagValue
		}

		goals, err := a.api.ListGoals(ctx, filters)
		if err != nil {
			return err
		}
		for _, g := range goals {
			marker := " "
			if g.IsCompleted {
				marker = "x"
			}
			fmt.Fprintf(a.stdout, "[%s] %-36s %s/%s %s\n",
				marker, g.ID, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.Name)
		}
		return nil
	case "add":
		fs := a.flagSet("goals add")
		name := fs.String("name", "", "Goal name")
		target := fs.String("target", "", "Target amount")
		priority := fs.String("priority", "medium", "Priority (low, medium or high)")
		deadline := fs.String("deadline", "", "Deadline as YYYY-MM-DD")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" || *target == "" {
			return fmt.Errorf("missing required flags: name, target")
		}

		value, err := decimal.NewFromString(*target)
		if err != nil {
			return fmt.Errorf("invalid target %q: %w", *target, err)
		}

		req := dto.GoalCreateRequest{
			Name:         *name,
			TargetAmount: value,
			Priority:     models.GoalPriority(*priority),
		}
		if *deadline != "" {
			when, err := models.ParseDate(*deadline)
			if err != nil {
				return err
			}
			req.Deadline = &when
		}

		goal, err := a.api.CreateGoal(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Created goal %s\n", goal.ID)
		return nil
	case "progress":
		fs := a.flagSet("goals progress")
		id := fs.String("id", "", "Goal id")
		amount := fs.String("amount", "", "Amount to add")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" || *amount == "" {
			return fmt.Errorf("missing required flags: id, amount")
		}

		value, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", *amount, err)
		}

		goal, err := a.api.AddGoalProgress(ctx, *id, value)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Goal %s now at %s of %s\n",
			goal.Name, goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2))
		return nil
	case "complete":
		fs := a.flagSet("goals complete")
		id := fs.String("id", "", "Goal id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing required flags: id")
		}

		goal, err := a.api.CompleteGoal(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Goal %s marked complete\n", goal.Name)
		return nil
	case "rm":
		fs := a.flagSet("goals rm")
		id := fs.String("id", "", "Goal id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing required flags: id")
		}
		if err := a.api.DeleteGoal(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Deleted goal %s\n", *id)
		return nil
	default:
		return fmt.Errorf("unknown goals subcommand %q", sub)
	}
}

func (a *app) recurring(ctx context.Context, args []string) error {
	fs := a.flagSet("recurring")
	active := fs.String("active", "", "Filter by activity (true or false)")
	skip := fs.Int("skip", 0, "Records to skip")
	limit := fs.Int("limit", 100, "Maximum records")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := models.RecurringTransactionFilters{Skip: *skip, Limit: *limit}
	if *active != "" {
		flagValue := *active == "true"
		filters.IsActive = &flagValue
	}

	recurring, err := a.api.ListRecurringTransactions(ctx, filters)
	if err != nil {
		return err
	}
	for _, r := range recurring {
		state := "inactive"
		if r.IsActive {
			state = "active"
		}
		fmt.Fprintf(a.stdout, "%-36s %-9s %-8s %10s  %s\n",
			r.ID, r.Frequency, state, r.Amount.StringFixed(2), r.Description)
	}
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	fetcher := fetch.NewFetcher(func(ctx context.Context) (*models.DashboardData, error) {
		return a.api.Dashboard(ctx)
	})

	data, err := fetcher.Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Income:  %12s (%d entries)\n", data.TotalIncome.StringFixed(2), data.IncomeCount)
	fmt.Fprintf(a.stdout, "Expense: %12s (%d entries)\n", data.TotalExpense.StringFixed(2), data.ExpenseCount)
	fmt.Fprintf(a.stdout, "Balance: %12s\n", data.Balance.StringFixed(2))
	return nil
}

func (a *app) summary(ctx context.Context, args []string) error {
	fs := a.flagSet("summary")
	start := fs.String("start", "", "Start date as YYYY-MM-DD")
	end := fs.String("end", "", "End date as YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var rng models.SummaryRange
	if *start != "" {
		when, err := models.ParseDate(*start)
		if err != nil {
			return err
		}
		rng.StartDate = &when
	}
	if *end != "" {
		when, err := models.ParseDate(*end)
		if err != nil {
			return err
		}
		rng.EndDate = &when
	}

	summary, err := a.api.FinancialSummary(ctx, rng)
	if err != nil {
		return err
	}
	return a.printJSON(summary)
}

func (a *app) trends(ctx context.Context, args []string) error {
	fs := a.flagSet("trends")
	months := fs.Int("months", 6, "Number of trailing months")
	if err := fs.Parse(args); err != nil {
		return err
	}

	trends, err := a.api.MonthlyTrends(ctx, *months)
	if err != nil {
		return err
	}

	for i := range trends.Balance {
		fmt.Fprintf(a.stdout, "%s  income %12s  expense %12s  balance %12s\n",
			trends.Balance[i].Month,
			trendValue(trends.Income, i),
			trendValue(trends.Expense, i),
			trends.Balance[i].Value.StringFixed(2))
	}
	return nil
}

func trendValue(series []models.TrendPoint, i int) string {
	if i >= len(series) {
		return "-"
	}
	return series[i].Value.StringFixed(2)
}

func (a *app) patterns(ctx context.Context) error {
	patterns, err := a.api.SpendingPatterns(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Average daily spending over %d days: %s\n",
		patterns.PeriodDays, patterns.AverageDailySpending.StringFixed(2))
	for i, cat := range patterns.TopExpenseCategories {
		fmt.Fprintf(a.stdout, "%d. %-24s %12s\n", i+1, cat.Category, cat.Total.StringFixed(2))
	}
	return nil
}
