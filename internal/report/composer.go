// Package report turns the order ledger into aggregate totals and formatted
// weekly/daily documents.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"school-meal-reports/internal/directory"
	"school-meal-reports/internal/dish"
	"school-meal-reports/internal/document"
	"school-meal-reports/internal/ledger"
)

// entriesPerPage bounds roster page length: a page break is forced after
// every 30 user entries within one day.
const entriesPerPage = 30

const (
	noOrdersPlaceholder = "Нет данных по заказам за выбранный день."
	emptyMealLine       = "Нет заказов"
)

// Composer generates report documents from a ledger. It is a one-shot
// transform: no state is carried between calls beyond the injected
// dependencies.
type Composer struct {
	dir    *directory.Directory
	prices PriceTable
	outDir string
	now    func() time.Time
}

// NewComposer returns a composer writing into outDir. A nil price table
// falls back to the built-in demo table.
func NewComposer(dir *directory.Directory, prices PriceTable, outDir string) *Composer {
	if prices == nil {
		prices = DefaultPriceTable()
	}
	return &Composer{
		dir:    dir,
		prices: prices,
		outDir: outDir,
		now:    time.Now,
	}
}

// WeeklyReport writes the week summary document and returns its path:
// per-dish quantities and revenue, then per-day revenue and order counts,
// each table closed by a totals row. Rows follow ledger order; callers
// wanting sorted days must order the ledger source themselves.
func (c *Composer) WeeklyReport(ctx context.Context, l *ledger.Ledger) (string, error) {
	doc := c.composeWeekly(l)
	return c.save(doc, fmt.Sprintf("weekly_report_%s.docx", c.now().Format("2006-01-02")))
}

// DailyReports writes the roster document for the requested days (default:
// all seven weekdays) and returns its path. Each day after the first starts
// on a new page.
func (c *Composer) DailyReports(ctx context.Context, l *ledger.Ledger, days []string) (string, error) {
	if len(days) == 0 {
		days = ledger.Weekdays
	}

	doc := document.New()
	for i, dayName := range days {
		if i > 0 {
			doc.AddPageBreak()
		}
		c.composeDay(ctx, doc, l, dayName)
	}

	scope := "week"
	if len(days) == 1 {
		scope = days[0]
	}
	return c.save(doc, fmt.Sprintf("daily_report_%s_%s.docx", scope, c.now().Format("2006-01-02")))
}

func (c *Composer) save(doc *document.Document, filename string) (string, error) {
	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}
	path := filepath.Join(c.outDir, filename)
	if err := doc.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

func (c *Composer) composeWeekly(l *ledger.Ledger) *document.Document {
	doc := document.New()
	doc.AddHeading("Отчет по заказам за неделю", 0)
	doc.AddParagraph(document.Text("Дата генерации отчета: " + c.now().Format("02.01.2006")))

	totals := WeeklyTotals(l)
	doc.AddHeading("Общее количество заказов по блюдам (за всю неделю)", 1)

	var weekRevenue float64
	rows := make([][]string, 0, totals.Len()+1)
	for _, name := range totals.Names() {
		count := totals.Count(name)
		revenue := float64(count) * c.prices[name]
		weekRevenue += revenue
		rows = append(rows, []string{name, strconv.Itoa(count), formatAmount(revenue)})
	}
	rows = append(rows, []string{"ИТОГО за неделю", strconv.Itoa(totals.Sum()), formatAmount(weekRevenue)})
	doc.AddTable([]string{"Блюдо", "Количество заказов", "Выручка (руб.)"}, rows)

	doc.AddHeading("Выручка по дням недели", 1)
	var weekOrders int
	dayRows := make([][]string, 0, len(l.Days)+1)
	for _, dayName := range l.DayNames() {
		revenue, orders := DailyRevenue(DailyTotals(l, dayName), c.prices)
		weekOrders += orders
		dayRows = append(dayRows, []string{capitalize(dayName), formatAmount(revenue), strconv.Itoa(orders)})
	}
	dayRows = append(dayRows, []string{"ИТОГО", formatAmount(weekRevenue), strconv.Itoa(weekOrders)})
	doc.AddTable([]string{"День недели", "Общая выручка (руб.)", "Количество заказов"}, dayRows)

	return doc
}

func (c *Composer) composeDay(ctx context.Context, doc *document.Document, l *ledger.Ledger, dayName string) {
	doc.AddHeading("Отчет по заказам на "+dayName, 0)
	doc.AddParagraph(document.Text("Дата: " + c.now().Format("02.01.2006")))

	day, ok := l.Day(dayName)
	if !ok || len(day.Users) == 0 {
		doc.AddParagraph(document.Text(noOrdersPlaceholder))
		return
	}

	counts := dish.CategoryCounts(day)
	for i, user := range day.Users {
		if i > 0 && i%entriesPerPage == 0 {
			doc.AddPageBreak()
		}

		name, class := user.Key, ""
		if rec := c.dir.ResolveByRank(ctx, user.Key); rec != nil {
			name, class = rec.Name, rec.Class
		}
		doc.AddParagraph(
			document.Bold(fmt.Sprintf("%s %s - ", name, class)),
			document.Text(mealLine(user, counts)),
		)
	}
}

// mealLine renders one user's orders as a "+"-joined string, normalizing
// dish names against the day's category counts and suffixing multi-serving
// entries with "(count)".
func mealLine(user ledger.UserOrders, counts map[dish.Category]int) string {
	if len(user.Dishes) == 0 {
		return emptyMealLine
	}
	parts := make([]string, 0, len(user.Dishes))
	for _, d := range user.Dishes {
		label := dish.Normalize(d.Name, counts)
		if d.Count > 1 {
			label = fmt.Sprintf("%s(%d)", label, d.Count)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "+")
}

// formatAmount renders a ruble amount without trailing zeros, so integer
// demo prices print as integers.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
