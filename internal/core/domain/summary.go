package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategorySummary aggregates the expenses of one category.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// ExpenseTotal is the sum over every stored expense.
type ExpenseTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// SortCategorySummaries orders by total descending, then category ascending
// so equal totals come back in the same order on every call.
func SortCategorySummaries(s []CategorySummary) {
	sort.SliceStable(s, func(i, j int) bool {
		if c := s[i].Total.Cmp(s[j].Total); c != 0 {
			return c > 0
		}
		return s[i].Category < s[j].Category
	})
}

// SummarizeByCategory groups expenses by category and sorts the result.
func SummarizeByCategory(expenses []Expense) []CategorySummary {
	index := make(map[string]int)
	out := make([]CategorySummary, 0)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategorySummary{Category: e.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(e.Amount)
		out[i].Count++
	}
	SortCategorySummaries(out)
	return out
}

// TotalOf sums every expense.
func TotalOf(expenses []Expense) ExpenseTotal {
	t := ExpenseTotal{Total: decimal.Zero}
	for _, e := range expenses {
		t.Total = t.Total.Add(e.Amount)
		t.Count++
	}
	return t
}
