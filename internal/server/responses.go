package server

import (
	"time"

	"github.com/evenly-app/evenly/internal/calculator"
	"github.com/evenly-app/evenly/internal/models"
	"github.com/evenly-app/evenly/internal/service"
)

// Wire representations. Currency crosses the boundary as two-digit
// decimals; internally everything is cents.

type userJSON struct {
	ID   string `json:"id"`
	Name string `json:"userName"`
}

type splitJSON struct {
	ID         string  `json:"id"`
	ExpenseID  string  `json:"expenseId"`
	UserID     string  `json:"userId"`
	OwedAmount float64 `json:"owedAmount"`
}

type expenseJSON struct {
	ID            string      `json:"id"`
	Description   string      `json:"description"`
	TotalAmount   float64     `json:"totalAmount"`
	PayerID       string      `json:"payerId"`
	DateOfExpense string      `json:"dateOfExpense"`
	Splits        []splitJSON `json:"splits"`
}

type paymentJSON struct {
	ID            string  `json:"id"`
	FromUserID    string  `json:"fromUserId"`
	ToUserID      string  `json:"toUserId"`
	Amount        float64 `json:"amount"`
	DateOfPayment string  `json:"dateOfPayment"`
}

type balanceJSON struct {
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	Balance      float64 `json:"balance"`
	BalanceCents int64   `json:"balanceCents"`
}

type transferJSON struct {
	From     string  `json:"from"`
	FromName string  `json:"fromName"`
	To       string  `json:"to"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

type debtItemJSON struct {
	ExpenseID string  `json:"expenseId"`
	Date      string  `json:"date"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Remaining float64 `json:"remaining"`
}

type overviewJSON struct {
	Balances                 []balanceJSON             `json:"balances"`
	SimplifiedDebts          []transferJSON            `json:"simplifiedDebts"`
	PerExpenseDebtsByExpense map[string][]debtItemJSON `json:"perExpenseDebtsByExpense"`
	PerExpenseDebtsFlat      []debtItemJSON            `json:"perExpenseDebtsFlat"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Name: u.Name}
}

func toExpenseJSON(e *models.Expense) expenseJSON {
	out := expenseJSON{
		ID:            e.ID,
		Description:   e.Description,
		TotalAmount:   calculator.Decimal(e.TotalCents),
		PayerID:       e.PayerID,
		DateOfExpense: e.Date.UTC().Format(time.RFC3339),
		Splits:        make([]splitJSON, len(e.Splits)),
	}
	for i, s := range e.Splits {
		out.Splits[i] = splitJSON{
			ID:         s.ID,
			ExpenseID:  s.ExpenseID,
			UserID:     s.UserID,
			OwedAmount: calculator.Decimal(s.OwedCents),
		}
	}
	return out
}

func toPaymentJSON(p *models.Payment) paymentJSON {
	return paymentJSON{
		ID:            p.ID,
		FromUserID:    p.FromUserID,
		ToUserID:      p.ToUserID,
		Amount:        calculator.Decimal(p.AmountCents),
		DateOfPayment: p.Date.UTC().Format(time.RFC3339),
	}
}

func toDebtItemJSON(item calculator.DebtItem) debtItemJSON {
	return debtItemJSON{
		ExpenseID: item.ExpenseID,
		Date:      item.Date,
		From:      item.FromUserID,
		To:        item.ToUserID,
		Remaining: item.Remaining,
	}
}

func toOverviewJSON(o *service.Overview) overviewJSON {
	out := overviewJSON{
		Balances:                 make([]balanceJSON, len(o.Balances)),
		SimplifiedDebts:          make([]transferJSON, len(o.SimplifiedDebts)),
		PerExpenseDebtsByExpense: make(map[string][]debtItemJSON, len(o.PerExpenseDebtsByExpense)),
		PerExpenseDebtsFlat:      make([]debtItemJSON, len(o.PerExpenseDebtsFlat)),
	}
	for i, b := range o.Balances {
		out.Balances[i] = balanceJSON{
			UserID:       b.UserID,
			UserName:     b.UserName,
			Balance:      b.Balance,
			BalanceCents: b.BalanceCents,
		}
	}
	for i, tr := range o.SimplifiedDebts {
		out.SimplifiedDebts[i] = transferJSON{
			From:     tr.FromUserID,
			FromName: tr.FromName,
			To:       tr.ToUserID,
			ToName:   tr.ToName,
			Amount:   tr.Amount,
		}
	}
	for expenseID, items := range o.PerExpenseDebtsByExpense {
		converted := make([]debtItemJSON, len(items))
		for i, item := range items {
			converted[i] = toDebtItemJSON(item)
		}
		out.PerExpenseDebtsByExpense[expenseID] = converted
	}
	for i, item := range o.PerExpenseDebtsFlat {
		out.PerExpenseDebtsFlat[i] = toDebtItemJSON(item)
	}
	return out
}
