package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense, serializing the
// distribution for the JSONB column.
func ToModelExpense(d domain.Expense) (models.Expense, error) {
	distributionJSON, err := json.Marshal(d.Distribution)
	if err != nil {
		return models.Expense{}, fmt.Errorf("failed to marshal distribution: %w", err)
	}
	return models.Expense{
		ExpenseID:        d.ExpenseID,
		TripID:           d.TripID,
		Amount:           d.Amount,
		CurrencyCode:     d.CurrencyCode,
		PaidBy:           d.PaidBy,
		Category:         d.Category,
		ExpenseDate:      d.ExpenseDate,
		DistributionJSON: distributionJSON,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainExpense converts a model Expense to a domain Expense.
func ToDomainExpense(m models.Expense) (domain.Expense, error) {
	var distribution domain.Distribution
	if len(m.DistributionJSON) > 0 {
		if err := json.Unmarshal(m.DistributionJSON, &distribution); err != nil {
			return domain.Expense{}, fmt.Errorf("failed to unmarshal distribution for expense %s: %w", m.ExpenseID, err)
		}
	}
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		TripID:       m.TripID,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		PaidBy:       m.PaidBy,
		Category:     m.Category,
		ExpenseDate:  m.ExpenseDate,
		Distribution: distribution,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}, nil
}
