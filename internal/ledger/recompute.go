package ledger

import (
	"time"

	"github.com/archons/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// prefixSums returns the cumulative net balance after each entry.
// Entries must be in ascending ID order.
func prefixSums(entries []models.Transaction) []decimal.Decimal {
	sums := make([]decimal.Decimal, len(entries))

	net := decimal.Zero
	for i, e := range entries {
		net = net.Add(e.Signed())
		sums[i] = net
	}

	return sums
}

// net returns the sum of the signed amounts of all entries.
func net(entries []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Signed())
	}
	return total
}

// entries loads all transactions of an account in ledger order.
func entries(tx *gorm.DB, accountID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := tx.Where("account_id = ?", accountID).Order("id ASC").Find(&transactions).Error
	return transactions, err
}

// balance returns the current net balance of an account.
func balance(tx *gorm.DB, accountID uint) (decimal.Decimal, error) {
	transactions, err := entries(tx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return net(transactions), nil
}

// sweep recomputes the running totals of all transactions of the account
// with an ID of at least fromID in one ascending pass. Only rows whose
// stored value differs are written. It returns the number of rows written.
func sweep(tx *gorm.DB, accountID, fromID uint) (int, error) {
	start := time.Now()
	defer func() {
		sweepDuration.Observe(time.Since(start).Seconds())
	}()

	transactions, err := entries(tx, accountID)
	if err != nil {
		return 0, err
	}

	written := 0
	for i, total := range prefixSums(transactions) {
		t := transactions[i]
		if t.ID < fromID || t.RunningTotal.Equal(total) {
			continue
		}

		// UpdateColumn skips hooks, the row is not re-validated
		err := tx.Model(&models.Transaction{}).Where("id = ?", t.ID).UpdateColumn("running_total", total).Error
		if err != nil {
			return written, err
		}
		written++
	}

	sweepRewritten.Add(float64(written))
	return written, nil
}
