package ledger

import (
	// Local Packages
	models "debt-ledger/models"
)

// Category tags that mark a transaction as debt-related. Interest tags fold
// as settlements: they move money against an existing debt without creating
// principal.
const (
	TagLoan            = "IS_LOAN"
	TagRepayment       = "IS_REPAYMENT"
	TagPayInterest     = "IS_PAY_INTEREST"
	TagDebt            = "IS_DEBT"
	TagDebtCollection  = "IS_DEBT_COLLECTION"
	TagCollectInterest = "IS_COLLECT_INTEREST"
)

// Classify maps a category tag to its debt direction and role. It is total
// over all strings: ok is false for any tag outside the recognized set, and
// such transactions are not debts.
func Classify(categoryTag string) (models.Direction, models.Role, bool) {
	switch categoryTag {
	case TagLoan:
		return models.Payable, models.RoleOriginal, true
	case TagRepayment, TagPayInterest:
		return models.Payable, models.RoleSettlement, true
	case TagDebt:
		return models.Receivable, models.RoleOriginal, true
	case TagDebtCollection, TagCollectInterest:
		return models.Receivable, models.RoleSettlement, true
	}
	return "", "", false
}

// IsDebtTag reports whether categoryTag belongs to the recognized debt set.
func IsDebtTag(categoryTag string) bool {
	_, _, ok := Classify(categoryTag)
	return ok
}
