package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense}

// IsValid reports whether t is one of the five enumerated account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents a financial account in an organization's chart of
// accounts. Code is unique within the organization.
type Account struct {
	AccountID      string      `json:"accountID"` // Primary key (UUID)
	OrganizationID string      `json:"organizationID"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	AccountType    AccountType `json:"type"`
	IsActive       bool        `json:"isActive"`
	AuditFields
	SoftDeleteFields
}
