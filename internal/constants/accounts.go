package constants

const (
	// Account types
	TypeChecking   = "checking"
	TypeSavings    = "savings"
	TypeCreditCard = "creditcard"

	// Account status
	StatusActive = "active"
	StatusClosed = "closed"
)

const (
	MinSignupAge = 18
	MaxNameLen   = 255
	MinPwLen     = 8
	CentsPerUnit = 100
)

// BasicAccountTypes is the set opened for every new customer at signup.
var BasicAccountTypes = []string{TypeChecking, TypeSavings, TypeCreditCard}
