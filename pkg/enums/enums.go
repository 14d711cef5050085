package enums

// OfferKind distinguishes the two bundle shapes the storefront sells.
type OfferKind string

const (
	OfferKindBogo  OfferKind = "bogo"
	OfferKindCombo OfferKind = "combo"
)

func (k OfferKind) IsValid() bool {
	switch k {
	case OfferKindBogo, OfferKindCombo:
		return true
	}
	return false
}

// FranchiseStatus tracks the lifecycle of a franchise application.
type FranchiseStatus string

const (
	FranchiseStatusNew       FranchiseStatus = "new"
	FranchiseStatusContacted FranchiseStatus = "contacted"
	FranchiseStatusApproved  FranchiseStatus = "approved"
	FranchiseStatusRejected  FranchiseStatus = "rejected"
)

func (s FranchiseStatus) IsValid() bool {
	switch s {
	case FranchiseStatusNew, FranchiseStatusContacted, FranchiseStatusApproved, FranchiseStatusRejected:
		return true
	}
	return false
}
