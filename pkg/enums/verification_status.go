package enums

// VerificationStatus reflects where a store sits in the onboarding review
// queue. Only verified stores count toward active-store metrics.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (v VerificationStatus) IsValid() bool {
	switch v {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}
