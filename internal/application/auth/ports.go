package auth

// Notifier delivers account emails. Best-effort: implementations must not be
// relied on for correctness and callers never fail an operation on a send error.
type Notifier interface {
	SendVerificationEmail(toAddress, link string) error
}
