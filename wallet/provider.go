// Package wallet reads account identifiers from an external wallet
// No signing, no balances, no funds; accounts are only displayed
package wallet

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrProviderUnavailable means no wallet could be reached
	ErrProviderUnavailable = errors.New("wallet: provider unavailable")
	// ErrUserDenied means the wallet refused the connection request
	ErrUserDenied = errors.New("wallet: user denied account access")
)

// CodeUserRejected is the EIP-1193 error code for a rejected request
const CodeUserRejected = 4001

// AccountProvider is the external wallet
type AccountProvider interface {
	// RequestAccounts asks the wallet to connect, prompting the user
	RequestAccounts(ctx context.Context) ([]string, error)
	// ConnectedAccounts lists already authorized accounts without prompting
	ConnectedAccounts(ctx context.Context) ([]string, error)
}

// ShortAddress abbreviates a hex address to 0x1234…abcd for display
// Strings too short to abbreviate are returned unchanged
func ShortAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// ShortAddresses applies ShortAddress to every account
func ShortAddresses(accounts []string) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = ShortAddress(a)
	}
	return out
}

// Describe returns a user-facing message for a provider error
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUserDenied):
		return "Connection rejected in wallet"
	case errors.Is(err, ErrProviderUnavailable):
		return "No wallet found"
	case errors.Is(err, context.DeadlineExceeded):
		return "Wallet did not answer in time"
	default:
		return "Wallet error: " + err.Error()
	}
}
