// README: Monthly quota for generative-fallback calls.
package aiusage

import "errors"

// ErrQuotaExhausted is returned when a user has no fallback calls remaining
// for the current month.
var ErrQuotaExhausted = errors.New("fallback quota exhausted")

// DefaultCalls is the number of generative-fallback calls granted per month.
const DefaultCalls = 100
