// README: Apology mapping tests.
package fallback

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestApologyForOverloaded(t *testing.T) {
	err := &googleapi.Error{Code: 503, Message: "model is overloaded"}
	if got := ApologyFor(err); got != ApologyOverloaded {
		t.Fatalf("503 must map to the overloaded apology, got %q", got)
	}
	wrapped := fmt.Errorf("gemini: %w", err)
	if got := ApologyFor(wrapped); got != ApologyOverloaded {
		t.Fatalf("wrapped 503 must still map to the overloaded apology, got %q", got)
	}
}

func TestApologyForOtherErrors(t *testing.T) {
	cases := []error{
		&googleapi.Error{Code: 500},
		&googleapi.Error{Code: 429},
		errors.New("dial tcp: connection refused"),
	}
	for _, err := range cases {
		if got := ApologyFor(err); got != ApologyGeneric {
			t.Fatalf("%v must map to the generic apology, got %q", err, got)
		}
	}
}
