package cli

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
)

// parseAmount converts a decimal token amount ("1.5") to the smallest
// native unit. Parsing failures are reported as InvalidAmountError so they
// read the same as the use-case validations.
func parseAmount(s string) (*big.Int, error) {
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return nil, &domain.InvalidAmountError{Amount: s, Reason: "not a number"}
	}

	wei, _ := new(big.Float).Mul(f, big.NewFloat(1e18)).Int(nil)
	return wei, nil
}

// parseID parses a numeric proposal or transaction id argument.
func parseID(arg, what string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}
