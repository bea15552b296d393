package ledger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
)

// rejectionMarkers are substrings of node responses that mean the ledger
// received and refused the call. These are never retried.
var rejectionMarkers = []string{
	"execution reverted",
	"revert",
	"invalid opcode",
	"insufficient funds",
	"nonce too low",
	"replacement transaction underpriced",
	"gas required exceeds allowance",
	"intrinsic gas too low",
}

// connectivityMarkers are substrings of transport failures from nodes or
// intermediate proxies.
var connectivityMarkers = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"i/o timeout",
	"tls handshake",
	"eof",
	"502",
	"503",
	"504",
	"too many requests",
}

// classify maps a raw RPC error onto the domain taxonomy. A response from
// the node is a rejection; anything that smells like transport trouble is
// connectivity and therefore retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConnectivity) || errors.Is(err, domain.ErrRejected) || errors.Is(err, domain.ErrNotFound) {
		return err
	}

	msg := strings.ToLower(err.Error())

	for _, marker := range rejectionMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", domain.ErrRejected, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	for _, marker := range connectivityMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
		}
	}

	// The node answered with a structured error we don't recognize; treat
	// it as a rejection rather than retrying a call of unknown effect.
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %v", domain.ErrRejected, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
}
