package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/samber/lo"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// Gateway is the typed, retryable facade over the three system contracts.
//
// Reads retry connectivity failures up to the configured bound with
// exponential backoff. Writes are never retried here: none of the mutating
// calls are idempotent, so a connectivity failure during submission is
// surfaced as-is and deduplication is left to the caller.
type Gateway struct {
	cfg *config.RuntimeConfig
	log *slog.Logger

	client     *ethclient.Client
	registry   *bind.BoundContract
	controller *bind.BoundContract
	manager    *bind.BoundContract

	key        *ecdsa.PrivateKey
	signerAddr common.Address

	chainMu sync.Mutex
	chainID *big.Int
}

// NewGateway connects to the configured network and binds the system
// contracts. The RPC endpoint is only dialed, not verified, until the first
// call.
func NewGateway(cfg *config.RuntimeConfig, log *slog.Logger) (*Gateway, error) {
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC endpoint configured for network")
	}

	client, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	g := &Gateway{
		cfg:        cfg,
		log:        log.With("component", "ledger"),
		client:     client,
		registry:   bind.NewBoundContract(cfg.Network.Contracts.DepartmentRegistry, registryABI, client, client, client),
		controller: bind.NewBoundContract(cfg.Network.Contracts.BudgetController, controllerABI, client, client, client),
		manager:    bind.NewBoundContract(cfg.Network.Contracts.ProposalManager, managerABI, client, client, client),
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		g.key = key
		g.signerAddr = crypto.PubkeyToAddress(key.PublicKey)
	}

	return g, nil
}

// Signer returns the address mutating calls are submitted from.
func (g *Gateway) Signer() (common.Address, error) {
	if g.key == nil {
		return common.Address{}, domain.ErrNoSigner
	}
	return g.signerAddr, nil
}

// ListDepartments returns every registered department with current figures.
func (g *Gateway) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	var out []interface{}
	if err := g.call(ctx, g.registry, "getAllDepartments", &out); err != nil {
		return nil, err
	}
	addresses := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)

	departments := make([]*models.Department, 0, len(addresses))
	for _, addr := range addresses {
		dept, err := g.GetDepartment(ctx, addr)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, nil
}

// GetDepartment fetches one department's on-ledger record.
func (g *Gateway) GetDepartment(ctx context.Context, address common.Address) (*models.Department, error) {
	var out []interface{}
	if err := g.call(ctx, g.registry, "getDepartmentDetails", &out, address); err != nil {
		return nil, err
	}

	raw := registryDepartment{
		Name:           *abi.ConvertType(out[0], new(string)).(*string),
		DepartmentHead: *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
		Budget:         *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		Spent:          *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		LogoUri:        *abi.ConvertType(out[4], new(string)).(*string),
		Efficiency:     *abi.ConvertType(out[5], new(*big.Int)).(**big.Int),
		ActiveProjects: *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
		IsActive:       *abi.ConvertType(out[7], new(bool)).(*bool),
	}

	// The registry returns a zero record for unregistered addresses.
	if raw.Name == "" && raw.DepartmentHead == (common.Address{}) {
		return nil, fmt.Errorf("department %s: %w", address.Hex(), domain.ErrNotFound)
	}

	return &models.Department{
		Address:        address,
		Name:           raw.Name,
		Head:           raw.DepartmentHead,
		LogoURI:        raw.LogoUri,
		Budget:         raw.Budget,
		Spent:          raw.Spent,
		Efficiency:     raw.Efficiency.Uint64(),
		ActiveProjects: raw.ActiveProjects.Uint64(),
		IsActive:       raw.IsActive,
	}, nil
}

// ListActiveProposals returns all proposals the DAO currently reports as
// active, with raw tallies and timestamps.
func (g *Gateway) ListActiveProposals(ctx context.Context) ([]*models.Proposal, error) {
	var out []interface{}
	if err := g.call(ctx, g.manager, "getActiveProposals", &out); err != nil {
		return nil, err
	}
	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)

	proposals := make([]*models.Proposal, 0, len(ids))
	for _, id := range ids {
		proposal, err := g.GetProposal(ctx, id.Uint64())
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, nil
}

// GetProposal fetches one proposal's raw fields.
func (g *Gateway) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	var out []interface{}
	err := g.call(ctx, g.manager, "getProposal", &out, new(big.Int).SetUint64(id))
	if err != nil {
		// The manager reverts on unknown ids.
		if errors.Is(err, domain.ErrRejected) {
			return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new(managerProposal)).(*managerProposal)
	if raw.StartTime.Sign() == 0 {
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrNotFound)
	}

	return &models.Proposal{
		ID:             raw.Id.Uint64(),
		Department:     raw.Department,
		ProposedBudget: raw.ProposedBudget,
		VotesFor:       raw.VotesFor,
		VotesAgainst:   raw.VotesAgainst,
		StartTime:      time.Unix(raw.StartTime.Int64(), 0),
		EndTime:        time.Unix(raw.EndTime.Int64(), 0),
		Executed:       raw.Executed,
	}, nil
}

// HasVoted checks vote membership for the (proposal, voter) pair.
func (g *Gateway) HasVoted(ctx context.Context, id uint64, voter common.Address) (bool, error) {
	var out []interface{}
	if err := g.call(ctx, g.manager, "hasVoted", &out, new(big.Int).SetUint64(id), voter); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// IsSuperAdmin checks registry admin membership for an account.
func (g *Gateway) IsSuperAdmin(ctx context.Context, account common.Address) (bool, error) {
	var out []interface{}
	if err := g.call(ctx, g.registry, "isSuperAdmin", &out, account); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// ListTransactions returns a department's transactions, optionally filtered
// to pending ones.
func (g *Gateway) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	var out []interface{}
	if err := g.call(ctx, g.controller, "getTransactionsByDepartment", &out, filter.Department); err != nil {
		return nil, err
	}
	raws := *abi.ConvertType(out[0], new([]controllerTransaction)).(*[]controllerTransaction)

	transactions := lo.Map(raws, func(raw controllerTransaction, _ int) *models.Transaction {
		return toTransaction(raw)
	})
	if filter.PendingOnly {
		transactions = lo.Filter(transactions, func(tx *models.Transaction, _ int) bool {
			return tx.Status == models.TransactionStatusPending
		})
	}
	return transactions, nil
}

// GetTransaction fetches one transaction record.
func (g *Gateway) GetTransaction(ctx context.Context, id uint64) (*models.Transaction, error) {
	var out []interface{}
	err := g.call(ctx, g.controller, "getTransaction", &out, new(big.Int).SetUint64(id))
	if err != nil {
		if errors.Is(err, domain.ErrRejected) {
			return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new(controllerTransaction)).(*controllerTransaction)
	if raw.CreatedAt.Sign() == 0 {
		return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrNotFound)
	}
	return toTransaction(raw), nil
}

// RegisterDepartment submits a registration call and waits for confirmation.
func (g *Gateway) RegisterDepartment(ctx context.Context, call usecase.RegisterDepartmentCall) (*models.Receipt, error) {
	return g.transact(ctx, g.registry, "registerDepartment",
		call.Address, call.Name, call.InitialBudget, call.Head, call.LogoURI)
}

// UpdateBudget submits a budget mutation for one department.
func (g *Gateway) UpdateBudget(ctx context.Context, department common.Address, newBudget *big.Int) (*models.Receipt, error) {
	return g.transact(ctx, g.registry, "updateBudget", department, newBudget)
}

// ProposeBudget submits a new budget-change proposal.
func (g *Gateway) ProposeBudget(ctx context.Context, department common.Address, newBudget *big.Int) (*models.Receipt, error) {
	return g.transact(ctx, g.manager, "createProposal", department, newBudget)
}

// CastVote submits a vote. The ledger rejects duplicates on its own; the
// caller-side guard lives in the use case.
func (g *Gateway) CastVote(ctx context.Context, proposalID uint64, support bool) (*models.Receipt, error) {
	return g.transact(ctx, g.manager, "vote", new(big.Int).SetUint64(proposalID), support)
}

// ExecuteProposal submits an execution call for a passed proposal.
func (g *Gateway) ExecuteProposal(ctx context.Context, proposalID uint64) (*models.Receipt, error) {
	return g.transact(ctx, g.manager, "executeProposal", new(big.Int).SetUint64(proposalID))
}

// CreateTransaction records a new department transaction.
func (g *Gateway) CreateTransaction(ctx context.Context, department common.Address, txType models.TransactionType, amount *big.Int, description string) (*models.Receipt, error) {
	return g.transact(ctx, g.controller, "createTransaction",
		department, uint8(txType), amount, description)
}

// ProcessTransaction moves a pending transaction to processed.
func (g *Gateway) ProcessTransaction(ctx context.Context, id uint64, note string) (*models.Receipt, error) {
	return g.transact(ctx, g.controller, "processTransaction", new(big.Int).SetUint64(id), note)
}

// AddSuperAdmin grants registry admin rights to an account. Only an
// existing super admin may call it; the registry rejects everyone else.
func (g *Gateway) AddSuperAdmin(ctx context.Context, account common.Address) (*models.Receipt, error) {
	return g.transact(ctx, g.registry, "addSuperAdmin", account)
}

// call performs a read with per-attempt timeout and connectivity retries.
func (g *Gateway) call(ctx context.Context, contract *bind.BoundContract, method string, results *[]interface{}, params ...interface{}) error {
	attempts := g.cfg.LedgerMaxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
			g.log.Debug("retrying ledger call", "method", method, "attempt", attempt, "backoff", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrConnectivity, ctx.Err())
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, g.cfg.LedgerCallTimeout)
		*results = (*results)[:0]
		err := contract.Call(&bind.CallOpts{Context: callCtx}, results, method, params...)
		cancel()

		if err == nil {
			return nil
		}
		lastErr = classify(err)
		if !errors.Is(lastErr, domain.ErrConnectivity) {
			return lastErr
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", method, attempts, lastErr)
}

// transact submits a mutating call and blocks until the ledger confirms
// inclusion. A mined-but-reverted transaction surfaces as ErrRejected.
func (g *Gateway) transact(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (*models.Receipt, error) {
	if g.key == nil {
		return nil, domain.ErrNoSigner
	}

	chainID, err := g.ensureChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(g.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}

	submitCtx, cancel := context.WithTimeout(ctx, g.cfg.LedgerCallTimeout)
	opts.Context = submitCtx
	tx, err := contract.Transact(opts, method, params...)
	cancel()
	if err != nil {
		return nil, classify(err)
	}

	g.log.Debug("submitted transaction", "method", method, "tx", tx.Hash().Hex())

	// Inclusion can outlast a single call timeout; give confirmation its
	// own, larger budget.
	waitCtx, cancel := context.WithTimeout(ctx, 4*g.cfg.LedgerCallTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, g.client, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: waiting for confirmation of %s: %v", domain.ErrConnectivity, tx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted: %w", tx.Hash().Hex(), domain.ErrRejected)
	}

	return &models.Receipt{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Success:     true,
		ConfirmedAt: time.Now(),
	}, nil
}

// ensureChainID fetches and pins the chain id on first use, verifying it
// against the configured network. Failed lookups are not cached so a
// transient outage does not poison later calls.
func (g *Gateway) ensureChainID(ctx context.Context) (*big.Int, error) {
	g.chainMu.Lock()
	defer g.chainMu.Unlock()

	if g.chainID != nil {
		return g.chainID, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.LedgerCallTimeout)
	defer cancel()

	chainID, err := g.client.ChainID(callCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get chain ID: %v", domain.ErrConnectivity, err)
	}
	if g.cfg.Network.ChainID != 0 && chainID.Uint64() != g.cfg.Network.ChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", g.cfg.Network.ChainID, chainID.Uint64())
	}
	g.chainID = chainID
	return g.chainID, nil
}

func toTransaction(raw controllerTransaction) *models.Transaction {
	status := models.TransactionStatusPending
	if raw.Status == 1 {
		status = models.TransactionStatusProcessed
	}
	return &models.Transaction{
		ID:          raw.Id.Uint64(),
		Department:  raw.Department,
		Type:        models.TransactionType(raw.TxType),
		Amount:      raw.Amount,
		Description: raw.Description,
		Status:      status,
		Note:        raw.Note,
		CreatedAt:   time.Unix(raw.CreatedAt.Int64(), 0),
	}
}

// Interface assertions
var (
	_ usecase.DepartmentReader  = (*Gateway)(nil)
	_ usecase.AdminReader       = (*Gateway)(nil)
	_ usecase.ProposalReader    = (*Gateway)(nil)
	_ usecase.TransactionReader = (*Gateway)(nil)
	_ usecase.LedgerWriter      = (*Gateway)(nil)
)
