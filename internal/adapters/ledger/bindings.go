package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Hand-maintained ABI fragments for the three system contracts. Only the
// surface this tool calls is declared; the deployed contracts carry more.

const departmentRegistryABI = `[
  {"type":"function","name":"registerDepartment","stateMutability":"nonpayable","inputs":[{"name":"departmentAddress","type":"address"},{"name":"name","type":"string"},{"name":"initialBudget","type":"uint256"},{"name":"departmentHead","type":"address"},{"name":"logoUri","type":"string"}],"outputs":[]},
  {"type":"function","name":"updateBudget","stateMutability":"nonpayable","inputs":[{"name":"departmentAddress","type":"address"},{"name":"newBudget","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"getDepartmentDetails","stateMutability":"view","inputs":[{"name":"departmentAddress","type":"address"}],"outputs":[{"name":"name","type":"string"},{"name":"departmentHead","type":"address"},{"name":"budget","type":"uint256"},{"name":"spent","type":"uint256"},{"name":"logoUri","type":"string"},{"name":"efficiency","type":"uint256"},{"name":"activeProjects","type":"uint256"},{"name":"isActive","type":"bool"}]},
  {"type":"function","name":"getAllDepartments","stateMutability":"view","inputs":[],"outputs":[{"name":"departments","type":"address[]"}]},
  {"type":"function","name":"isSuperAdmin","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"addSuperAdmin","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]}
]`

const budgetControllerABI = `[
  {"type":"function","name":"createTransaction","stateMutability":"nonpayable","inputs":[{"name":"department","type":"address"},{"name":"txType","type":"uint8"},{"name":"amount","type":"uint256"},{"name":"description","type":"string"}],"outputs":[{"name":"transactionId","type":"uint256"}]},
  {"type":"function","name":"processTransaction","stateMutability":"nonpayable","inputs":[{"name":"transactionId","type":"uint256"},{"name":"note","type":"string"}],"outputs":[]},
  {"type":"function","name":"getTransaction","stateMutability":"view","inputs":[{"name":"transactionId","type":"uint256"}],"outputs":[{"name":"txn","type":"tuple","components":[{"name":"id","type":"uint256"},{"name":"department","type":"address"},{"name":"txType","type":"uint8"},{"name":"amount","type":"uint256"},{"name":"description","type":"string"},{"name":"status","type":"uint8"},{"name":"note","type":"string"},{"name":"createdAt","type":"uint256"}]}]},
  {"type":"function","name":"getTransactionsByDepartment","stateMutability":"view","inputs":[{"name":"department","type":"address"}],"outputs":[{"name":"txns","type":"tuple[]","components":[{"name":"id","type":"uint256"},{"name":"department","type":"address"},{"name":"txType","type":"uint8"},{"name":"amount","type":"uint256"},{"name":"description","type":"string"},{"name":"status","type":"uint8"},{"name":"note","type":"string"},{"name":"createdAt","type":"uint256"}]}]}
]`

const proposalManagerABI = `[
  {"type":"function","name":"createProposal","stateMutability":"nonpayable","inputs":[{"name":"department","type":"address"},{"name":"newBudget","type":"uint256"}],"outputs":[{"name":"proposalId","type":"uint256"}]},
  {"type":"function","name":"vote","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"bool"}],"outputs":[]},
  {"type":"function","name":"executeProposal","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"hasVoted","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256"},{"name":"voter","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"getActiveProposals","stateMutability":"view","inputs":[],"outputs":[{"name":"proposalIds","type":"uint256[]"}]},
  {"type":"function","name":"getProposal","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[{"name":"prop","type":"tuple","components":[{"name":"id","type":"uint256"},{"name":"department","type":"address"},{"name":"proposedBudget","type":"uint256"},{"name":"votesFor","type":"uint256"},{"name":"votesAgainst","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"executed","type":"bool"}]}]}
]`

// registryDepartment mirrors the getDepartmentDetails return values.
type registryDepartment struct {
	Name           string
	DepartmentHead common.Address
	Budget         *big.Int
	Spent          *big.Int
	LogoUri        string
	Efficiency     *big.Int
	ActiveProjects *big.Int
	IsActive       bool
}

// controllerTransaction mirrors the BudgetController transaction tuple.
type controllerTransaction struct {
	Id          *big.Int
	Department  common.Address
	TxType      uint8
	Amount      *big.Int
	Description string
	Status      uint8
	Note        string
	CreatedAt   *big.Int
}

// managerProposal mirrors the ProposalManager proposal tuple.
type managerProposal struct {
	Id             *big.Int
	Department     common.Address
	ProposedBudget *big.Int
	VotesFor       *big.Int
	VotesAgainst   *big.Int
	StartTime      *big.Int
	EndTime        *big.Int
	Executed       bool
}

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
	}
	return parsed
}

var (
	registryABI   = mustParseABI("DepartmentRegistry", departmentRegistryABI)
	controllerABI = mustParseABI("BudgetController", budgetControllerABI)
	managerABI    = mustParseABI("ProposalManager", proposalManagerABI)
)
