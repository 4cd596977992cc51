package betting

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Ledger is the balance store the engine debits and credits.
// Adjust must panic via an assertion if the balance would go negative.
type Ledger interface {
	Balance(account AccountID, asset AssetID) int64
	Adjust(account AccountID, asset AssetID, delta int64)
}

type balanceKey struct {
	account AccountID
	asset   AssetID
}

// Balance is one account's holding of one asset.
type Balance struct {
	Account AccountID
	Asset   AssetID
	Amount  int64
}

// Accounts is an in-memory Ledger.
type Accounts struct {
	balances map[balanceKey]int64
}

func NewAccounts() *Accounts {
	return &Accounts{balances: make(map[balanceKey]int64)}
}

func (a *Accounts) Balance(account AccountID, asset AssetID) int64 {
	return a.balances[balanceKey{account, asset}]
}

func (a *Accounts) Adjust(account AccountID, asset AssetID, delta int64) {
	k := balanceKey{account, asset}
	next := addInt64(a.balances[k], delta)
	assert(next >= 0, "balance of account %d asset %d would become %d", account, asset, next)
	if next == 0 {
		delete(a.balances, k)
		return
	}
	a.balances[k] = next
}

// Total sums every balance of asset. A sum that does not fit in an int64
// is an assertion failure.
func (a *Accounts) Total(asset AssetID) (sum int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !errors.IsAssertionFailure(perr) {
				panic(r)
			}
			sum, err = 0, errors.Wrapf(perr, "total of asset %d", asset)
		}
	}()
	for k, v := range a.balances {
		if k.asset == asset {
			sum = addInt64(sum, v)
		}
	}
	return sum, nil
}

// Export lists balances ordered by account, then asset.
func (a *Accounts) Export() []Balance {
	out := make([]Balance, 0, len(a.balances))
	for k, v := range a.balances {
		out = append(out, Balance{Account: k.account, Asset: k.asset, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Account != out[j].Account {
			return out[i].Account < out[j].Account
		}
		return out[i].Asset < out[j].Asset
	})
	return out
}

// Import replaces all balances.
func (a *Accounts) Import(balances []Balance) {
	a.balances = make(map[balanceKey]int64, len(balances))
	for _, b := range balances {
		if b.Amount != 0 {
			a.balances[balanceKey{b.Account, b.Asset}] = b.Amount
		}
	}
}
