package betting

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestAccountsTotal(t *testing.T) {
	acc := NewAccounts()
	acc.Import([]Balance{
		{Account: 1, Asset: testAsset, Amount: 40},
		{Account: 2, Asset: testAsset, Amount: 2},
		{Account: 1, Asset: testAsset + 1, Amount: 1000},
	})
	if got, err := acc.Total(testAsset); err != nil || got != 42 {
		t.Fatalf("Total = %d, %v; want 42", got, err)
	}
}

func TestAccountsTotalOverflow(t *testing.T) {
	acc := NewAccounts()
	acc.Import([]Balance{
		{Account: 1, Asset: testAsset, Amount: math.MaxInt64},
		{Account: 2, Asset: testAsset, Amount: 1},
	})
	got, err := acc.Total(testAsset)
	if !errors.IsAssertionFailure(err) {
		t.Fatalf("Total = %d, %v; want assertion failure", got, err)
	}
}
