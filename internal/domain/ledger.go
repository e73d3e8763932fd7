package domain

import "github.com/shopspring/decimal"

// LedgerBalance sums the signed deltas of every transaction owned by accountID.
func LedgerBalance(accountID string, txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.AccountID == accountID {
			sum = sum.Add(t.SignedDelta())
		}
	}
	return sum
}

func FindAccount(accounts []Account, id string) (Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

func CloneAccounts(src []Account) []Account {
	if src == nil {
		return nil
	}
	dst := make([]Account, len(src))
	copy(dst, src)
	return dst
}

func CloneTransactions(src []Transaction) []Transaction {
	if src == nil {
		return nil
	}
	dst := make([]Transaction, len(src))
	copy(dst, src)
	return dst
}

// UniqueTransactions drops repeated ids. The last copy of an id wins but
// keeps the position of the first one.
func UniqueTransactions(txs []Transaction) []Transaction {
	index := make(map[string]int, len(txs))
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if i, ok := index[t.ID]; ok {
			out[i] = t
			continue
		}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	return out
}
