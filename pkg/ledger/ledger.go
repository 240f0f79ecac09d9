package ledger

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/core/marshalutil"
	"github.com/iotaledger/hive.go/core/syncutils"
)

// Ledger is a fungible balance ledger with point-in-time snapshots.
// Balances, allowances and snapshots are persisted in the backing store,
// every mutation is applied through a single batched write.
type Ledger struct {
	// lock used to secure the state of the Ledger.
	syncutils.RWMutex

	store kvstore.KVStore
}

// NewLedger creates a new Ledger on the given store.
func NewLedger(store kvstore.KVStore) *Ledger {
	return &Ledger{
		store: store,
	}
}

func statusKey(key byte) []byte {
	return []byte{LedgerStoreKeyPrefixStatus, key}
}

func balanceKey(address Address) []byte {
	m := marshalutil.New(33)
	m.WriteByte(LedgerStoreKeyPrefixBalances)
	m.WriteBytes(address[:])

	return m.Bytes()
}

func allowanceKey(owner Address, spender Address) []byte {
	m := marshalutil.New(65)
	m.WriteByte(LedgerStoreKeyPrefixAllowances)
	m.WriteBytes(owner[:])
	m.WriteBytes(spender[:])

	return m.Bytes()
}

// readAmount reads the uint64 stored under the given key, missing keys read as zero.
func (l *Ledger) readAmount(key []byte) (uint64, error) {
	value, err := l.store.Get(key)
	if err != nil {
		if errorIsKeyNotFound(err) {
			return 0, nil
		}

		return 0, err
	}

	return marshalutil.New(value).ReadUint64()
}

func errorIsKeyNotFound(err error) bool {
	return err == kvstore.ErrKeyNotFound
}

func amountBytes(amount uint64) []byte {
	m := marshalutil.New(8)
	m.WriteUint64(amount)

	return m.Bytes()
}

func setAmount(key []byte, amount uint64, mutations kvstore.BatchedMutations) error {
	if amount == 0 {
		return mutations.Delete(key)
	}

	return mutations.Set(key, amountBytes(amount))
}

// BalanceOf returns the current balance of the given address.
func (l *Ledger) BalanceOf(address Address) (uint64, error) {
	l.RLock()
	defer l.RUnlock()

	return l.readAmount(balanceKey(address))
}

// TotalSupply returns the current total supply of the ledger.
func (l *Ledger) TotalSupply() (uint64, error) {
	l.RLock()
	defer l.RUnlock()

	return l.readAmount(statusKey(statusKeyTotalSupply))
}

// Allowance returns the amount the spender may currently transfer out of the owner balance.
func (l *Ledger) Allowance(owner Address, spender Address) (uint64, error) {
	l.RLock()
	defer l.RUnlock()

	return l.readAmount(allowanceKey(owner, spender))
}

// Mint creates the given amount of tokens on the given address.
func (l *Ledger) Mint(address Address, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	return l.mintWithoutLocking(address, amount)
}

func (l *Ledger) mintWithoutLocking(address Address, amount uint64) error {
	if address.IsNull() {
		return ErrNullAddress
	}

	balance, err := l.readAmount(balanceKey(address))
	if err != nil {
		return err
	}

	supply, err := l.readAmount(statusKey(statusKeyTotalSupply))
	if err != nil {
		return err
	}

	if supply+amount < supply {
		return ErrSupplyOverflow
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := setAmount(balanceKey(address), balance+amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := setAmount(statusKey(statusKeyTotalSupply), supply+amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	return mutations.Commit()
}

// Burn destroys the given amount of tokens held by the given address.
func (l *Ledger) Burn(address Address, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	balance, err := l.readAmount(balanceKey(address))
	if err != nil {
		return err
	}

	if balance < amount {
		return ErrInsufficientBalance
	}

	supply, err := l.readAmount(statusKey(statusKeyTotalSupply))
	if err != nil {
		return err
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := setAmount(balanceKey(address), balance-amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := setAmount(statusKey(statusKeyTotalSupply), supply-amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	return mutations.Commit()
}

// Transfer moves the given amount of tokens from one address to another.
func (l *Ledger) Transfer(from Address, to Address, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	return l.transferWithoutLocking(from, to, amount)
}

func (l *Ledger) transferWithoutLocking(from Address, to Address, amount uint64) error {
	if to.IsNull() {
		return ErrNullAddress
	}

	fromBalance, err := l.readAmount(balanceKey(from))
	if err != nil {
		return err
	}

	if fromBalance < amount {
		return ErrInsufficientBalance
	}

	// a self transfer must not double book the amount
	if from == to {
		return nil
	}

	toBalance, err := l.readAmount(balanceKey(to))
	if err != nil {
		return err
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := setAmount(balanceKey(from), fromBalance-amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := setAmount(balanceKey(to), toBalance+amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	return mutations.Commit()
}

// Approve sets the amount the spender may transfer out of the owner balance.
func (l *Ledger) Approve(owner Address, spender Address, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := setAmount(allowanceKey(owner, spender), amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	return mutations.Commit()
}

// TransferFrom moves the given amount of tokens from the owner to the given
// address, consuming the spender allowance.
func (l *Ledger) TransferFrom(spender Address, from Address, to Address, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	if to.IsNull() {
		return ErrNullAddress
	}

	allowance, err := l.readAmount(allowanceKey(from, spender))
	if err != nil {
		return err
	}

	if allowance < amount {
		return ErrInsufficientAllowance
	}

	fromBalance, err := l.readAmount(balanceKey(from))
	if err != nil {
		return err
	}

	if fromBalance < amount {
		return ErrInsufficientBalance
	}

	var toBalance uint64
	if from != to {
		toBalance, err = l.readAmount(balanceKey(to))
		if err != nil {
			return err
		}
	} else {
		toBalance = fromBalance - amount
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := setAmount(allowanceKey(from, spender), allowance-amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := setAmount(balanceKey(from), fromBalance-amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := setAmount(balanceKey(to), toBalance+amount, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	return mutations.Commit()
}
