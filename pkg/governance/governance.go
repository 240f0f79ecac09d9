package governance

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/core/marshalutil"
	"github.com/iotaledger/hive.go/core/syncutils"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hornet/v2/pkg/common"
	"github.com/pkg/errors"

	"github.com/iotaledger/inx-governance/pkg/epoch"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// InflationScale is the denominator of the inflator, an inflator of 100 doubles the amount.
const InflationScale = 100

// Manager is the governance core. It owns the configuration registry, the tax
// parameters and the governor identity, and keeps the two-token reset protocol
// of the vote ledger consistent with governor swaps.
//
// All entry points run to completion under a single exclusive lock, a failed
// entry point leaves the governance state unchanged.
type Manager struct {
	// lock used to serialize all governance state mutations.
	syncutils.Mutex

	store       kvstore.KVStore
	storeHealth *kvstore.StoreHealthTracker

	registry *Registry
	value    *ledger.Ledger
	vote     *ledger.VoteLedger
	cash     CashToken
	vault    Vault
	governor Governor

	epochFunc EpochProvider

	// address is the identity of this core towards the cash token.
	address ledger.Address

	tax           uint64
	taxLowerBound uint64
	taxUpperBound uint64

	// fixed reward scaling constants, immutable for the life of the core.
	inflator            uint64
	valueFixedInflation uint64

	// Events are the notifications emitted by the Manager.
	Events *Events
}

// Options define options for the Manager.
type Options struct {
	tax                 uint64
	taxLowerBound       uint64
	taxUpperBound       uint64
	inflator            uint64
	valueFixedInflation uint64
}

// applies the given Option.
func (o *Options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithTax defines the fee charged per governed call.
func WithTax(tax uint64) Option {
	return func(opts *Options) {
		opts.tax = tax
	}
}

// WithTaxRange defines the inclusive valid range of the tax.
func WithTaxRange(lowerBound uint64, upperBound uint64) Option {
	return func(opts *Options) {
		opts.taxLowerBound = lowerBound
		opts.taxUpperBound = upperBound
	}
}

// WithInflator defines the reward scaling constant applied by InflationReward.
func WithInflator(inflator uint64) Option {
	return func(opts *Options) {
		opts.inflator = inflator
	}
}

// WithFixedInflation defines the fixed value token inflation per epoch.
func WithFixedInflation(valueFixedInflation uint64) Option {
	return func(opts *Options) {
		opts.valueFixedInflation = valueFixedInflation
	}
}

// Option is a function setting a Manager option.
type Option func(opts *Options)

// NewManager creates a new Manager instance.
func NewManager(
	governanceStore kvstore.KVStore,
	address ledger.Address,
	valueLedger *ledger.Ledger,
	cash CashToken,
	vault Vault,
	governor Governor,
	epochProvider EpochProvider,
	opts ...Option) (*Manager, error) {

	options := &Options{}
	options.apply(opts...)

	if cash == nil || vault == nil || governor == nil {
		return nil, ErrNullCollaborator
	}
	if governor.Address().IsNull() || vault.Address().IsNull() || address.IsNull() {
		return nil, ErrNullCollaborator
	}
	if options.tax == 0 || options.inflator == 0 || options.valueFixedInflation == 0 {
		return nil, ErrZeroParameter
	}
	if options.taxLowerBound > options.taxUpperBound {
		return nil, ErrInvalidTaxRange
	}
	if options.tax < options.taxLowerBound || options.tax > options.taxUpperBound {
		return nil, ErrTaxOutOfRange
	}

	healthTracker, err := kvstore.NewStoreHealthTracker(governanceStore, []byte{common.StorePrefixHealth}, DBVersionGovernance, nil)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		store:               governanceStore,
		storeHealth:         healthTracker,
		registry:            NewRegistry(governanceStore),
		value:               valueLedger,
		vote:                governor.Vote(),
		cash:                cash,
		vault:               vault,
		governor:            governor,
		epochFunc:           epochProvider,
		address:             address,
		tax:                 options.tax,
		taxLowerBound:       options.taxLowerBound,
		taxUpperBound:       options.taxUpperBound,
		inflator:            options.inflator,
		valueFixedInflation: options.valueFixedInflation,
		Events:              newEvents(),
	}

	if err := manager.init(); err != nil {
		return nil, err
	}

	return manager, nil
}

func (m *Manager) init() error {

	corrupted, err := m.storeHealth.IsCorrupted()
	if err != nil {
		return err
	}
	if corrupted {
		return ErrGovernanceCorruptedStorage
	}

	correctDatabaseVersion, err := m.storeHealth.CheckCorrectStoreVersion()
	if err != nil {
		return err
	}

	if !correctDatabaseVersion {
		databaseVersionUpdated, err := m.storeHealth.UpdateStoreVersion()
		if err != nil {
			return err
		}

		if !databaseVersionUpdated {
			return errors.New("governance database version mismatch. The database scheme was updated. Please delete the database folder and start again.")
		}
	}

	// Pick up the persisted tax parameters of a previous run
	if err := m.loadTaxParameters(); err != nil {
		return err
	}

	// Mark the database as corrupted here and as clean when we shut it down
	return m.storeHealth.MarkCorrupted()
}

// CloseDatabase flushes the store and closes the underlying database.
func (m *Manager) CloseDatabase() error {
	var flushAndCloseError error

	if err := m.storeHealth.MarkHealthy(); err != nil {
		flushAndCloseError = err
	}

	if err := m.store.Flush(); err != nil {
		flushAndCloseError = err
	}
	if err := m.store.Close(); err != nil {
		flushAndCloseError = err
	}

	return flushAndCloseError
}

func governanceStatusKey(key byte) []byte {
	return []byte{GovernanceStoreKeyPrefixStatus, key}
}

func (m *Manager) loadTaxParameters() error {
	read := func(key byte, target *uint64) error {
		value, err := m.store.Get(governanceStatusKey(key))
		if err != nil {
			if err == kvstore.ErrKeyNotFound {
				return nil
			}

			return err
		}

		stored, err := marshalutil.New(value).ReadUint64()
		if err != nil {
			return err
		}
		*target = stored

		return nil
	}

	if err := read(statusKeyTax, &m.tax); err != nil {
		return err
	}
	if err := read(statusKeyTaxLowerBound, &m.taxLowerBound); err != nil {
		return err
	}

	return read(statusKeyTaxUpperBound, &m.taxUpperBound)
}

func (m *Manager) storeTaxParameter(key byte, value uint64) error {
	v := marshalutil.New(8)
	v.WriteUint64(value)

	return m.store.Set(governanceStatusKey(key), v.Bytes())
}

func (m *Manager) checkGovernor(caller ledger.Address) error {
	if caller != m.governor.Address() {
		return ErrOnlyGovernor
	}

	return nil
}

// GovernorAddress returns the address of the currently authoritative governor.
func (m *Manager) GovernorAddress() ledger.Address {
	m.Lock()
	defer m.Unlock()

	return m.governor.Address()
}

// Tax returns the fee currently charged per governed call.
func (m *Manager) Tax() uint64 {
	m.Lock()
	defer m.Unlock()

	return m.tax
}

// TaxRange returns the inclusive valid range of the tax.
func (m *Manager) TaxRange() (lowerBound uint64, upperBound uint64) {
	m.Lock()
	defer m.Unlock()

	return m.taxLowerBound, m.taxUpperBound
}

// Inflator returns the reward scaling constant.
func (m *Manager) Inflator() uint64 {
	return m.inflator
}

// FixedInflation returns the fixed value token inflation per epoch.
func (m *Manager) FixedInflation() uint64 {
	return m.valueFixedInflation
}

// CurrentEpoch returns the epoch the core is currently in.
func (m *Manager) CurrentEpoch() epoch.Index {
	return m.epochFunc()
}

// InflationReward scales the given amount by the inflator. The integer
// division truncates toward zero, the reward is rounded down. The product is
// split around the scale so it cannot wrap for large amounts.
func (m *Manager) InflationReward(amount uint64) uint64 {
	return amount/InflationScale*m.inflator + amount%InflationScale*m.inflator/InflationScale
}

// Get returns the registry value stored under the given key.
func (m *Manager) Get(key Key) (Value, error) {
	return m.registry.Get(key)
}

// GetBatch returns the registry values stored under the given keys, in order.
func (m *Manager) GetBatch(keys []Key) ([]Value, error) {
	return m.registry.GetBatch(keys)
}

// ListContains tells whether the given address is a member of the given list.
func (m *Manager) ListContains(list string, address ledger.Address) (bool, error) {
	return m.registry.ListContains(list, address)
}

// VoteLedger returns the vote ledger of the current governor.
func (m *Manager) VoteLedger() *ledger.VoteLedger {
	m.Lock()
	defer m.Unlock()

	return m.vote
}

// ValueLedger returns the value ledger whose snapshots anchor resets.
func (m *Manager) ValueLedger() *ledger.Ledger {
	return m.value
}

// AddToList adds the given address to the given list. Adding an already
// present member succeeds silently.
func (m *Manager) AddToList(caller ledger.Address, list string, address ledger.Address) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	return m.addToList(list, address)
}

func (m *Manager) addToList(list string, address ledger.Address) error {
	if err := m.registry.Set(ListKey(list, address), listMemberValue); err != nil {
		return err
	}

	m.Events.AddressAddedToList.Trigger(&ListEvent{List: list, Address: address})

	return nil
}

// RemoveFromList removes the given address from the given list. Removing an
// absent member succeeds silently.
func (m *Manager) RemoveFromList(caller ledger.Address, list string, address ledger.Address) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	return m.removeFromList(list, address)
}

func (m *Manager) removeFromList(list string, address ledger.Address) error {
	if err := m.registry.Delete(ListKey(list, address)); err != nil {
		return err
	}

	m.Events.AddressRemovedFromList.Trigger(&ListEvent{List: list, Address: address})

	return nil
}

// UpdateConfig overwrites the config value stored under the given key.
// The value semantics are not validated, interpretation is up to the caller.
func (m *Manager) UpdateConfig(caller ledger.Address, key Key, value Value) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	return m.updateConfig(key, value)
}

func (m *Manager) updateConfig(key Key, value Value) error {
	if err := m.registry.Set(key, value); err != nil {
		return err
	}

	m.Events.ConfigUpdated.Trigger(&ConfigEvent{Key: key, Value: value})

	return nil
}

// Emergency executes a list or config mutation past the normal proposal path.
// It is still gated by the governor check and shares the mutation logic and
// notifications with the normal entry points.
func (m *Manager) Emergency(caller ledger.Address, method EmergencyMethod, payload []byte) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	switch method {
	case EmergencyMethodRemoveFromList:
		args := &EmergencyListArgs{}
		if _, err := args.Deserialize(payload, serializer.DeSeriModePerformValidation, nil); err != nil {
			return err
		}
		if err := m.removeFromList(args.List, args.Address); err != nil {
			return err
		}

	case EmergencyMethodAddToList:
		args := &EmergencyListArgs{}
		if _, err := args.Deserialize(payload, serializer.DeSeriModePerformValidation, nil); err != nil {
			return err
		}
		if err := m.addToList(args.List, args.Address); err != nil {
			return err
		}

	case EmergencyMethodUpdateConfig:
		args := &EmergencyConfigArgs{}
		if _, err := args.Deserialize(payload, serializer.DeSeriModePerformValidation, nil); err != nil {
			return err
		}
		if err := m.updateConfig(args.Key, args.Value); err != nil {
			return err
		}

	default:
		return ErrEmergencyMethodNotSupported
	}

	m.Events.EmergencyExecuted.Trigger(&EmergencyEvent{Method: method, Payload: payload})

	return nil
}

// ChangeTax sets the fee charged per governed call, it must stay within the tax range.
func (m *Manager) ChangeTax(caller ledger.Address, newTax uint64) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	if newTax < m.taxLowerBound || newTax > m.taxUpperBound {
		return ErrTaxOutOfRange
	}

	if err := m.storeTaxParameter(statusKeyTax, newTax); err != nil {
		return err
	}
	m.tax = newTax

	m.Events.TaxChanged.Trigger(&TaxEvent{Tax: newTax})

	return nil
}

// ChangeTaxRange sets the inclusive valid range of the tax. The current tax is
// not re-validated against the new range, it may sit outside of it until the
// next ChangeTax call.
func (m *Manager) ChangeTaxRange(caller ledger.Address, newLowerBound uint64, newUpperBound uint64) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	if newLowerBound > newUpperBound {
		return ErrInvalidTaxRange
	}

	if err := m.storeTaxParameter(statusKeyTaxLowerBound, newLowerBound); err != nil {
		return err
	}
	if err := m.storeTaxParameter(statusKeyTaxUpperBound, newUpperBound); err != nil {
		return err
	}
	m.taxLowerBound = newLowerBound
	m.taxUpperBound = newUpperBound

	m.Events.TaxRangeChanged.Trigger(&TaxRangeEvent{LowerBound: newLowerBound, UpperBound: newUpperBound})

	return nil
}

// Reset replaces the governor. It snapshots the value ledger, initializes the
// new governor with this core and opens the claim window of the new governor's
// vote ledger against the snapshot.
func (m *Manager) Reset(caller ledger.Address, newGovernor Governor) error {
	m.Lock()
	defer m.Unlock()

	if err := m.checkGovernor(caller); err != nil {
		return err
	}

	if err := newGovernor.Initialize(m); err != nil {
		return err
	}

	// the incoming vote ledger must not have gone through a reset yet,
	// rejecting it here keeps the value ledger free of orphaned snapshots
	newVote := newGovernor.Vote()
	currentResetID, err := newVote.ResetSnapshotID()
	if err != nil {
		return err
	}
	if currentResetID != 0 {
		return ledger.ErrResetAlreadyInitialized
	}

	snapshotID, err := m.value.Snapshot()
	if err != nil {
		return err
	}

	if err := newVote.Reset(snapshotID); err != nil {
		return err
	}

	m.governor = newGovernor
	m.vote = newVote

	m.Events.ResetExecuted.Trigger(&ResetEvent{Governor: newGovernor.Address(), SnapshotID: snapshotID})

	return nil
}

// ChargeFee pulls the tax from the caller in the cash token, forwards it to
// the vault tagged with the current epoch and returns the amount charged.
// The caller must have approved this core on the cash token beforehand.
func (m *Manager) ChargeFee(caller ledger.Address, method Method) (uint64, error) {
	m.Lock()
	defer m.Unlock()

	tax := m.tax

	if err := m.cash.TransferFrom(m.address, caller, m.vault.Address(), tax); err != nil {
		return 0, err
	}

	index := m.epochFunc()
	if err := m.vault.Deposit(index, tax); err != nil {
		return 0, err
	}

	m.Events.ProposalFeeCharged.Trigger(&FeeEvent{Payer: caller, Method: method, Epoch: index, Amount: tax})

	return tax, nil
}
