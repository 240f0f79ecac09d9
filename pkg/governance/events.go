package governance

import (
	"github.com/iotaledger/hive.go/core/events"

	"github.com/iotaledger/inx-governance/pkg/epoch"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// ListEvent is the payload of the list membership notifications.
type ListEvent struct {
	List    string
	Address ledger.Address
}

// ConfigEvent is the payload of the config update notifications.
type ConfigEvent struct {
	Key   Key
	Value Value
}

// TaxEvent is the payload of the tax change notifications.
type TaxEvent struct {
	Tax uint64
}

// TaxRangeEvent is the payload of the tax range change notifications.
type TaxRangeEvent struct {
	LowerBound uint64
	UpperBound uint64
}

// FeeEvent is the payload of the proposal fee notifications.
type FeeEvent struct {
	Payer  ledger.Address
	Method Method
	Epoch  epoch.Index
	Amount uint64
}

// EmergencyEvent is the payload of the emergency notifications, carrying the
// raw method and payload for auditability.
type EmergencyEvent struct {
	Method  EmergencyMethod
	Payload []byte
}

// ResetEvent is the payload of the reset notifications.
type ResetEvent struct {
	Governor   ledger.Address
	SnapshotID ledger.SnapshotID
}

// ListEventCaller is used to hand the ListEvent to the registered event handlers.
func ListEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*ListEvent))(params[0].(*ListEvent))
}

func ConfigEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*ConfigEvent))(params[0].(*ConfigEvent))
}

func TaxEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*TaxEvent))(params[0].(*TaxEvent))
}

func TaxRangeEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*TaxRangeEvent))(params[0].(*TaxRangeEvent))
}

func FeeEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*FeeEvent))(params[0].(*FeeEvent))
}

func EmergencyEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*EmergencyEvent))(params[0].(*EmergencyEvent))
}

func ResetEventCaller(handler interface{}, params ...interface{}) {
	//nolint:forcetypeassert // we will replace that with generic events anyway
	handler.(func(*ResetEvent))(params[0].(*ResetEvent))
}

// Events holds the notifications emitted by the governance Manager. They exist
// for audit and indexing, none of them is correctness critical.
type Events struct {
	AddressAddedToList     *events.Event
	AddressRemovedFromList *events.Event
	ConfigUpdated          *events.Event
	TaxChanged             *events.Event
	TaxRangeChanged        *events.Event
	ProposalFeeCharged     *events.Event
	EmergencyExecuted      *events.Event
	ResetExecuted          *events.Event
}

func newEvents() *Events {
	return &Events{
		AddressAddedToList:     events.NewEvent(ListEventCaller),
		AddressRemovedFromList: events.NewEvent(ListEventCaller),
		ConfigUpdated:          events.NewEvent(ConfigEventCaller),
		TaxChanged:             events.NewEvent(TaxEventCaller),
		TaxRangeChanged:        events.NewEvent(TaxRangeEventCaller),
		ProposalFeeCharged:     events.NewEvent(FeeEventCaller),
		EmergencyExecuted:      events.NewEvent(EmergencyEventCaller),
		ResetExecuted:          events.NewEvent(ResetEventCaller),
	}
}
