package governance

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/iotaledger/inx-app/pkg/httpserver"

	"github.com/iotaledger/inx-governance/pkg/governance"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

func parseConfigKeyParam(c echo.Context) (governance.Key, error) {
	keyHex := c.Param(ParameterConfigKey)
	if keyHex == "" {
		return governance.Key{}, errors.WithMessagef(httpserver.ErrInvalidParameter, "parameter \"%s\" not specified", ParameterConfigKey)
	}

	key, err := governance.KeyFromHex(keyHex)
	if err != nil {
		return governance.Key{}, errors.WithMessagef(httpserver.ErrInvalidParameter, "invalid config key: %s, error: %s", keyHex, err)
	}

	return key, nil
}

func parseListParam(c echo.Context) (string, error) {
	list := c.Param(ParameterListName)
	if list == "" {
		return "", errors.WithMessagef(httpserver.ErrInvalidParameter, "parameter \"%s\" not specified", ParameterListName)
	}

	return list, nil
}

func parseAddressParam(c echo.Context) (ledger.Address, error) {
	addressHex := c.Param(ParameterAddress)
	if addressHex == "" {
		return ledger.NullAddress, errors.WithMessagef(httpserver.ErrInvalidParameter, "parameter \"%s\" not specified", ParameterAddress)
	}

	address, err := ledger.AddressFromHex(addressHex)
	if err != nil {
		return ledger.NullAddress, errors.WithMessagef(httpserver.ErrInvalidParameter, "invalid address: %s, error: %s", addressHex, err)
	}

	return address, nil
}

func getInfo() *InfoResponse {
	lowerBound, upperBound := deps.GovernanceManager.TaxRange()

	return &InfoResponse{
		GovernorAddress:     deps.GovernanceManager.GovernorAddress().ToHex(),
		Tax:                 deps.GovernanceManager.Tax(),
		TaxLowerBound:       lowerBound,
		TaxUpperBound:       upperBound,
		Inflator:            deps.GovernanceManager.Inflator(),
		ValueFixedInflation: deps.GovernanceManager.FixedInflation(),
		CurrentEpoch:        deps.GovernanceManager.CurrentEpoch(),
	}
}

func getConfig(c echo.Context) (*ConfigResponse, error) {
	key, err := parseConfigKeyParam(c)
	if err != nil {
		return nil, err
	}

	value, err := deps.GovernanceManager.Get(key)
	if err != nil {
		return nil, errors.WithMessagef(echo.ErrInternalServerError, "reading config failed: %s", err)
	}

	return &ConfigResponse{
		Key:   key.ToHex(),
		Value: value.ToHex(),
	}, nil
}

func getConfigBatch(c echo.Context) (*ConfigBatchResponse, error) {
	keyParams := c.QueryParams()["key"]
	if len(keyParams) == 0 {
		return nil, errors.WithMessage(httpserver.ErrInvalidParameter, "no config keys specified")
	}

	keys := make([]governance.Key, len(keyParams))
	for i, keyHex := range keyParams {
		key, err := governance.KeyFromHex(keyHex)
		if err != nil {
			return nil, errors.WithMessagef(httpserver.ErrInvalidParameter, "invalid config key: %s, error: %s", keyHex, err)
		}
		keys[i] = key
	}

	values, err := deps.GovernanceManager.GetBatch(keys)
	if err != nil {
		return nil, errors.WithMessagef(echo.ErrInternalServerError, "reading configs failed: %s", err)
	}

	response := &ConfigBatchResponse{
		Values: make([]*ConfigResponse, len(keys)),
	}
	for i, key := range keys {
		response.Values[i] = &ConfigResponse{
			Key:   key.ToHex(),
			Value: values[i].ToHex(),
		}
	}

	return response, nil
}

func getListContains(c echo.Context) (*ListContainsResponse, error) {
	list, err := parseListParam(c)
	if err != nil {
		return nil, err
	}

	address, err := parseAddressParam(c)
	if err != nil {
		return nil, err
	}

	contains, err := deps.GovernanceManager.ListContains(list, address)
	if err != nil {
		return nil, errors.WithMessagef(echo.ErrInternalServerError, "reading list failed: %s", err)
	}

	return &ListContainsResponse{
		List:     list,
		Address:  address.ToHex(),
		Contains: contains,
	}, nil
}

func getResetStatus(c echo.Context) (*ResetStatusResponse, error) {
	voteLedger := deps.GovernanceManager.VoteLedger()

	resetSnapshotID, err := voteLedger.ResetSnapshotID()
	if err != nil {
		return nil, errors.WithMessagef(echo.ErrInternalServerError, "reading reset status failed: %s", err)
	}

	totalSupply, err := voteLedger.TotalSupply()
	if err != nil {
		return nil, errors.WithMessagef(echo.ErrInternalServerError, "reading vote supply failed: %s", err)
	}

	return &ResetStatusResponse{
		Initialized:     resetSnapshotID != 0,
		ResetSnapshotID: resetSnapshotID,
		TotalSupply:     totalSupply,
	}, nil
}

// the admin routes act under the governor identity of this deployment.
func addToList(c echo.Context) error {
	list, err := parseListParam(c)
	if err != nil {
		return err
	}

	address, err := parseAddressParam(c)
	if err != nil {
		return err
	}

	governor := deps.GovernanceManager.GovernorAddress()
	if err := deps.GovernanceManager.AddToList(governor, list, address); err != nil {
		return errors.WithMessagef(echo.ErrInternalServerError, "adding to list failed: %s", err)
	}

	return nil
}

func removeFromList(c echo.Context) error {
	list, err := parseListParam(c)
	if err != nil {
		return err
	}

	address, err := parseAddressParam(c)
	if err != nil {
		return err
	}

	governor := deps.GovernanceManager.GovernorAddress()
	if err := deps.GovernanceManager.RemoveFromList(governor, list, address); err != nil {
		return errors.WithMessagef(echo.ErrInternalServerError, "removing from list failed: %s", err)
	}

	return nil
}

type updateConfigRequest struct {
	// The hex encoded new config value.
	Value string `json:"value"`
}

func updateConfig(c echo.Context) error {
	key, err := parseConfigKeyParam(c)
	if err != nil {
		return err
	}

	request := &updateConfigRequest{}
	if err := c.Bind(request); err != nil {
		return errors.WithMessagef(httpserver.ErrInvalidParameter, "invalid request, error: %s", err)
	}

	valueBytes, err := governance.KeyFromHex(request.Value)
	if err != nil {
		return errors.WithMessagef(httpserver.ErrInvalidParameter, "invalid config value: %s, error: %s", request.Value, err)
	}

	governor := deps.GovernanceManager.GovernorAddress()
	if err := deps.GovernanceManager.UpdateConfig(governor, key, governance.Value(valueBytes)); err != nil {
		return errors.WithMessagef(echo.ErrInternalServerError, "updating config failed: %s", err)
	}

	return nil
}
