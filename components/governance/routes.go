package governance

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iotaledger/inx-app/pkg/httpserver"
)

const (
	APIRoute = "/api/governance/v1"

	// RouteInfo is the route to get the governance parameters.
	// GET returns the governor address, the tax parameters, the inflation constants and the current epoch.
	RouteInfo = "/info"

	// RouteConfig is the route to read a single config value by its hex encoded key.
	// GET returns the raw value, absent keys read as the null value.
	RouteConfig = "/configs/:" + ParameterConfigKey

	// RouteConfigs is the route to read a batch of config values.
	// GET returns the values of all keys given via repeated "key" query parameters, in order.
	RouteConfigs = "/configs"

	// RouteListContains is the route to check a list membership.
	// GET returns whether the given address is a member of the given list.
	RouteListContains = "/lists/:" + ParameterListName + "/addresses/:" + ParameterAddress

	// RouteResetStatus is the route to get the status of the vote ledger reset.
	// GET returns the reset snapshot id and the circulating vote supply.
	RouteResetStatus = "/reset"

	// RouteAdminAddToList is the route the node operator can use to add a list member as the governor.
	// POST adds the address to the list.
	RouteAdminAddToList = "/admin/lists/:" + ParameterListName + "/addresses/:" + ParameterAddress

	// RouteAdminRemoveFromList is the route the node operator can use to remove a list member as the governor.
	// DELETE removes the address from the list.
	RouteAdminRemoveFromList = "/admin/lists/:" + ParameterListName + "/addresses/:" + ParameterAddress

	// RouteAdminUpdateConfig is the route the node operator can use to overwrite a config value as the governor.
	// POST overwrites the config value under the given key.
	RouteAdminUpdateConfig = "/admin/configs/:" + ParameterConfigKey

	// ParameterConfigKey is used to identify a config value by its hex encoded key.
	ParameterConfigKey = "configKey"

	// ParameterListName is used to identify a list by its name.
	ParameterListName = "list"

	// ParameterAddress is used to identify an address.
	ParameterAddress = "address"
)

func setupRoutes(e *echo.Group) {

	e.GET(RouteInfo, func(c echo.Context) error {
		return httpserver.JSONResponse(c, http.StatusOK, getInfo())
	})

	e.GET(RouteConfig, func(c echo.Context) error {
		resp, err := getConfig(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	e.GET(RouteConfigs, func(c echo.Context) error {
		resp, err := getConfigBatch(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	e.GET(RouteListContains, func(c echo.Context) error {
		resp, err := getListContains(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	e.GET(RouteResetStatus, func(c echo.Context) error {
		resp, err := getResetStatus(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	e.POST(RouteAdminAddToList, func(c echo.Context) error {
		if err := addToList(c); err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	})

	e.DELETE(RouteAdminRemoveFromList, func(c echo.Context) error {
		if err := removeFromList(c); err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	})

	e.POST(RouteAdminUpdateConfig, func(c echo.Context) error {
		if err := updateConfig(c); err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	})
}
