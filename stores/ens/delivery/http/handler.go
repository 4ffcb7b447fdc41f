package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/delivery"
	"github.com/x-xyz/ensrecords/domain"
	"github.com/x-xyz/ensrecords/service/ens"
)

// NetworkResolver turns the network parameter of a request into a selector.
type NetworkResolver interface {
	Network(name string) (*domain.Network, error)
}

type handler struct {
	ens      ens.Service
	networks NetworkResolver
}

// New registers the ens routes. authMw guards the record writes,
// registrationMws wrap the registrations listing only, e.g. a response cache.
func New(e *echo.Echo, ens ens.Service, networks NetworkResolver, authMw echo.MiddlewareFunc, registrationMws ...echo.MiddlewareFunc) {
	h := &handler{
		ens:      ens,
		networks: networks,
	}

	g := e.Group("/ens")

	g.GET("/text/:name/:key", h.GetTextRecord)
	g.PUT("/text/:name/:key", h.SetTextRecord, authMw)

	g.PUT("/address/:name", h.SetAddressRecord, authMw)

	g.GET("/resolve/:name", h.Resolve)
	g.GET("/reverse-resolve/:address", h.ReverseResolve)

	g.GET("/registrations", h.GetRecentRegistrations, registrationMws...)
}

type setTextRecordBody struct {
	// null clears the record
	Value   *string `json:"value" example:"https://vitalik.ca"`
	Network string  `json:"network" example:"mainnet"`
	Wait    bool    `json:"wait"`
}

type setAddressRecordBody struct {
	// null writes the zero address
	Address *string `json:"address" validate:"omitempty,ethaddr" example:"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"`
	Network string  `json:"network" example:"mainnet"`
	// null waits for the receipt
	Wait *bool `json:"wait"`
}

type txResult struct {
	TxHash      common.Hash `json:"transactionHash"`
	BlockNumber uint64      `json:"blockNumber,omitempty"`
	Status      *uint64     `json:"status,omitempty"`
}

// GetTextRecord
//
//	@Summary	Get a text record
//	@Tags		ens
//	@Produce	json
//	@Param		name	path		string	true	"ens name"		example(vitalik.eth)
//	@Param		key		path		string	true	"record key"	example(url)
//	@Param		network	query		string	false	"network name or chain id, mainnet when empty"
//	@Success	200		{object}	domain.TextRecord
//	@Failure	400
//	@Failure	500
//	@Router		/ens/text/{name}/{key} [get]
func (h *handler) GetTextRecord(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name    string `param:"name" validate:"required"`
		Key     string `param:"key" validate:"required"`
		Network string `query:"network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	network, err := h.networks.Network(p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	value, err := h.ens.GetTextRecord(ctx, p.Name, p.Key, network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, domain.TextRecord{
		Name:  p.Name,
		Key:   p.Key,
		Value: value,
	})
}

// SetTextRecord
//
//	@Summary		Set a text record
//	@Description	Submits setText on the resolver of name. A null value clears the record.
//	@Tags			ens
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			name	path		string	true	"ens name"		example(vitalik.eth)
//	@Param			key		path		string	true	"record key"	example(url)
//	@Param			body	body		setTextRecordBody	true	"record value"
//	@Success		200		{object}	txResult	"mined, when wait is true"
//	@Success		202		{object}	txResult	"submitted"
//	@Failure		400
//	@Failure		401
//	@Failure		403
//	@Failure		404
//	@Failure		500
//	@Router			/ens/text/{name}/{key} [put]
func (h *handler) SetTextRecord(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	// path params are never taken from the body
	type payload struct {
		Name string `param:"name" json:"-" validate:"required"`
		Key  string `param:"key" json:"-" validate:"required"`
		setTextRecordBody
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	network, err := h.networks.Network(p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !p.Wait {
		hash, err := h.ens.SetTextRecord(ctx, p.Name, p.Key, p.Value, network)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		return delivery.MakeJsonResp(c, http.StatusAccepted, txResult{TxHash: hash})
	}

	receipt, err := h.ens.SetTextRecordAndWait(ctx, p.Name, p.Key, p.Value, network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toTxResult(receipt))
}

// SetAddressRecord
//
//	@Summary		Set the address record
//	@Description	Submits setAddr for name and waits for the receipt unless wait is false. A null address writes the zero address.
//	@Tags			ens
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			name	path		string	true	"ens name"	example(vitalik.eth)
//	@Param			body	body		setAddressRecordBody	true	"record value"
//	@Success		200		{object}	txResult	"mined"
//	@Success		202		{object}	txResult	"submitted, when wait is false"
//	@Failure		400
//	@Failure		401
//	@Failure		403
//	@Failure		500
//	@Router			/ens/address/{name} [put]
func (h *handler) SetAddressRecord(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name string `param:"name" json:"-" validate:"required"`
		setAddressRecordBody
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	network, err := h.networks.Network(p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.Wait != nil && !*p.Wait {
		hash, err := h.ens.SubmitAddressRecord(ctx, p.Name, p.Address, network)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		return delivery.MakeJsonResp(c, http.StatusAccepted, txResult{TxHash: hash})
	}

	receipt, err := h.ens.SetAddressRecord(ctx, p.Name, p.Address, network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toTxResult(receipt))
}

// Resolve
//
//	@Summary	Resolve a name to its address
//	@Tags		ens
//	@Produce	json
//	@Param		name	path		string	true	"ens name"	example(vitalik.eth)
//	@Param		network	query		string	false	"network name or chain id, mainnet when empty"
//	@Success	200		{object}	domain.AddressRecord
//	@Failure	400
//	@Failure	500
//	@Router		/ens/resolve/{name} [get]
func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name    string `param:"name" validate:"required"`
		Network string `query:"network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	network, err := h.networks.Network(p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.ens.Resolve(ctx, p.Name, network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type reverseRecord struct {
	Address string  `json:"address"`
	Name    *string `json:"name"`
}

// ReverseResolve
//
//	@Summary		Resolve an address to its primary name
//	@Description	The name is null when the address has no reverse record or the name does not resolve back to it.
//	@Tags			ens
//	@Produce		json
//	@Param			address	path		string	true	"address"	example(0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045)
//	@Param			network	query		string	false	"network name or chain id, mainnet when empty"
//	@Success		200		{object}	reverseRecord
//	@Failure		400
//	@Failure		500
//	@Router			/ens/reverse-resolve/{address} [get]
func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address string `param:"address" validate:"required,ethaddr"`
		Network string `query:"network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	network, err := h.networks.Network(p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, p.Address, network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, reverseRecord{Address: p.Address, Name: name})
}

// GetRecentRegistrations
//
//	@Summary		List recent registrations
//	@Description	Registrations of the last 10000 blocks, most recent first.
//	@Tags			ens
//	@Produce		json
//	@Param			count			query		int		false	"max registrations, 10 when zero or less"
//	@Param			network			query		string	false	"network name or chain id, mainnet when empty"
//	@Param			primaryNames	query		bool	false	"also resolve the owner primary names"
//	@Success		200				{array}		domain.Registration
//	@Failure		400
//	@Failure		500
//	@Router			/ens/registrations [get]
func (h *handler) GetRecentRegistrations(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Count        int    `query:"count"`
		Network      string `query:"network"`
		PrimaryNames bool   `query:"primaryNames"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	network, err := h.networks.Network(p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []ens.RegistrationOption{}
	if p.PrimaryNames {
		opts = append(opts, ens.WithPrimaryNames())
	}

	res, err := h.ens.GetRecentRegistrations(ctx, p.Count, network, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func toTxResult(receipt *types.Receipt) txResult {
	res := txResult{TxHash: receipt.TxHash, Status: &receipt.Status}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return res
}
