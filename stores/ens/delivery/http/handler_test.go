package http

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/ptr"
	bValidator "github.com/x-xyz/ensrecords/base/validator"
	"github.com/x-xyz/ensrecords/domain"
	domainMocks "github.com/x-xyz/ensrecords/domain/mocks"
	"github.com/x-xyz/ensrecords/middleware"
	"github.com/x-xyz/ensrecords/service/ens/mocks"
	authMiddleware "github.com/x-xyz/ensrecords/stores/auth/delivery/http/middleware"
	"github.com/x-xyz/ensrecords/stores/auth/usecase"
)

type response struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
}

type handlerSuite struct {
	suite.Suite

	e        *echo.Echo
	ens      *mocks.Service
	networks *domainMocks.EnsClientProvider
	mainnet  *domain.Network
	token    string
}

func (s *handlerSuite) SetupTest() {
	s.ens = mocks.NewService(s.T())
	s.networks = domainMocks.NewEnsClientProvider(s.T())
	s.mainnet = domain.Mainnet()

	auth := usecase.New("jwt-secret")
	token, err := auth.SignToken(ctx.Background(), "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872", time.Hour)
	s.Require().NoError(err)
	s.token = token

	v, err := bValidator.NewCustomValidator(validator.New())
	s.Require().NoError(err)
	s.e = echo.New()
	s.e.Validator = v
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.ens, s.networks, authMiddleware.New(auth).Auth())
}

func (s *handlerSuite) do(method, target, body string) (int, response) {
	return s.doWithToken(method, target, body, s.token)
}

func (s *handlerSuite) doWithToken(method, target, body, token string) (int, response) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := response{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return rec.Code, res
}

func (s *handlerSuite) TestGetTextRecord() {
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("GetTextRecord", mock.Anything, "vitalik.eth", "url", s.mainnet).Return(ptr.String("https://vitalik.ca"), nil).Once()

	code, res := s.do(http.MethodGet, "/ens/text/vitalik.eth/url", "")
	s.Equal(http.StatusOK, code)
	s.Equal("success", res.Status)
	s.JSONEq(`{"name":"vitalik.eth","key":"url","value":"https://vitalik.ca"}`, string(res.Data))
}

func (s *handlerSuite) TestGetTextRecord_unset() {
	s.networks.On("Network", "mainnet").Return(s.mainnet, nil).Once()
	s.ens.On("GetTextRecord", mock.Anything, "vitalik.eth", "avatar", s.mainnet).Return(nil, nil).Once()

	code, res := s.do(http.MethodGet, "/ens/text/vitalik.eth/avatar?network=mainnet", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"name":"vitalik.eth","key":"avatar","value":null}`, string(res.Data))
}

func (s *handlerSuite) TestGetTextRecord_unsupportedNetwork() {
	s.networks.On("Network", "ropsten").Return(nil, domain.ErrUnsupportedNetwork).Once()

	code, res := s.do(http.MethodGet, "/ens/text/vitalik.eth/url?network=ropsten", "")
	s.Equal(http.StatusBadRequest, code)
	s.Equal("fail", res.Status)
}

func (s *handlerSuite) TestErrorStatus() {
	tests := []struct {
		err    error
		status int
	}{
		{domain.NewError(domain.ErrKindInvalidName, "normalize name", domain.ErrInvalidName), http.StatusBadRequest},
		{domain.NewError(domain.ErrKindResolverNotFound, "resolver", domain.ErrResolverNotFound), http.StatusNotFound},
		{domain.NewError(domain.ErrKindGetTextRecord, "read text", errors.New("timeout")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.networks.On("Network", "").Return(s.mainnet, nil).Once()
		s.ens.On("GetTextRecord", mock.Anything, "x.eth", "url", s.mainnet).Return(nil, tt.err).Once()

		code, res := s.do(http.MethodGet, "/ens/text/x.eth/url", "")
		s.Equal(tt.status, code)
		s.Equal("fail", res.Status)
		s.Contains(string(res.Data), string(domain.ErrKindOf(tt.err)))
	}
}

func (s *handlerSuite) TestSetTextRecord() {
	hash := common.HexToHash("0xabc")
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SetTextRecord", mock.Anything, "vitalik.eth", "url", ptr.String("https://x.xyz"), s.mainnet).Return(hash, nil).Once()

	code, res := s.do(http.MethodPut, "/ens/text/vitalik.eth/url", `{"value":"https://x.xyz"}`)
	s.Equal(http.StatusAccepted, code)
	s.JSONEq(`{"transactionHash":"`+hash.Hex()+`"}`, string(res.Data))
}

func (s *handlerSuite) TestSetTextRecord_bodyCannotOverridePath() {
	hash := common.HexToHash("0xabc")
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SetTextRecord", mock.Anything, "vitalik.eth", "url", ptr.String("x"), s.mainnet).Return(hash, nil).Once()

	code, _ := s.do(http.MethodPut, "/ens/text/vitalik.eth/url", `{"name":"victim.eth","key":"avatar","value":"x"}`)
	s.Equal(http.StatusAccepted, code)
}

func (s *handlerSuite) TestSetTextRecord_unauthorized() {
	code, _ := s.doWithToken(http.MethodPut, "/ens/text/vitalik.eth/url", `{"value":"x"}`, "")
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.doWithToken(http.MethodPut, "/ens/text/vitalik.eth/url", `{"value":"x"}`, "not-a-token")
	s.Equal(http.StatusUnauthorized, code)

	forged, err := usecase.New("other-secret").SignToken(ctx.Background(), "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872", time.Hour)
	s.Require().NoError(err)
	code, _ = s.doWithToken(http.MethodPut, "/ens/address/vitalik.eth", `{}`, forged)
	s.Equal(http.StatusUnauthorized, code)
}

func (s *handlerSuite) TestSetTextRecord_clearAndWait() {
	hash := common.HexToHash("0xabc")
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SetTextRecordAndWait", mock.Anything, "vitalik.eth", "url", (*string)(nil), s.mainnet).
		Return(&types.Receipt{TxHash: hash, BlockNumber: big.NewInt(100), Status: types.ReceiptStatusSuccessful}, nil).Once()

	code, res := s.do(http.MethodPut, "/ens/text/vitalik.eth/url", `{"value":null,"wait":true}`)
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"transactionHash":"`+hash.Hex()+`","blockNumber":100,"status":1}`, string(res.Data))
}

func (s *handlerSuite) TestSetAddressRecord_waitsByDefault() {
	hash := common.HexToHash("0xdef")
	addr := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SetAddressRecord", mock.Anything, "vitalik.eth", &addr, s.mainnet).
		Return(&types.Receipt{TxHash: hash, BlockNumber: big.NewInt(7), Status: types.ReceiptStatusSuccessful}, nil).Once()

	code, res := s.do(http.MethodPut, "/ens/address/vitalik.eth", `{"address":"`+addr+`"}`)
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"transactionHash":"`+hash.Hex()+`","blockNumber":7,"status":1}`, string(res.Data))
}

func (s *handlerSuite) TestSetAddressRecord_noWait() {
	hash := common.HexToHash("0xdef")
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SubmitAddressRecord", mock.Anything, "vitalik.eth", (*string)(nil), s.mainnet).Return(hash, nil).Once()

	code, _ := s.do(http.MethodPut, "/ens/address/vitalik.eth", `{"wait":false}`)
	s.Equal(http.StatusAccepted, code)
}

func (s *handlerSuite) TestSetAddressRecord_bodyCannotOverridePath() {
	hash := common.HexToHash("0xdef")
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SubmitAddressRecord", mock.Anything, "vitalik.eth", (*string)(nil), s.mainnet).Return(hash, nil).Once()

	code, _ := s.do(http.MethodPut, "/ens/address/vitalik.eth", `{"name":"victim.eth","wait":false}`)
	s.Equal(http.StatusAccepted, code)
}

func (s *handlerSuite) TestSetAddressRecord_invalidAddress() {
	for _, addr := range []string{"0x123", "vitalik.eth", "0xd8DA6BF26964aF9D7eEd9e03E53415D37aA96045"} {
		code, res := s.do(http.MethodPut, "/ens/address/vitalik.eth", `{"address":"`+addr+`"}`)
		s.Equal(http.StatusBadRequest, code, addr)
		s.Equal("fail", res.Status)
	}
	s.ens.AssertNotCalled(s.T(), "SetAddressRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestSetAddressRecord_noAccount() {
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("SetAddressRecord", mock.Anything, "vitalik.eth", (*string)(nil), s.mainnet).
		Return(nil, domain.NewError(domain.ErrKindNoAccount, "signing account", domain.ErrNoAccount)).Once()

	code, res := s.do(http.MethodPut, "/ens/address/vitalik.eth", `{}`)
	s.Equal(http.StatusForbidden, code)
	s.Equal("fail", res.Status)
}

func (s *handlerSuite) TestResolve() {
	addr := domain.Address("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("Resolve", mock.Anything, "vitalik.eth", s.mainnet).
		Return(&domain.AddressRecord{Name: "vitalik.eth", Address: &addr}, nil).Once()

	code, res := s.doWithToken(http.MethodGet, "/ens/resolve/vitalik.eth", "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"name":"vitalik.eth","address":"`+string(addr)+`"}`, string(res.Data))
}

func (s *handlerSuite) TestResolve_invalidName() {
	s.networks.On("Network", "").Return(s.mainnet, nil).Once()
	s.ens.On("Resolve", mock.Anything, "a..eth", s.mainnet).
		Return(nil, domain.NewError(domain.ErrKindInvalidName, "normalize name", domain.ErrInvalidName)).Once()

	code, res := s.do(http.MethodGet, "/ens/resolve/a..eth", "")
	s.Equal(http.StatusBadRequest, code)
	s.Contains(string(res.Data), string(domain.ErrKindInvalidName))
}

func (s *handlerSuite) TestReverseResolve() {
	addr := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	s.networks.On("Network", "goerli").Return(s.mainnet, nil).Once()
	s.ens.On("ReverseResolve", mock.Anything, addr, s.mainnet).Return(ptr.String("vitalik.eth"), nil).Once()

	code, res := s.doWithToken(http.MethodGet, "/ens/reverse-resolve/"+addr+"?network=goerli", "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"address":"`+addr+`","name":"vitalik.eth"}`, string(res.Data))
}

func (s *handlerSuite) TestReverseResolve_invalidAddress() {
	code, res := s.do(http.MethodGet, "/ens/reverse-resolve/0x123", "")
	s.Equal(http.StatusBadRequest, code)
	s.Equal("fail", res.Status)
}

func (s *handlerSuite) TestGetRecentRegistrations() {
	regs := []*domain.Registration{{Name: "alice.eth", Label: "alice", CostEth: "0.01"}}
	s.networks.On("Network", "").Return(s.mainnet, nil).Twice()
	s.ens.On("GetRecentRegistrations", mock.Anything, 5, s.mainnet).Return(regs, nil).Once()
	s.ens.On("GetRecentRegistrations", mock.Anything, 0, s.mainnet, mock.Anything).Return(regs, nil).Once()

	code, res := s.do(http.MethodGet, "/ens/registrations?count=5", "")
	s.Equal(http.StatusOK, code)
	got := []*domain.Registration{}
	s.Require().NoError(json.Unmarshal(res.Data, &got))
	s.Require().Len(got, 1)
	s.Equal("alice.eth", got[0].Name)

	code, _ = s.do(http.MethodGet, "/ens/registrations?primaryNames=true", "")
	s.Equal(http.StatusOK, code)
}

func (s *handlerSuite) TestGetRecentRegistrations_badCount() {
	code, res := s.do(http.MethodGet, "/ens/registrations?count=many", "")
	s.Equal(http.StatusBadRequest, code)
	s.Equal("fail", res.Status)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}
