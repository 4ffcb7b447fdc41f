package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"
)

// IsValidAddress reports whether address is a 0x-prefixed 20 bytes hex string.
// All lower or all upper case is accepted as is, mixed case must carry a
// valid EIP-55 checksum.
func IsValidAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if !common.IsHexAddress(address) {
		return false
	}
	body := address[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(address).Hex() == "0x"+body
}

// NewCustomValidator returns an echo validator which knows the `ethaddr` tag.
func NewCustomValidator(v *validator.Validate) (echo.Validator, error) {
	err := v.RegisterValidation("ethaddr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	if err != nil {
		return nil, xerrors.Errorf("register ethaddr: %w", err)
	}
	return &CustomValidator{v}, nil
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
