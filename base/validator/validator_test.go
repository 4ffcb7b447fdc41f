package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "no prefix",
			address:    "939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952z",
			expIsValid: false,
		},
		{
			desc:       "valid checksum",
			address:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			expIsValid: true,
		},
		{
			desc:       "broken checksum",
			address:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD",
			expIsValid: false,
		},
		{
			desc:       "lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
		{
			desc:       "upper case",
			address:    "0x939AE6A4C8DFDBB1F7085189574F0A938013952B",
			expIsValid: true,
		},
		{
			desc:       "zero address",
			address:    "0x0000000000000000000000000000000000000000",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	type payload struct {
		Address string `validate:"required,ethaddr"`
	}
	v, err := NewCustomValidator(validator.New())
	s.Require().NoError(err)
	s.NoError(v.Validate(&payload{Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}))
	s.Error(v.Validate(&payload{Address: "0x123"}))
	s.Error(v.Validate(&payload{}))
}

func (s *ValidatorTestSuite) TestCustomValidator_optionalPointer() {
	type payload struct {
		Address *string `validate:"omitempty,ethaddr"`
	}
	v, err := NewCustomValidator(validator.New())
	s.Require().NoError(err)
	valid := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	invalid := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD"
	s.NoError(v.Validate(&payload{}))
	s.NoError(v.Validate(&payload{Address: &valid}))
	s.Error(v.Validate(&payload{Address: &invalid}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
