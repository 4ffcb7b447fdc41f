package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/base/validator"
	"github.com/x-xyz/ensrecords/domain"
	"github.com/x-xyz/ensrecords/stores/auth/usecase"
)

// signtoken prints an operator token accepted by the record write routes.
func main() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	address := pflag.String("address", "", "operator address the token is issued to")
	ttl := pflag.Duration("ttl", 24*time.Hour, "token lifetime")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	context := ctx.Background()
	if !validator.IsValidAddress(*address) {
		context.WithField("address", *address).Panic("invalid --address")
	}

	token, err := usecase.New(viper.GetString("auth.jwtSecret")).SignToken(context, domain.Address(*address), *ttl)
	if err != nil {
		context.WithFields(log.Fields{"err": err}).Panic("SignToken failed")
	}
	fmt.Println(token)
}
