package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensrecords/base/env"
	"github.com/x-xyz/ensrecords/base/log"
)

const (
	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
	ddPort        = 8125
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce sync.Once
	ddClient statsCli
)

// client returns the process wide statsd client. Without a configured
// datadog host every metric is written to the debug log instead.
func client() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			host = env.HostIP()
		}
		if host == "" {
			ddClient = &LogClient{}
			return
		}

		addr := fmt.Sprintf("%s:%d", host, ddPort)
		c, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fallback to log client")
			ddClient = &LogClient{}
			return
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		ddClient = c
	})
	return ddClient
}

func logBumpFail(fn, key string, val float64, err error) {
	log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
}
