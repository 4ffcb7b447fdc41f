/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/x-xyz/ensrecords/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

// Metrics prefixes keys with the package name and forwards them to the
// shared statsd client.
type Metrics struct {
	pkgName string
	ddTags  []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// tags keeps a broken tag list from taking the caller down, the metric is
// still sent with the default tags and the panic is counted.
func (mt *Metrics) tags(tags []string) (res []string) {
	defer func() {
		if err := recover(); err != nil {
			client().Count(mt.key("tags.panic"), 1, []string{"tag:" + strings.Join(tags, "#")}, ddRate)
			res = append([]string{}, mt.ddTags...)
		}
	}()
	return append(append([]string{}, mt.ddTags...), parseTag(tags)...)
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	// datadog doesn't have a function to compute average only, gauge is the closest
	if err := client().Gauge(mt.key(key), val, mt.tags(tags), ddRate); err != nil {
		logBumpFail("BumpAvg", key, val, err)
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := client().Count(mt.key(key), int64(val), mt.tags(tags), ddRate); err != nil {
		logBumpFail("BumpSum", key, val, err)
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := client().Histogram(mt.key(key), val, mt.tags(tags), ddRate); err != nil {
		logBumpFail("BumpHistogram", key, val, err)
	}
}

// BumpTime is a special version of BumpHistogram which is specialized for
// timers. Calling it starts the timer, and it returns a value on which End()
// can be called to indicate finishing the timer. A convenient way of
// recording the duration of a function is calling it like such at the top of
// the function:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.tags(tags),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	dur := float64(msec) + float64(nsec)*1e-6

	if err := client().TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		logBumpFail("BumpTime", t.key, dur, err)
	}
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
