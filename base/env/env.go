package env

import (
	"os"
)

// PodName example: k8ssta-ensrecords-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// HostIP is the node address where the datadog agent listens, if any.
func HostIP() string {
	return os.Getenv("HOSTIP")
}
