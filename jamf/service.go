// jamf/service.go
/* The jamf package implements the domain operations of the adapter on top of
the httpclient package: inventory lookups for computers, mobile devices and
users, and the fire-and-forget device-action commands (lock, erase, lost
mode). Every operation validates its arguments locally before touching the
network. */
package jamf

import (
	"github.com/harborsec/go-jamf-classic-adapter/httpclient"
	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// Service exposes the Classic API operations. It holds no mutable state;
// every call is an independent request/response cycle.
type Service struct {
	client *httpclient.Client
	log    logger.Logger
}

// NewService creates a Service over an already-built client.
func NewService(client *httpclient.Client) *Service {
	return &Service{client: client, log: client.Logger}
}
