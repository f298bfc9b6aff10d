// Package core implements service.Service on top of the remote platform.
package core

import (
	"github.com/aoradev/aora-go/internal/config"
	"github.com/aoradev/aora-go/internal/platform"
	"github.com/aoradev/aora-go/internal/service"
)

// AppService holds the immutable configuration and the platform handle. It
// has no other state, so one instance serves concurrent calls.
type AppService struct {
	Config   config.Configuration
	Platform platform.Platform
}

var _ service.Service = (*AppService)(nil)

func New(cfg config.Configuration, p platform.Platform) *AppService {
	return &AppService{
		Config:   cfg,
		Platform: p,
	}
}
