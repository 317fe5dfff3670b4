package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// HealthCheckerOf returns v's own checker when it has one, otherwise an OkHealthChecker.
func HealthCheckerOf(v any) HealthChecker {
	if hc, ok := v.(HealthChecker); ok && hc != nil {
		return hc
	}
	return NewOkHealthChecker()
}
