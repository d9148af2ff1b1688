package config

import "errors"

var (
	ErrInvalidAdapterConfigs       = errors.New("invalid adapter configuration")
	ErrInvalidAppConfigs           = errors.New("invalid app configuration")
	ErrInvalidWorkerConfigs        = errors.New("invalid worker configuration")
	ErrInvalidObservabilityConfigs = errors.New("invalid observability configuration")
)
