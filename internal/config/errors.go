package config

import "errors"

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrInvalidRules  = errors.New("config: invalid locale rules")
)
