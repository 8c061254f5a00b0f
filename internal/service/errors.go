package service

import "errors"

var (
	ErrEmptyPrompt = errors.New("prompt must not be empty")
	ErrConfig      = errors.New("upstream configuration error")
	ErrUpstream    = errors.New("upstream AI call failed")
	ErrEmptyResult = errors.New("generated result is empty")
)
