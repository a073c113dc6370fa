package provider

import "errors"

var ErrEmptyCompletion = errors.New("provider returned no choices")
