package mc

import "errors"

var (
	ErrNamespaceUnderBasePath = errors.New("namespace not allowed under a fixed-namespace context")
	ErrInvalidNamespace       = errors.New("invalid namespace")
	ErrEmptyName              = errors.New("empty resource name")
	ErrInvalidPath            = errors.New("invalid resource path")
	ErrDoubleDot              = errors.New("resource path contains '..'")
	ErrLimitRequired          = errors.New("single-result selector requires limit of 0 or 1")
	ErrNonPlayerType          = errors.New("player selector cannot target a non-player type")
	ErrDuplicateResource      = errors.New("resource already registered")
)
