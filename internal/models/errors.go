package models

import "errors"

var (
	ErrEmptyDataset       = errors.New("empty dataset")
	ErrActivitySource     = errors.New("activity source error")
	ErrRenderService      = errors.New("render service error")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUpload             = errors.New("upload error")
	ErrPublish            = errors.New("publish error")
)
