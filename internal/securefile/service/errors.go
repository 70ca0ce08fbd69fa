package service

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownSignal     = errors.New("unknown activity signal")
	ErrFlowNotFound      = errors.New("auth flow not found")
	ErrNoFileSelected    = errors.New("no file selected")
	ErrUploadNotFound    = errors.New("upload not found")
	ErrThreatNotFound    = errors.New("threat alert not found")
	ErrInvalidBatch      = errors.New("invalid batch action")
	ErrQuestionNotFound  = errors.New("tutorial question not found")
	ErrOptionNotFound    = errors.New("tutorial option not found")
	ErrInvalidEncryption = errors.New("invalid encryption type")
)
