package parser

import (
	"io"
	"time"
)

const (
	// StdinSource — источник "-" читается из stdin
	StdinSource = "-"

	DefaultTimeout = 30 * time.Second
)

// ParseOptions опции парсинга
type ParseOptions struct {
	SkipValidation bool
	// Stdin подменяет os.Stdin для источника "-"
	Stdin io.Reader
	// Timeout для загрузки по URL, по умолчанию DefaultTimeout
	Timeout time.Duration
}
