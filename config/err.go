package config

import (
	"errors"

	"github.com/ezrec/uartmon/translate"
)

var f = translate.From

var (
	ErrKindUnknown      = errors.New(f("unknown value"))
	ErrDeviceMissing    = errors.New(f("device required"))
	ErrNegative         = errors.New(f("must not be negative"))
	ErrExpressionResult = errors.New(f("expression is not a 32-bit unsigned integer"))
)

// ErrProfile reports a profile that could not be loaded.
type ErrProfile struct {
	Path string
	Err  error
}

func (err *ErrProfile) Error() string {
	return f("profile %v: %v", err.Path, err.Err)
}

func (err *ErrProfile) Unwrap() error {
	return err.Err
}

// ErrField reports an invalid profile field.
type ErrField struct {
	Field string
	Value any
	Err   error
}

func (err *ErrField) Error() string {
	return f("%v %v: %v", err.Field, err.Value, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}

// ErrExpression reports an expression that did not evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v): %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
