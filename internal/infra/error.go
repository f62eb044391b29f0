package infra

import (
	"errors"

	"stayfinder/internal/pkg/errs"
)

type DataSourceErrorKind string

type DataSourceError struct {
	Kind DataSourceErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e DataSourceError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e DataSourceError) Unwrap() error {
	return e.err
}

func WrapStoreErr(kind DataSourceErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return DataSourceError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind DataSourceErrorKind) bool {
	var e DataSourceError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Data-source-specific error kinds
const (
	KindNotFound     DataSourceErrorKind = "NOT_FOUND"
	KindFetchFailure DataSourceErrorKind = "FETCH_FAILURE"
)
