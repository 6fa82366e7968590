package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies every error that crosses the service boundary so
// handlers and CLI clients can tell the cases apart.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindReference
	KindConstraint
	KindAuthorization
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindReference:
		return "reference_error"
	case KindConstraint:
		return "constraint_violation"
	case KindAuthorization:
		return "authorization_error"
	case KindNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Reference(format string, args ...any) *Error {
	return &Error{Kind: KindReference, Msg: fmt.Sprintf(format, args...)}
}

func Constraint(msg string, err error) *Error {
	return &Error{Kind: KindConstraint, Msg: msg, Err: err}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification from an error chain. Unclassified
// errors report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// postgres error codes the schema can produce
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// FromDB translates gorm/pgx errors into the taxonomy:
// foreign key violations become reference errors (the referenced user or
// book does not exist), unique/not-null/check violations become
// constraint violations, record-not-found stays a not-found. Anything
// else passes through unclassified.
func FromDB(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Msg: op, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return &Error{Kind: KindReference, Msg: op, Err: err}
		case pgUniqueViolation, pgNotNullViolation, pgCheckViolation:
			return &Error{Kind: KindConstraint, Msg: op, Err: err}
		}
	}

	// gorm also surfaces duplicate keys via its own sentinel
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: KindConstraint, Msg: op, Err: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}
