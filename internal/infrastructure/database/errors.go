package database

import (
	"errors"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// MySQL server error numbers
const (
	mysqlDuplicateEntry   = 1062
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	mysqlCheckConstraint  = 3819
	mysqlColumnCannotNull = 1048
)

// classify maps a driver error onto the domain taxonomy, keeping the driver
// error in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlCheckConstraint, mysqlColumnCannotNull:
			return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrDatabase, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if liteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrDatabase, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrDatabase, err)
}

// isUniqueViolation reports whether err is a unique-key violation.
func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// classifyCredentialInsert is classify with unique violations reported as
// a duplicate email, the only unique column on principal tables.
func classifyCredentialInsert(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrDuplicateEmail, err)
	}
	return classify(err)
}
