package number

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bazaar-dev/bazaar/internal/database"
	"github.com/bazaar-dev/bazaar/internal/entity"
)

var repoTracer = otel.Tracer("github.com/bazaar-dev/bazaar/repository/number")

// ErrValueTaken is returned when the unique index on the value column rejects
// an insert. It is the only retryable outcome of Insert: the constraint, not
// any application-level check, decides whether a value is free.
var ErrValueTaken = errors.New("number value already allocated")

// Repository encapsulates the append-only allocated numbers table.
type Repository struct {
	writer *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{writer: conns.Writer}
}

// Insert commits a candidate value in a single atomic write. A uniqueness
// collision maps to ErrValueTaken; every other storage error passes through.
func (r *Repository) Insert(ctx context.Context, value int) error {
	ctx, span := repoTracer.Start(ctx, "NumberRepository.Insert", trace.WithAttributes(attribute.Int("number.value", value)))
	defer span.End()

	row := &entity.AllocatedNumber{Value: value}
	_, err := r.writer.NewInsert().Model(row).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			span.SetStatus(codes.Error, "value taken")
			return ErrValueTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return err
	}
	return nil
}

// pgUniqueViolation is the SQLSTATE for unique constraint failures.
const pgUniqueViolation = "23505"

// mysqlDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

// isUniqueViolation inspects driver error types, never message text.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return false
}
