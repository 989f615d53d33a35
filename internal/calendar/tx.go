package calendar

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const maxTxAttempts = 3

// inSerializableTx выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// Проверка пересечений и фиксация должны быть атомарны относительно других
// писателей той же пары (день, проживающий); Postgres при нарушении
// сериализуемости откатывает одну из транзакций с кодом 40001, и только
// такие сбои повторяются — ограниченное число раз.
func inSerializableTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = db.Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
