package db

import (
	"database/sql"
)

// Store предоставляет все операции основной базы (каталог и метаданные товаров).
// Пайплайн намеренно не транзакционный: каждая запись вставляется отдельно,
// чтобы сбой одной строки не откатывал остальную партию.
type Store interface {
	Querier
}

// SQLStore реализует Store поверх database/sql.
type SQLStore struct {
	db *sql.DB
	*Queries
}

// NewStore создает новый Store.
func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}
