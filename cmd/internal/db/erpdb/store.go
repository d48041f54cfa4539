package erpdb

import (
	"database/sql"
)

// Store предоставляет операции ERP-базы (прайс-лист дистрибьютора).
// ERP-база опциональна: сервис может работать без нее, тогда вместо Store
// передается nil и резолвер цен возвращает пустые результаты.
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
