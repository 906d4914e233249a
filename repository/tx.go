// repository/tx.go
package repository

import "gorm.io/gorm"

// TxManager runs a function inside a single database transaction. Any error
// returned by fn rolls the whole transaction back.
type TxManager interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
