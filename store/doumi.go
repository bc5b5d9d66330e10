package store

import (
	"github.com/jinzhu/gorm"

	"github.com/doumi-inc/doumi-api/schema"
)

// doumi main datastore
type DoumiCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber, encPubKey, displayName, role string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	UpdateAccountMetadata(string, map[string]interface{}) error
	UpdateAccountActivity(accountNumber string) error
	DeleteAccount(string) error
}

// DoumiStore is an implementation of DoumiCore
type DoumiStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewDoumiStore(ormDB *gorm.DB, mongo MongoStore) *DoumiStore {
	return &DoumiStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *DoumiStore) Ping() error {
	return s.ormDB.DB().Ping()
}
