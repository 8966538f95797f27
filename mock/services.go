package mock

import (
	"fmt"

	"github.com/centraunit/digo"
)

type Config struct {
	DSN string
}

type Database interface {
	Connect() error
	DSN() string
}

type Cache interface {
	Get(key string) any
	Database() Database
}

type ComplexServiceInterface interface {
	GetDB() Database
	GetCache() Cache
}

type MockDB struct {
	config      *Config
	isConnected bool
}

func NewMockDB(config *Config) (*MockDB, error) {
	if config.DSN == "" {
		return nil, fmt.Errorf("empty dsn")
	}
	return &MockDB{config: config}, nil
}

func (*MockDB) Constructors() []digo.Constructor {
	return []digo.Constructor{digo.Inject(NewMockDB)}
}

func (m *MockDB) Connect() error {
	m.isConnected = true
	return nil
}

func (m *MockDB) DSN() string { return m.config.DSN }

func (m *MockDB) IsConnected() bool { return m.isConnected }

type MockCache struct {
	db Database
}

func NewMockCache(db Database) *MockCache {
	return &MockCache{db: db}
}

func (*MockCache) Constructors() []digo.Constructor {
	return []digo.Constructor{digo.Inject(NewMockCache)}
}

func (m *MockCache) Get(key string) any { return nil }

func (m *MockCache) Database() Database { return m.db }

type ComplexService struct {
	DB    Database
	Cache Cache
}

func (*ComplexService) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(db Database, cache Cache) *ComplexService {
			return &ComplexService{DB: db, Cache: cache}
		}),
	}
}

func (c *ComplexService) GetDB() Database { return c.DB }

func (c *ComplexService) GetCache() Cache { return c.Cache }

// Deep dependency chain: DeepService1 -> DeepService2 -> DeepService3 -> string
type DeepService3 interface {
	GetValue() string
}

type DeepService2 interface {
	GetService3() DeepService3
}

type DeepService1 interface {
	GetService2() DeepService2
}

type DeepImpl3 struct {
	Value string
}

func (*DeepImpl3) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(value string) *DeepImpl3 { return &DeepImpl3{Value: value} }),
	}
}

func (d *DeepImpl3) GetValue() string { return d.Value }

type DeepImpl2 struct {
	svc3 DeepService3
}

func (*DeepImpl2) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(svc3 DeepService3) *DeepImpl2 { return &DeepImpl2{svc3: svc3} }),
	}
}

func (d *DeepImpl2) GetService3() DeepService3 { return d.svc3 }

type DeepImpl1 struct {
	svc2 DeepService2
}

func (*DeepImpl1) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(svc2 DeepService2) *DeepImpl1 { return &DeepImpl1{svc2: svc2} }),
	}
}

func (d *DeepImpl1) GetService2() DeepService2 { return d.svc2 }
