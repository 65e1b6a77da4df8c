package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"

	"github.com/GraziArcH/domain-sales/internal/shared/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{"mysql", "mysql"},
		{"", "mysql"},
		{"postgres", "postgres"},
		{"sqlite", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.DatabaseConfig{Driver: tt.driver, Database: ":memory:"})
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestOpenWith_ConfiguresPoolAndPings(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing()

	cfg := &config.DatabaseConfig{MaxIdleConns: 2, MaxOpenConns: 4, ConnMaxLifetime: 1}
	database, err := openWith(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), cfg)
	require.NoError(t, err)

	underlying, err := database.DB()
	require.NoError(t, err)
	assert.Equal(t, 4, underlying.Stats().MaxOpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenWith_PingFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err = openWith(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &config.DatabaseConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")
}

func TestInitAndCloseAll(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", Database: "file:conn_registry?mode=memory&cache=shared"}

	database, err := Init(Plan, cfg)
	require.NoError(t, err)
	assert.Same(t, database, Get(Plan))
	assert.Nil(t, Get(Identity))

	require.NoError(t, CloseAll())
	assert.Nil(t, Get(Plan))
}
