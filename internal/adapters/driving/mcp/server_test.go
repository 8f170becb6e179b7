package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil cleaner service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCleanerService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Cleaner: &mockCleanerService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("cleaner only is valid", func(t *testing.T) {
		ports := &Ports{Cleaner: &mockCleanerService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Cleaner:  &mockCleanerService{},
			History:  &mockHistoryService{},
			Settings: &mockSettingsService{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("history without cleaner is invalid", func(t *testing.T) {
		ports := &Ports{History: &mockHistoryService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCleanerService)
	})
}

func TestNewServer_NilPorts(t *testing.T) {
	server, err := NewServer(nil)
	assert.Nil(t, server)
	assert.ErrorIs(t, err, ErrMissingCleanerService)
}

func TestServer_Handler(t *testing.T) {
	server, err := NewServer(&Ports{Cleaner: &mockCleanerService{}})
	require.NoError(t, err)

	assert.NotNil(t, server.Handler())
}

func TestServer_RunHTTPStopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Cleaner: &mockCleanerService{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.RunHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}

func TestServer_RunHTTPBadAddress(t *testing.T) {
	server, err := NewServer(&Ports{Cleaner: &mockCleanerService{}})
	require.NoError(t, err)

	err = server.RunHTTP(context.Background(), "127.0.0.1:-1")
	assert.Error(t, err)
}
