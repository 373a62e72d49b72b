package main_test

import (
	"context"
	"testing"

	main "github.com/fwojciec/echoquill/cmd/echoquill-server"
	"github.com/fwojciec/echoquill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := &main.App{
		Addr:      "127.0.0.1:0",
		Generator: &mock.StoryGenerator{},
	}

	require.NoError(t, app.Run(ctx))
}

func TestApp_Run_InvalidAddr(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Addr:      "not-an-address",
		Generator: &mock.StoryGenerator{},
	}

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
