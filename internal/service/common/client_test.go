package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	client, err := Dial(context.Background(), "")
	require.ErrorIs(t, err, errAddressRequired)
	require.Nil(t, client)
}

func TestDial_AppliesOptions(t *testing.T) {
	t.Parallel()

	client, err := Dial(context.Background(), "localhost:9090", WithCallTimeout(42*time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	require.Equal(t, 42*time.Second, client.callTimeout)
}

func TestClient_callContext(t *testing.T) {
	t.Parallel()

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()

		client := &Client{callTimeout: time.Minute}

		ctx, cancel := client.callContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		require.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("without timeout", func(t *testing.T) {
		t.Parallel()

		client := &Client{}

		ctx, cancel := client.callContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		require.False(t, ok)
	})
}

func TestClient_RequiresActor(t *testing.T) {
	t.Parallel()

	client := &Client{}
	ctx := context.Background()

	_, err := client.SubmitAlarm(ctx, nil, nil)
	require.ErrorIs(t, err, errActorRequired)

	require.ErrorIs(t, client.CancelAlarm(ctx, nil, 1), errActorRequired)

	_, err = client.ChangeAlarm(ctx, nil, 1, 10)
	require.ErrorIs(t, err, errActorRequired)

	_, err = client.SuspendAlarm(ctx, nil, 1)
	require.ErrorIs(t, err, errActorRequired)

	_, err = client.ReactivateAlarm(ctx, nil, 1)
	require.ErrorIs(t, err, errActorRequired)
}

func TestClient_CloseNil(t *testing.T) {
	t.Parallel()

	var client *Client

	require.NoError(t, client.Close())
	require.NoError(t, (&Client{}).Close())
}
