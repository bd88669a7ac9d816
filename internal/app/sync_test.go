package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/services/lead"
	"github.com/thenoetrevino/leadboard/internal/testutil"
)

// subscriptionSettle gives the daemon time to apply a subscribe message
const subscriptionSettle = 50 * time.Millisecond

func sqliteConfig(dataDir, board string) *config.Config {
	cfg := config.Default()
	cfg.Board.Storage = config.StorageSQLite
	cfg.Board.DataDir = dataDir
	cfg.Board.Name = board
	return cfg
}

func openApp(t *testing.T, cfg *config.Config, client events.EventPublisher) *app.App {
	t.Helper()
	a, err := app.New(context.Background(), cfg, app.WithEventPublisher(client))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSync_MoveReachesOtherProcess(t *testing.T) {
	server, socketPath := testutil.SetupTestDaemon(t)
	dataDir := t.TempDir()

	writerClient := testutil.SetupTestClient(t, socketPath)
	readerClient := testutil.SetupTestClient(t, socketPath)
	require.True(t, testutil.WaitForCondition(t, func() bool { return server.ClientCount() == 2 },
		2*time.Second, "both clients connected"))

	require.NoError(t, readerClient.Subscribe(config.DefaultBoardName))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch, err := readerClient.Listen(ctx)
	require.NoError(t, err)
	time.Sleep(subscriptionSettle)

	writer := openApp(t, sqliteConfig(dataDir, config.DefaultBoardName), writerClient)
	reader := openApp(t, sqliteConfig(dataDir, config.DefaultBoardName), readerClient)

	_, err = writer.LeadService.MoveCard(lead.MoveCardRequest{CardID: "3", To: models.ColumnWon})
	require.NoError(t, err)

	event := testutil.WaitForEvent(t, ch, 2*time.Second)
	assert.Equal(t, events.EventBoardChanged, event.Type)
	assert.Equal(t, config.DefaultBoardName, event.Board)
	assert.Equal(t, "3", event.CardID)

	// the reader still holds the old board until it reloads
	testutil.AssertCardIn(t, reader.Store, "3", models.ColumnQualified)
	reader.LeadService.Reload()
	testutil.AssertCardIn(t, reader.Store, "3", models.ColumnWon)
}

func TestSync_OtherBoardsAreFiltered(t *testing.T) {
	_, socketPath := testutil.SetupTestDaemon(t)
	dataDir := t.TempDir()

	writerClient := testutil.SetupTestClient(t, socketPath)
	readerClient := testutil.SetupTestClient(t, socketPath)
	require.NoError(t, readerClient.Subscribe("partners"))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch, err := readerClient.Listen(ctx)
	require.NoError(t, err)
	time.Sleep(subscriptionSettle)

	writer := openApp(t, sqliteConfig(dataDir, config.DefaultBoardName), writerClient)
	_, err = writer.LeadService.MoveCardToNextColumn("1")
	require.NoError(t, err)

	testutil.WaitForNoEvent(t, ch, 300*time.Millisecond)
}

func TestSync_RawPeerEventIsDelivered(t *testing.T) {
	_, socketPath := testutil.SetupTestDaemon(t)

	readerClient := testutil.SetupTestClient(t, socketPath)
	require.NoError(t, readerClient.Subscribe(config.DefaultBoardName))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch, err := readerClient.Listen(ctx)
	require.NoError(t, err)

	_, encoder, _ := testutil.ConnectRawClient(t, socketPath)
	testutil.SendSubscribeMessage(t, encoder, "")
	time.Sleep(subscriptionSettle)

	testutil.SendEventMessage(t, encoder, events.Event{
		Type:      events.EventBoardChanged,
		Board:     config.DefaultBoardName,
		Origin:    "cli-peer",
		CardID:    "7",
		Timestamp: time.Now(),
	})

	event := testutil.WaitForEvent(t, ch, 2*time.Second)
	assert.Equal(t, "7", event.CardID)
	assert.Equal(t, "cli-peer", event.Origin)
}
