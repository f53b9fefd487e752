package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineNotifierFeedsNotificationLog(t *testing.T) {
	app := newTestApp(t, newMemPersister())
	app.ClearNotifications()

	n := PipelineNotifier{App: app}
	n.FileProcessed("portfolio.csv")
	n.AnalysisComplete(3)

	notifs := app.Notifications()
	require.Len(t, notifs, 2)
	// most recent first
	assert.Equal(t, "Analysis Complete", notifs[0].Title)
	assert.Equal(t, "Successfully analyzed 3 files.", notifs[0].Message)
	assert.Equal(t, "File Processed", notifs[1].Title)
	assert.Equal(t, "portfolio.csv processed successfully.", notifs[1].Message)
	assert.Equal(t, 2, app.UnreadCount())
}
