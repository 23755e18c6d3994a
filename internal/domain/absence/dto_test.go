package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRequestParseRange(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		req := SyncRequest{DataInicio: "2025-03-01", DataFim: "2025-03-31"}
		inicio, fim, err := req.ParseRange()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), inicio)
		assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), fim)
	})

	t.Run("missing dates", func(t *testing.T) {
		for _, req := range []SyncRequest{
			{},
			{DataInicio: "2025-03-01"},
			{DataFim: "2025-03-31"},
		} {
			_, _, err := req.ParseRange()
			assert.ErrorIs(t, err, ErrDateRangeRequired)
		}
	})

	t.Run("unparseable dates", func(t *testing.T) {
		req := SyncRequest{DataInicio: "01/03/2025", DataFim: "2025-03-31"}
		_, _, err := req.ParseRange()
		assert.ErrorIs(t, err, ErrDateRangeRequired)
	})

	t.Run("window wider than 30 days", func(t *testing.T) {
		req := SyncRequest{DataInicio: "2025-03-01", DataFim: "2025-04-05"}
		_, _, err := req.ParseRange()
		assert.ErrorIs(t, err, ErrDateRangeTooWide)
	})

	t.Run("exactly 30 days is accepted", func(t *testing.T) {
		req := SyncRequest{DataInicio: "2025-03-01", DataFim: "2025-03-31"}
		_, _, err := req.ParseRange()
		assert.NoError(t, err)
	})
}
