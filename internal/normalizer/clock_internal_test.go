package normalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnitSystemClockTimestamp(t *testing.T) {
	assert.InDelta(
		t,
		float64(time.Now().UnixNano())/float64(time.Second),
		systemClock{}.Timestamp(),
		1,
		"should return current timestamp in seconds",
	)
}
