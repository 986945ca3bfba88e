package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLog_AppendAndRecords(t *testing.T) {
	l := NewLog(0)
	l.Append("CREATE TABLE t (id INT)", "OK", 0, time.Now())
	l.Append("INSERT INTO t VALUES (1)", "OK", 1, time.Now())

	recs := l.Records()
	assert.Len(t, recs, 2)
	assert.Equal(t, int64(1), recs[0].Seq)
	assert.Equal(t, int64(2), recs[1].Seq)
	assert.Equal(t, 2, l.Len())
}

func TestLog_BoundedCapacityDropsOldest(t *testing.T) {
	l := NewLog(2)
	l.Append("stmt 1", "OK", 0, time.Now())
	l.Append("stmt 2", "OK", 0, time.Now())
	l.Append("stmt 3", "OK", 0, time.Now())

	recs := l.Records()
	assert.Len(t, recs, 2)
	assert.Equal(t, "stmt 2", recs[0].Stmt)
	assert.Equal(t, "stmt 3", recs[1].Stmt)
}

func TestNewLog_DefaultsCapacity(t *testing.T) {
	l := NewLog(-5)
	assert.Equal(t, DefaultCapacity, l.capacity)
}
