package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAckInputWireShape(t *testing.T) {
	raw := `{"accountId":"acc","queueId":"q1","acks":[{"lease_id":"L1"}]}`

	var in AckQueueMessagesInput
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	require.Len(t, in.Acks, 1)
	assert.Equal(t, "L1", in.Acks[0].LeaseID)
	assert.Nil(t, in.Retries)
}

func TestBulkDeleteInputWireShape(t *testing.T) {
	raw := `{"accountId":"acc","namespaceId":"ns","keys":["a","b","c"]}`

	var in BulkDeleteKVKeysInput
	require.NoError(t, json.Unmarshal([]byte(raw), &in))
	assert.Equal(t, []string{"a", "b", "c"}, in.Keys)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", deref(nil))
	v := "x"
	assert.Equal(t, "x", deref(&v))
}
