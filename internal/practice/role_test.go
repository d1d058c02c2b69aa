package practice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_UnmarshalNull(t *testing.T) {
	var p Practice
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"myRole":null}`), &p))
	assert.Equal(t, RoleNone, p.MyRole)
	assert.False(t, p.IsModerator())
}

func TestRole_RoundTrip(t *testing.T) {
	for _, role := range []Role{RoleSeller, RoleBuyer, RoleModerator, RoleObserver} {
		data, err := json.Marshal(role)
		require.NoError(t, err)

		var back Role
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, role, back)
	}
}

func TestRole_UnmarshalUnknown(t *testing.T) {
	var r Role
	err := json.Unmarshal([]byte(`"COACH"`), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown Role")
}

func TestRole_MarshalNoneAsNull(t *testing.T) {
	data, err := json.Marshal(RoleNone)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestEventName_Known(t *testing.T) {
	assert.True(t, EventPracticeStarted.Known())
	assert.True(t, EventPracticeFinished.Known())
	assert.False(t, EventName("practice-archived").Known())
	assert.False(t, EventName("").Known())
}
