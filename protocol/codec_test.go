package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	b, err := Encode(MsgGoalScored, GoalScored{Code: "AB12", Side: "left"})
	require.NoError(t, err)

	env, err := DecodeEnvelope(b)
	require.NoError(t, err)
	assert.Equal(t, MsgGoalScored, env.T)

	payload, err := DecodePayload[GoalScored](env)
	require.NoError(t, err)
	assert.Equal(t, "AB12", payload.Code)
	assert.Equal(t, "left", string(payload.Side))
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode("", GoalScored{})
	assert.Error(t, err)

	_, err = Encode(MsgGoalScored, nil)
	assert.Error(t, err)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := DecodeEnvelope(nil)
	assert.Error(t, err)

	_, err = DecodeEnvelope([]byte("{not json"))
	assert.Error(t, err)

	_, err = DecodePayload[GoalScored](Envelope{T: MsgGoalScored})
	assert.Error(t, err)
}
