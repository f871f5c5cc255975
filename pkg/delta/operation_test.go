package delta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Constructors(t *testing.T) {
	ins := NewInsert("abc", Attributes{"bold": true})
	assert.True(t, ins.IsInsert())
	assert.Equal(t, 3, ins.Len())
	assert.Equal(t, "abc", ins.Text())
	assert.False(t, ins.IsPlain())

	del := NewDelete(5)
	assert.True(t, del.IsDelete())
	assert.Equal(t, 5, del.Len())
	assert.Nil(t, del.Attributes())

	ret := NewRetain(4, nil)
	assert.True(t, ret.IsRetain())
	assert.True(t, ret.IsPlain())
}

func TestOperation_IsEmpty(t *testing.T) {
	assert.True(t, NewInsert("", nil).IsEmpty())
	assert.True(t, NewDelete(0).IsEmpty())
	assert.True(t, NewRetain(0, nil).IsEmpty())
	assert.True(t, NewRetain(0, Attributes{"bold": true}).IsEmpty())
}

func TestOperation_Equal(t *testing.T) {
	a := NewInsert("abc", Attributes{"bold": true})
	b := NewInsert("abc", Attributes{"bold": true})
	c := NewInsert("abc", nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestOperation_JSONRoundTrip_Insert(t *testing.T) {
	op := NewInsert("abc", Attributes{"bold": true})
	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{"insert":"abc","attributes":{"bold":true}}`, string(data))

	var out Operation
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, op.Equal(out))
}

func TestOperation_JSONRoundTrip_Delete(t *testing.T) {
	op := NewDelete(3)
	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{"delete":3}`, string(data))

	var out Operation
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, op.Equal(out))
}

func TestOperation_JSONRoundTrip_Retain(t *testing.T) {
	op := NewRetain(5, Attributes{"italic": true})
	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{"retain":5,"attributes":{"italic":true}}`, string(data))

	var out Operation
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, op.Equal(out))
}

func TestOperation_UnmarshalJSON_MissingKeyIsMalformed(t *testing.T) {
	var op Operation
	err := json.Unmarshal([]byte(`{"attributes":{"bold":true}}`), &op)
	assert.ErrorIs(t, err, ErrMalformedOperation)
}

func TestOperation_UnmarshalJSON_AmbiguousKeyIsMalformed(t *testing.T) {
	var op Operation
	err := json.Unmarshal([]byte(`{"insert":"a","delete":1}`), &op)
	assert.ErrorIs(t, err, ErrMalformedOperation)
}

func TestOperation_UnmarshalJSON_NegativeLengthIsMalformed(t *testing.T) {
	var op Operation
	err := json.Unmarshal([]byte(`{"delete":-1}`), &op)
	assert.ErrorIs(t, err, ErrMalformedOperation)

	err = json.Unmarshal([]byte(`{"retain":-5}`), &op)
	assert.ErrorIs(t, err, ErrMalformedOperation)
}
