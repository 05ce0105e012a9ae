package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueKeepsHTMLCharacters(t *testing.T) {
	v, err := StringList{"salt & pepper", "<1 cup> maize meal"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["salt & pepper","<1 cup> maize meal"]`, v)
}

func TestStringListValueEmpty(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(`["only"]`))
	assert.Equal(t, StringList{"only"}, l)

	// malformed and NULL columns decode to an empty list
	require.NoError(t, l.Scan("not json"))
	assert.Equal(t, StringList{}, l)
	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
}

func TestStringListMarshalJSONNeverNull(t *testing.T) {
	out, err := json.Marshal(Recipe{Name: "Kapana"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, []interface{}{}, decoded["ingredients"])
	assert.Equal(t, []interface{}{}, decoded["instructions"])
}
