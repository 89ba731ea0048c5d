package francaidl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilehmann/francaidl"
)

func Test_ParseAndShow(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

interface Basic {
	method ping {
		out {
			Boolean ok
		}
	}
}
`
	doc, err := francaidl.Parse(src)
	require.NoError(err)
	require.NotNil(doc)

	out := francaidl.Show(doc, francaidl.ShowOptions{AttrNames: true, NodeNames: true})
	assert.Contains(out, "Document:")
	assert.Contains(out, "Interface <objects[0]>:")
	assert.Contains(out, "Method <members[0]>:")
}

func Test_Parse_ReturnsErrorOnBadInput(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	_, err := francaidl.Parse("not a valid document")
	require.Error(err)
	assert.Contains(err.Error(), "unexpected token")
}
