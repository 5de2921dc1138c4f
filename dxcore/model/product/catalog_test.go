/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package product

import (
	stderrors "errors"
	"testing"

	"dirpx.dev/dxsolid/dxcore/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	data := []byte(`
- name: apple
  color: green
  size: small
- name: house
  color: Red
  size: YUGE
`)
	products, err := LoadCatalog(data)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "apple", products[0].Name())
	assert.Equal(t, Red, products[1].Color())
	assert.Equal(t, Yuge, products[1].Size())
}

func TestLoadCatalog_Empty(t *testing.T) {
	products, err := LoadCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoadCatalog_ReportsEveryInvalidEntry(t *testing.T) {
	data := []byte(`
- name: ""
  color: green
  size: small
- name: kite
  color: blue
  size: medium
- name: boat
  color: purple
  size: large
`)
	_, err := LoadCatalog(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog[0]")
	assert.Contains(t, err.Error(), "catalog[2]")
	assert.NotContains(t, err.Error(), "catalog[1]")
}

func TestLoadCatalog_NullEntry(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"tilde", "- ~\n- name: apple\n  color: green\n  size: small\n"},
		{"bare dash", "-\n- name: apple\n  color: green\n  size: small\n"},
		{"null keyword", "- name: apple\n  color: green\n  size: small\n- null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := LoadCatalog([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, products)

			var verr *errors.ValidationError
			require.True(t, stderrors.As(err, &verr), "error = %v", err)
			assert.Equal(t, "Product", verr.Type)
			assert.Equal(t, "Name", verr.Field)
		})
	}
}

func TestLoadCatalog_NotASequence(t *testing.T) {
	_, err := LoadCatalog([]byte("name: apple\n"))
	assert.Error(t, err)
}

func TestDefaultCatalog(t *testing.T) {
	assert.Equal(t, []string{"apple", "tree", "house"}, names(DefaultCatalog()))
}
