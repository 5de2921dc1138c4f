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

package family

import (
	"bytes"
	stderrors "errors"
	"testing"

	"dirpx.dev/dxsolid/dxcore/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	john  = Person{Name: "John"}
	chris = Person{Name: "Chris"}
	mary  = Person{Name: "Mary"}
)

func johnsFamily(t *testing.T) *Relationships {
	t.Helper()
	var r Relationships
	require.NoError(t, r.AddParentAndChild(john, chris))
	require.NoError(t, r.AddParentAndChild(john, mary))
	return &r
}

// spyBrowser records every query Research makes.
type spyBrowser struct {
	inner   RelationshipBrowser
	queries []string
}

func (s *spyBrowser) FindAllChildrenOf(name string) []Person {
	s.queries = append(s.queries, name)
	return s.inner.FindAllChildrenOf(name)
}

func TestRelationships_AddParentAndChild_StoresBothDirections(t *testing.T) {
	var r Relationships
	require.NoError(t, r.AddParentAndChild(john, chris))

	assert.Equal(t, []Relation{
		{From: john, Kind: Parent, To: chris},
		{From: chris, Kind: Child, To: john},
	}, r.relations)
	assert.Equal(t, 2, r.Len())
}

func TestRelationships_AddParentAndChild_Invalid(t *testing.T) {
	var r Relationships
	err := r.AddParentAndChild(Person{}, chris)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Person.Name")
	assert.Equal(t, 0, r.Len())
}

func TestRelationships_FindAllChildrenOf(t *testing.T) {
	r := johnsFamily(t)

	assert.Equal(t, []Person{chris, mary}, r.FindAllChildrenOf("John"))
	assert.Empty(t, r.FindAllChildrenOf("Chris"), "children are not parents")
	assert.Empty(t, r.FindAllChildrenOf("Nobody"))
}

func TestNewResearch_ReportsJohnsChildren(t *testing.T) {
	spy := &spyBrowser{inner: johnsFamily(t)}
	var out bytes.Buffer

	research, err := NewResearch(spy, &out)
	require.NoError(t, err)

	assert.Equal(t, []Person{chris, mary}, research.Findings())
	assert.Equal(t, "John has a child called Chris\nJohn has a child called Mary\n", out.String())
	assert.Equal(t, []string{"John"}, spy.queries)
}

func TestNewResearch_NilBrowser(t *testing.T) {
	r, err := NewResearch(nil, nil)
	assert.Nil(t, r)

	var verr *errors.ValidationError
	require.True(t, stderrors.As(err, &verr))
	assert.Equal(t, "browser", verr.Field)
}

func TestNewResearch_NilWriterDiscards(t *testing.T) {
	research, err := NewResearch(johnsFamily(t), nil)
	require.NoError(t, err)
	assert.Len(t, research.Findings(), 2)
}

func TestResearch_Investigate(t *testing.T) {
	var r Relationships
	require.NoError(t, r.AddParentAndChild(john, chris))
	require.NoError(t, r.AddParentAndChild(mary, Person{Name: "Ann"}))

	var out bytes.Buffer
	research, err := NewResearch(&r, &out)
	require.NoError(t, err)

	found, err := research.Investigate("Mary")
	require.NoError(t, err)
	assert.Equal(t, []Person{{Name: "Ann"}}, found)
	assert.Equal(t, []Person{chris, {Name: "Ann"}}, research.Findings())
	assert.Contains(t, out.String(), "Mary has a child called Ann\n")
}

// Research works with any browser, not just Relationships.
func TestNewResearch_AlternativeBrowser(t *testing.T) {
	browser := staticBrowser{"John": {mary}}
	research, err := NewResearch(browser, nil)
	require.NoError(t, err)
	assert.Equal(t, []Person{mary}, research.Findings())
}

type staticBrowser map[string][]Person

func (b staticBrowser) FindAllChildrenOf(name string) []Person { return b[name] }

func TestRelation_String(t *testing.T) {
	assert.Equal(t, "John is parent of Chris", Relation{From: john, Kind: Parent, To: chris}.String())
}
