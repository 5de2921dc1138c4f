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

package spec

import (
	stderrors "errors"
	"iter"
	"testing"

	"dirpx.dev/dxsolid/dxcore/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	even     = Func[int](func(n int) bool { return n%2 == 0 })
	positive = Func[int](func(n int) bool { return n > 0 })
)

// counting wraps a specification and records how often it was evaluated.
type counting struct {
	inner Specification[int]
	calls int
}

func (c *counting) IsSatisfied(n int) bool {
	c.calls++
	return c.inner.IsSatisfied(n)
}

func TestAnd_NilOperand(t *testing.T) {
	tests := []struct {
		name      string
		first     Specification[int]
		second    Specification[int]
		wantField string
	}{
		{"nil first", nil, even, "first"},
		{"nil second", even, nil, "second"},
		{"both nil", nil, nil, "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := And(tt.first, tt.second)
			require.Error(t, err)
			assert.Nil(t, s)

			var verr *errors.ValidationError
			require.True(t, stderrors.As(err, &verr))
			assert.Equal(t, "AndSpecification", verr.Type)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestOrNot_NilOperand(t *testing.T) {
	_, err := Or[int](even, nil)
	var verr *errors.ValidationError
	require.True(t, stderrors.As(err, &verr))
	assert.Equal(t, "second", verr.Field)

	_, err = Not[int](nil)
	require.True(t, stderrors.As(err, &verr))
	assert.Equal(t, "NotSpecification", verr.Type)
}

func TestAnd_IsConjunction(t *testing.T) {
	s, err := And[int](even, positive)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		if got, want := s.IsSatisfied(n), even(n) && positive(n); got != want {
			t.Fatalf("And.IsSatisfied(%d) = %v, want %v", n, got, want)
		}
	})
}

func TestOr_IsDisjunction(t *testing.T) {
	s, err := Or[int](even, positive)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		if got, want := s.IsSatisfied(n), even(n) || positive(n); got != want {
			t.Fatalf("Or.IsSatisfied(%d) = %v, want %v", n, got, want)
		}
	})
}

func TestNot_Negates(t *testing.T) {
	s, err := Not[int](even)
	require.NoError(t, err)
	assert.True(t, s.IsSatisfied(3))
	assert.False(t, s.IsSatisfied(4))
}

func TestAnd_ShortCircuits(t *testing.T) {
	second := &counting{inner: positive}
	s, err := And[int](even, second)
	require.NoError(t, err)

	assert.False(t, s.IsSatisfied(3))
	assert.Equal(t, 0, second.calls, "second operand evaluated although first failed")

	assert.True(t, s.IsSatisfied(4))
	assert.Equal(t, 1, second.calls)
}

func TestBetterFilter_PreservesOrder(t *testing.T) {
	var f BetterFilter[int]
	got := Slice[int](f, []int{5, 2, 8, 3, 6, 1}, even)
	assert.Equal(t, []int{2, 8, 6}, got)
}

func TestBetterFilter_NoMatches(t *testing.T) {
	var f BetterFilter[int]
	assert.Empty(t, Slice[int](f, []int{1, 3, 5}, even))
	assert.Empty(t, Slice[int](f, nil, even))
}

func TestBetterFilter_IsLazy(t *testing.T) {
	naturals := func(yield func(int) bool) {
		for n := 0; ; n++ {
			if !yield(n) {
				return
			}
		}
	}

	tracked := &counting{inner: even}
	var f BetterFilter[int]
	seq := f.Filter(iter.Seq[int](naturals), tracked)
	assert.Equal(t, 0, tracked.calls, "filter evaluated before being ranged over")

	var got []int
	for n := range seq {
		got = append(got, n)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 2, 4}, got)
	assert.Equal(t, 5, tracked.calls)
}

func TestBetterFilter_IsSubsequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(-100, 100)).Draw(t, "items")

		var want []int
		for _, n := range items {
			if even(n) {
				want = append(want, n)
			}
		}

		var f BetterFilter[int]
		got := Slice[int](f, items, even)
		if len(got) != len(want) {
			t.Fatalf("Filter() returned %d items, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Filter()[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})
}
