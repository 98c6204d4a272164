package list

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAccessList(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, *RandomAccessList[string])
	}{
		{
			scenario: "an empty list has a length of zero and no front or back",
			function: testListEmpty,
		},

		{
			scenario: "appended elements are produced in insertion order",
			function: testListAppend,
		},

		{
			scenario: "appending an element twice leaves the list unchanged",
			function: testListAppendDuplicate,
		},

		{
			scenario: "inserting after the back of the list makes the element the new back",
			function: testListInsertAfterBack,
		},

		{
			scenario: "inserting after an element in the middle links it between the anchor and its successor",
			function: testListInsertAfterMiddle,
		},

		{
			scenario: "inserting after an element which is not in the list fails",
			function: testListInsertAfterNotFound,
		},

		{
			scenario: "replacing an element re-keys the node without moving it",
			function: testListReplace,
		},

		{
			scenario: "replacing with a value already in the list fails",
			function: testListReplaceDuplicate,
		},

		{
			scenario: "replacing a range substitutes the elements between the endpoints",
			function: testListReplaceRange,
		},

		{
			scenario: "replacing a range with no values collapses the gap",
			function: testListReplaceRangeEmpty,
		},

		{
			scenario: "replacing a range may reuse values of the replaced elements",
			function: testListReplaceRangeReuse,
		},

		{
			scenario: "replacing a range with invalid arguments leaves the list unchanged",
			function: testListReplaceRangeInvalid,
		},

		{
			scenario: "removing elements fixes the front and back of the list",
			function: testListRemove,
		},

		{
			scenario: "clearing the list removes all elements from the index",
			function: testListClear,
		},

		{
			scenario: "neighbors of elements are found by value",
			function: testListPrevNext,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			l := New[string]()
			test.function(t, l)
			l.checkInvariants(t)
		})
	}
}

func testListEmpty(t *testing.T, l *RandomAccessList[string]) {
	assert.Zero(t, l.Len())
	_, found := l.Front()
	assert.False(t, found)
	_, found = l.Back()
	assert.False(t, found)
	assert.Empty(t, l.Values())
}

func testListAppend(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C", "D"} {
		assert.True(t, l.Append(s))
	}
	assertList(t, l, "A", "B", "C", "D")

	v, found := l.Get("C")
	assert.True(t, found)
	assert.Equal(t, "C", v)

	_, found = l.Get("E")
	assert.False(t, found)
}

func testListAppendDuplicate(t *testing.T, l *RandomAccessList[string]) {
	assert.True(t, l.Append("A"))
	assert.True(t, l.Append("B"))
	assert.False(t, l.Append("A"))
	assertList(t, l, "A", "B")
}

func testListInsertAfterBack(t *testing.T, l *RandomAccessList[string]) {
	l.Append("A")
	l.Append("B")
	require.NoError(t, l.InsertAfter("B", "C"))
	assertList(t, l, "A", "B", "C")

	back, _ := l.Back()
	assert.Equal(t, "C", back)
}

func testListInsertAfterMiddle(t *testing.T, l *RandomAccessList[string]) {
	l.Append("A")
	l.Append("C")
	require.NoError(t, l.InsertAfter("A", "B"))
	assertList(t, l, "A", "B", "C")

	prev, _ := l.Prev("B")
	next, _ := l.Next("B")
	assert.Equal(t, "A", prev)
	assert.Equal(t, "C", next)
}

func testListInsertAfterNotFound(t *testing.T, l *RandomAccessList[string]) {
	l.Append("A")
	assert.ErrorIs(t, l.InsertAfter("Z", "B"), ErrKeyNotFound)
	assert.ErrorIs(t, l.InsertAfter("A", "A"), ErrDuplicateElement)
	assertList(t, l, "A")
}

func testListReplace(t *testing.T, l *RandomAccessList[string]) {
	l.Append("A")
	l.Append("B")
	l.Append("C")
	require.NoError(t, l.Replace("B", "X"))
	assertList(t, l, "A", "X", "C")

	_, found := l.Get("B")
	assert.False(t, found)
	v, found := l.Get("X")
	assert.True(t, found)
	assert.Equal(t, "X", v)

	require.NoError(t, l.Replace("X", "X"))
	assert.ErrorIs(t, l.Replace("B", "Y"), ErrKeyNotFound)
	assertList(t, l, "A", "X", "C")
}

func testListReplaceDuplicate(t *testing.T, l *RandomAccessList[string]) {
	l.Append("A")
	l.Append("B")
	assert.ErrorIs(t, l.Replace("A", "B"), ErrDuplicateElement)
	assertList(t, l, "A", "B")
}

func testListReplaceRange(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C", "D", "E"} {
		l.Append(s)
	}
	require.NoError(t, l.ReplaceRange("A", "E", []string{"X", "Y"}))
	assertList(t, l, "A", "X", "Y", "E")

	for _, s := range []string{"B", "C", "D"} {
		assert.False(t, l.Contains(s), s)
	}

	require.NoError(t, l.ReplaceRange("Y", "E", []string{"Z"}))
	assertList(t, l, "A", "X", "Y", "Z", "E")
}

func testListReplaceRangeEmpty(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C"} {
		l.Append(s)
	}
	require.NoError(t, l.ReplaceRange("A", "C", nil))
	assertList(t, l, "A", "C")

	require.NoError(t, l.ReplaceRange("A", "C", nil))
	assertList(t, l, "A", "C")
}

func testListReplaceRangeReuse(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C", "D"} {
		l.Append(s)
	}
	require.NoError(t, l.ReplaceRange("A", "D", []string{"C", "B"}))
	assertList(t, l, "A", "C", "B", "D")
}

func testListReplaceRangeInvalid(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C", "D"} {
		l.Append(s)
	}
	assert.ErrorIs(t, l.ReplaceRange("A", "Z", []string{"X"}), ErrKeyNotFound)
	assert.ErrorIs(t, l.ReplaceRange("Z", "D", []string{"X"}), ErrKeyNotFound)
	assert.ErrorIs(t, l.ReplaceRange("D", "A", []string{"X"}), ErrOutOfOrder)
	assert.ErrorIs(t, l.ReplaceRange("B", "B", []string{"X"}), ErrOutOfOrder)
	assert.ErrorIs(t, l.ReplaceRange("A", "C", []string{"X", "X"}), ErrDuplicateElement)
	assert.ErrorIs(t, l.ReplaceRange("A", "C", []string{"D"}), ErrDuplicateElement)
	assertList(t, l, "A", "B", "C", "D")
}

func testListRemove(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C", "D", "E"} {
		l.Append(s)
	}
	assert.True(t, l.Remove("A"))
	assertList(t, l, "B", "C", "D", "E")

	assert.True(t, l.Remove("C"))
	assertList(t, l, "B", "D", "E")

	assert.True(t, l.Remove("E"))
	assertList(t, l, "B", "D")

	assert.False(t, l.Remove("E"))
	assertList(t, l, "B", "D")

	assert.True(t, l.Remove("B"))
	assert.True(t, l.Remove("D"))
	assertList(t, l)
}

func testListClear(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C"} {
		l.Append(s)
	}
	l.Clear()
	assertList(t, l)
	assert.Zero(t, l.index.Len())

	assert.True(t, l.Append("A"))
	assertList(t, l, "A")
}

func testListPrevNext(t *testing.T, l *RandomAccessList[string]) {
	for _, s := range []string{"A", "B", "C"} {
		l.Append(s)
	}
	_, found := l.Prev("A")
	assert.False(t, found)
	_, found = l.Next("C")
	assert.False(t, found)
	_, found = l.Next("Z")
	assert.False(t, found)

	prev, _ := l.Prev("C")
	assert.Equal(t, "B", prev)
	next, _ := l.Next("A")
	assert.Equal(t, "B", next)
}

func TestZeroValueList(t *testing.T) {
	var l RandomAccessList[int]
	assert.False(t, l.Contains(1))
	assert.False(t, l.Remove(1))
	assert.ErrorIs(t, l.InsertAfter(1, 2), ErrKeyNotFound)

	l.Append(1)
	require.NoError(t, l.InsertAfter(1, 2))
	assert.Equal(t, []int{1, 2}, l.Values())
	l.checkInvariants(t)
}

func TestSharedIndex(t *testing.T) {
	index := NewIndex[int]()
	a := NewWithIndex(index)
	b := NewWithIndex(index)

	a.Append(1)
	a.Append(2)
	b.Append(3)

	assert.Equal(t, 3, index.Len())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())

	owner, found := index.Lookup(3)
	assert.True(t, found)
	assert.Same(t, b, owner)

	// Values held by another list sharing the index are not members.
	assert.False(t, a.Contains(3))
	assert.False(t, b.Append(1))
	assert.False(t, a.Remove(3))
	assert.ErrorIs(t, a.InsertAfter(3, 4), ErrKeyNotFound)
	assert.ErrorIs(t, a.ReplaceRange(1, 3, nil), ErrKeyNotFound)

	a.Clear()
	assert.Equal(t, 1, index.Len())
	assert.True(t, index.Contains(3))

	a.checkInvariants(t)
	b.checkInvariants(t)
}

func TestListString(t *testing.T) {
	l := New[string]()
	l.Append("A")
	l.Append("B")
	assert.Equal(t, "RandomAccessList:\nNode: A Prev:  Next: B\nNode: B Prev: A Next: \n2", l.String())
}

func TestListInvariants(t *testing.T) {
	f := func(seed int64, ops []uint8) bool {
		r := rand.New(rand.NewSource(seed))
		l := New[int]()
		values := l.Values

		for _, op := range ops {
			v := r.Intn(64)
			switch op % 5 {
			case 0, 1:
				l.Append(v)
			case 2:
				l.Remove(v)
			case 3:
				if vs := values(); len(vs) > 0 {
					_ = l.InsertAfter(vs[r.Intn(len(vs))], v)
				}
			case 4:
				if vs := values(); len(vs) > 0 {
					_ = l.Replace(vs[r.Intn(len(vs))], v)
				}
			}
			if !l.invariantsHold() {
				t.Errorf("invariants broken after op %d with value %d:\n%s", op%5, v, l)
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func BenchmarkAppendRemove(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1000; i++ {
		l.Append(i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v := i % 1000
		l.Remove(v)
		l.Append(v)
	}
}

// invariantsHold verifies that the chain and the index are a bijection.
func (l *RandomAccessList[E]) invariantsHold() bool {
	count := 0
	var prev *node[E]
	for n := l.head; n != nil; n = n.next {
		if n.prev != prev || n.parent != l || l.index.lookup(n.value) != n {
			return false
		}
		prev = n
		count++
	}
	if prev != l.tail || count != l.size {
		return false
	}
	owned := 0
	for _, n := range l.index.nodes {
		if n.parent == l {
			owned++
		}
	}
	return owned == count
}

func (l *RandomAccessList[E]) checkInvariants(t *testing.T) {
	t.Helper()
	if !l.invariantsHold() {
		t.Errorf("list chain and index are inconsistent:\n%s", l)
	}
}

func assertList(t *testing.T, l *RandomAccessList[string], v ...string) {
	t.Helper()

	if v == nil {
		v = []string{}
	}

	assert.Equal(t, v, l.Values(), "[forward]")

	backward := []string{}
	for n := l.tail; n != nil; n = n.prev {
		backward = append([]string{n.value}, backward...)
	}
	assert.Equal(t, v, backward, "[backward]")

	if n := l.Len(); n != len(v) {
		t.Errorf("list length mismatch, expected %d but found %d", len(v), n)
	}

	for _, s := range v {
		assert.True(t, l.Contains(s), "index is missing %q", s)
	}
}
