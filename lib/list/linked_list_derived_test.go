package list

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestLinkedList_NewLinkedListFrom(t *testing.T) {
	dlist := NewLinkedListFrom(slices.Values([]int{4, 5}))
	require.Equal(t, "4 ==> 5", dlist.String())

	dlist = NewLinkedListFrom[int](nil)
	require.True(t, dlist.IsEmpty())
}

func TestLinkedList_AppendValuesAndSeq(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValues(4, 5)
	require.Equal(t, "4 ==> 5", dlist.String())

	dlist.AppendSeq(slices.Values(lo.Range(3)))
	requireElements(t, dlist, 4, 5, 0, 1, 2)

	dlist.AppendValues()
	requireElements(t, dlist, 4, 5, 0, 1, 2)
}

func TestLinkedList_InsertAll(t *testing.T) {
	dlist := newMultipleElementList(t)
	require.NoError(t, dlist.InsertAll(2, 4, 5))
	require.Equal(t, "4 ==> 3 ==> 4 ==> 5 ==> 5 ==> 7 ==> 1 ==> 6", dlist.String())

	require.NoError(t, dlist.InsertAll(dlist.Len(), 8, 9))
	require.NoError(t, dlist.InsertAll(0, -1))
	requireElements(t, dlist, -1, 4, 3, 4, 5, 5, 7, 1, 6, 8, 9)

	err := dlist.InsertAll(100, 1)
	require.ErrorIs(t, err, ErrLinkedListIndexOutOfRange)
	require.Equal(t, int64(11), dlist.Len())
}

func TestLinkedList_IndexOf(t *testing.T) {
	dlist := newMultipleElementList(t)
	require.Equal(t, int64(0), dlist.IndexOf(4))
	require.Equal(t, int64(5), dlist.IndexOf(6))
	require.Equal(t, int64(-1), dlist.IndexOf(8))

	dlist.PushBack(6)
	dlist.PushBack(4)
	requireElements(t, dlist, 4, 3, 5, 7, 1, 6, 6, 4)
	require.Equal(t, int64(7), dlist.LastIndexOf(4))
	require.Equal(t, int64(6), dlist.LastIndexOf(6))
	require.Equal(t, int64(-1), dlist.LastIndexOf(8))
	require.Equal(t, int64(0), dlist.IndexOf(4))
}

func TestLinkedList_Contains(t *testing.T) {
	dlist := newMultipleElementList(t)
	require.True(t, dlist.Contains(7))
	require.False(t, dlist.Contains(8))
	require.False(t, NewLinkedList[int]().Contains(0))
}

func TestLinkedList_RemoveOccurrence(t *testing.T) {
	dlist := NewLinkedListOf(1, 2, 3, 2, 1)
	require.True(t, dlist.Remove(2))
	requireElements(t, dlist, 1, 3, 2, 1)
	require.True(t, dlist.RemoveLastOccurrence(1))
	requireElements(t, dlist, 1, 3, 2)
	require.True(t, dlist.RemoveFirstOccurrence(1))
	requireElements(t, dlist, 3, 2)
	require.False(t, dlist.Remove(9))
	require.False(t, dlist.RemoveLastOccurrence(9))
	requireElements(t, dlist, 3, 2)
}

func TestLinkedList_EqualFnOption(t *testing.T) {
	dlist := NewLinkedList[string](
		WithLinkedListEqualFn[string](strings.EqualFold),
		WithLinkedListEqualFn[string](nil),
	)
	dlist.AppendValues("Alpha", "beta", "GAMMA")
	require.Equal(t, int64(2), dlist.IndexOf("gamma"))
	require.True(t, dlist.Contains("ALPHA"))
	require.True(t, dlist.Remove("BETA"))
	requireElements(t, dlist, "Alpha", "GAMMA")

	other := NewLinkedListOf("alpha", "gamma")
	require.True(t, dlist.Equal(other))
	require.False(t, other.Equal(dlist))
}

func TestLinkedList_ToSlice(t *testing.T) {
	require.Equal(t, []int{4, 3, 5, 7, 1, 6}, newMultipleElementList(t).ToSlice())
	require.Equal(t, []int{}, NewLinkedList[int]().ToSlice())

	dlist := NewLinkedListOf(1, 2)
	dlist.Clear()
	empty := dlist.ToSlice()
	require.NotNil(t, empty)
	require.Len(t, empty, 0)
}

func TestLinkedList_CopyTo(t *testing.T) {
	dlist := NewLinkedListOf(1, 2, 3)

	small := []int{9}
	res := dlist.CopyTo(small)
	require.Equal(t, []int{1, 2, 3}, res)
	require.Equal(t, []int{9}, small)

	exact := make([]int, 3)
	res = dlist.CopyTo(exact)
	require.Equal(t, []int{1, 2, 3}, exact)
	require.Same(t, &exact[0], &res[0])

	large := []int{9, 9, 9, 9, 9}
	res = dlist.CopyTo(large)
	require.Equal(t, []int{1, 2, 3}, res)
	// The slot after the copied elements is reset as the terminator.
	require.Equal(t, []int{1, 2, 3, 0, 9}, large)

	ptrs := NewLinkedListOf(lo.ToPtr("a"))
	dst := []*string{lo.ToPtr("x"), lo.ToPtr("y")}
	ptrs.CopyTo(dst)
	require.Equal(t, "a", *dst[0])
	require.Nil(t, dst[1])
}

func TestLinkedList_Foreach(t *testing.T) {
	dlist := newMultipleElementList(t)
	expected := []int{4, 3, 5, 7, 1, 6}
	err := dlist.Foreach(func(idx int64, v int) error {
		require.Equal(t, expected[idx], v)
		return nil
	})
	require.NoError(t, err)

	errStop := errors.New("stop")
	visited := 0
	err = dlist.Foreach(func(idx int64, v int) error {
		visited++
		if v == 5 {
			return errStop
		}
		return nil
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 3, visited)
	require.NoError(t, dlist.Foreach(nil))

	reverseExpected := lo.Reverse(append([]int{}, expected...))
	dlist.ReverseForeach(func(idx int64, v int) {
		require.Equal(t, reverseExpected[idx], v)
	})
	dlist.ReverseForeach(nil)
}

func TestLinkedList_IteratorsBreak(t *testing.T) {
	dlist := newMultipleElementList(t)
	for idx, v := range dlist.All() {
		if idx == 2 {
			require.Equal(t, 5, v)
			break
		}
	}
	for idx, v := range dlist.Backward() {
		if v == 7 {
			require.Equal(t, int64(3), idx)
			break
		}
	}
}

func TestLinkedList_Equal(t *testing.T) {
	dlist := newMultipleElementList(t)
	require.True(t, dlist.Equal(dlist))
	require.True(t, dlist.Equal(NewLinkedListOf(4, 3, 5, 7, 1, 6)))
	require.False(t, dlist.Equal(NewLinkedListOf(4, 3, 5, 7, 1)))
	require.False(t, dlist.Equal(NewLinkedListOf(4, 3, 5, 7, 1, 8)))
	require.False(t, dlist.Equal(nil))
	var typedNil *doublyLinkedList[int]
	require.False(t, dlist.Equal(typedNil))
	require.True(t, NewLinkedList[int]().Equal(NewLinkedList[int]()))
}

func TestLinkedList_CloneIsDeep(t *testing.T) {
	dlist := newMultipleElementList(t)
	clone := dlist.Clone()
	require.True(t, clone.Equal(dlist))
	require.Equal(t, dlist.String(), clone.String())
	require.NotSame(t, dlist.(*doublyLinkedList[int]).root, clone.(*doublyLinkedList[int]).root)

	_, err := clone.Set(0, 100)
	require.NoError(t, err)
	clone.PushBack(8)
	_, err = clone.RemoveAt(1)
	require.NoError(t, err)
	requireElements(t, dlist, 4, 3, 5, 7, 1, 6)
	requireElements(t, clone, 100, 5, 7, 1, 6, 8)

	dlist.Clear()
	requireElements(t, clone, 100, 5, 7, 1, 6, 8)
}

type point struct {
	x, y int
}

func (p point) String() string {
	return "(" + strconv.Itoa(p.x) + "," + strconv.Itoa(p.y) + ")"
}

func TestLinkedList_String(t *testing.T) {
	require.Equal(t, "", NewLinkedList[int]().String())
	require.Equal(t, "8", NewLinkedListOf(8).String())
	require.Equal(t, "a ==> b", NewLinkedListOf("a", "b").String())
	require.Equal(t, "(1,2) ==> (3,4)", NewLinkedListOf(point{1, 2}, point{3, 4}).String())
}

func TestDeque_OfferPeekPoll(t *testing.T) {
	dq := NewLinkedList[int]()
	_, ok := dq.Peek()
	require.False(t, ok)
	_, ok = dq.PeekLast()
	require.False(t, ok)
	_, ok = dq.Poll()
	require.False(t, ok)
	_, ok = dq.PollLast()
	require.False(t, ok)

	require.True(t, dq.Offer(2))
	require.True(t, dq.OfferFirst(1))
	require.True(t, dq.OfferLast(3))
	requireElements(t, dq, 1, 2, 3)

	v, ok := dq.PeekFirst()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = dq.PeekLast()
	require.True(t, ok)
	require.Equal(t, 3, v)
	requireElements(t, dq, 1, 2, 3)

	v, ok = dq.PollLast()
	require.True(t, ok)
	require.Equal(t, 3, v)
	v, ok = dq.PollFirst()
	require.True(t, ok)
	require.Equal(t, 1, v)
	requireElements(t, dq, 2)
}

func TestDeque_StackAndElement(t *testing.T) {
	dq := NewLinkedList[int]()
	_, err := dq.Element()
	require.ErrorIs(t, err, ErrLinkedListIsEmpty)
	_, err = dq.Pop()
	require.ErrorIs(t, err, ErrLinkedListIsEmpty)
	_, err = dq.RemoveHead()
	require.ErrorIs(t, err, ErrLinkedListIsEmpty)

	for _, v := range lo.Range(4) {
		dq.Push(v)
	}
	v, err := dq.Element()
	require.NoError(t, err)
	require.Equal(t, 0, v)

	popped := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		v, err = dq.Pop()
		require.NoError(t, err)
		popped = append(popped, v)
	}
	require.Equal(t, []int{3, 2, 1}, popped)

	v, err = dq.RemoveHead()
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.True(t, dq.IsEmpty())
}
