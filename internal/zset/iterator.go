package zset

// Iterator is a non-owning, non-restartable forward cursor over a
// ZSet's ordered index, obtained via ZSet.Scan. It is not safe to use
// after any mutation of the underlying ZSet performed through a path
// other than the iterator's own Remove: such a mutation bumps the
// ZSet's modification epoch, and the next Next or Remove call on a
// stale iterator reports ErrConcurrentModification instead of silently
// returning wrong results.
type Iterator[K comparable] struct {
	z     *ZSet[K]
	next  *node[K]
	last  *node[K]
	epoch uint64
}

// Scan returns a lazy, finite iterator over every entry starting at the
// given 0-based offset, in ascending ordered-index order. An offset at
// or beyond the current cardinality yields an iterator with no
// elements.
func (z *ZSet[K]) Scan(offset int) *Iterator[K] {
	var start *node[K]
	if offset >= 0 && offset < z.sl.length {
		start = z.sl.getNodeByRank(offset + 1)
	}
	return &Iterator[K]{z: z, next: start, epoch: z.epoch}
}

// HasNext reports whether Next would yield another element.
func (it *Iterator[K]) HasNext() bool {
	return it.next != nil
}

// Next returns the next entry in ascending ordered-index order. It
// returns ErrConcurrentModification if the ZSet was mutated through a
// non-iterator path since this iterator was created or last advanced,
// or ErrEndOfSequence once the sequence is exhausted.
func (it *Iterator[K]) Next() (Entry[K], error) {
	if it.epoch != it.z.epoch {
		return Entry[K]{}, ErrConcurrentModification
	}
	if it.next == nil {
		return Entry[K]{}, ErrEndOfSequence
	}
	n := it.next
	it.last = n
	it.next = n.levels[0].forward
	return Entry[K]{Member: n.member, Score: n.score}, nil
}

// Remove deletes the entry most recently returned by Next. It returns
// ErrInvalidIteratorState if Next has not been called since construction
// or since the last Remove, or ErrConcurrentModification if the ZSet
// was mutated through a non-iterator path in the meantime.
func (it *Iterator[K]) Remove() error {
	if it.epoch != it.z.epoch {
		return ErrConcurrentModification
	}
	if it.last == nil {
		return ErrInvalidIteratorState
	}
	member, score := it.last.member, it.last.score
	delete(it.z.dict, member)
	it.z.sl.deleteMember(member, score)
	it.z.epoch++
	it.epoch = it.z.epoch
	it.last = nil
	return nil
}
