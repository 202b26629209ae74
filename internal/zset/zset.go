// Package zset implements an in-process sorted-set container modeled on
// Redis sorted-set semantics: a set of unique members each carrying an
// int64 score, supporting point, score-range, and rank-range queries in
// logarithmic expected time via a dual index (a member->score hash index
// mirrored against a span-augmented skip list ordered by (score,
// member)).
//
// The container is not safe for concurrent use; see the package-level
// Iterator for the single exception to "every read is a plain method
// call" (its fail-fast epoch check).
package zset

// Entry is an observable (member, score) pair returned from queries and
// iteration.
type Entry[K comparable] struct {
	Member K
	Score  int64
}

// ZSet is the sorted-set container: a member index (dict) mirrored
// against an ordered index (skip list) under every mutation.
type ZSet[K comparable] struct {
	dict map[K]int64
	sl   *skipList[K]
	// epoch is bumped on every mutation; Iterator snapshots it to detect
	// concurrent modification through a non-iterator path.
	epoch uint64
}

// New constructs a ZSet ordered by the given member comparator and score
// handler. Use NewStringZSet/NewInt64ZSet/NewInt32ZSet for the common
// cases with natural member order and ascending scores.
func New[K comparable](cmp MemberComparator[K], scores ScoreHandler) *ZSet[K] {
	return &ZSet[K]{
		dict: make(map[K]int64),
		sl:   newSkipList[K](cmp, scores),
	}
}

// NewStringZSet constructs a ZSet of string members ordered by natural
// lexicographic order, with ascending scores.
func NewStringZSet() *ZSet[string] {
	return New[string](StringComparator(), AscendingScoreHandler())
}

// NewInt64ZSet constructs a ZSet of int64 members ordered by natural
// numeric order, with ascending scores.
func NewInt64ZSet() *ZSet[int64] {
	return New[int64](Int64Comparator(), AscendingScoreHandler())
}

// NewInt32ZSet constructs a ZSet of int32 members ordered by natural
// numeric order, with ascending scores.
func NewInt32ZSet() *ZSet[int32] {
	return New[int32](Int32Comparator(), AscendingScoreHandler())
}

// Add inserts member at score, or updates its score if already present.
// A no-op if member is already present with the same score (per the
// configured score handler).
func (z *ZSet[K]) Add(score int64, member K) {
	old, exists := z.dict[member]
	if exists {
		if z.sl.scores.Compare(old, score) == 0 {
			return
		}
		z.sl.deleteMember(member, old)
	}
	z.dict[member] = score
	z.sl.insert(member, score)
	z.epoch++
}

// AddIfAbsent inserts member at score only if it is not already present.
// Returns whether the insertion happened.
func (z *ZSet[K]) AddIfAbsent(score int64, member K) bool {
	if _, exists := z.dict[member]; exists {
		return false
	}
	z.dict[member] = score
	z.sl.insert(member, score)
	z.epoch++
	return true
}

// IncrBy combines member's current score with delta via the configured
// score handler's Sum and returns the new score. If member is absent its
// new score is delta itself.
func (z *ZSet[K]) IncrBy(delta int64, member K) int64 {
	old, exists := z.dict[member]
	var newScore int64
	if exists {
		newScore = z.sl.scores.Sum(old, delta)
	} else {
		newScore = delta
	}
	z.Add(newScore, member)
	return newScore
}

// Remove deletes member if present, returning its prior score and true;
// returns (0, false) if member was absent.
func (z *ZSet[K]) Remove(member K) (int64, bool) {
	score, exists := z.dict[member]
	if !exists {
		return 0, false
	}
	delete(z.dict, member)
	z.sl.deleteMember(member, score)
	z.epoch++
	return score, true
}

// Score returns member's score and true, or (0, false) if absent.
func (z *ZSet[K]) Score(member K) (int64, bool) {
	score, exists := z.dict[member]
	return score, exists
}

// Rank returns the 0-based ascending-order rank of member, or -1 if
// absent.
func (z *ZSet[K]) Rank(member K) int {
	score, exists := z.dict[member]
	if !exists {
		return -1
	}
	r := z.sl.getRank(member, score)
	if r == 0 {
		return -1
	}
	return r - 1
}

// RevRank returns the 0-based rank of member counting from the end, or
// -1 if absent.
func (z *ZSet[K]) RevRank(member K) int {
	r := z.Rank(member)
	if r == -1 {
		return -1
	}
	return z.sl.length - 1 - r
}

// Cardinality returns the number of members in the set.
func (z *ZSet[K]) Cardinality() int {
	return z.sl.length
}

// MemberByRank returns the entry at 0-based rank (negative counts from
// the end), or false if out of range.
func (z *ZSet[K]) MemberByRank(rank int) (Entry[K], bool) {
	idx, ok := normalizeRank(rank, z.sl.length)
	if !ok {
		return Entry[K]{}, false
	}
	n := z.sl.getNodeByRank(idx + 1)
	if n == nil {
		return Entry[K]{}, false
	}
	return Entry[K]{Member: n.member, Score: n.score}, true
}

// RevMemberByRank returns the entry at 0-based rank counting from the
// end, or false if out of range.
func (z *ZSet[K]) RevMemberByRank(rank int) (Entry[K], bool) {
	idx, ok := normalizeRank(rank, z.sl.length)
	if !ok {
		return Entry[K]{}, false
	}
	n := z.sl.getNodeByRank(z.sl.length - idx)
	if n == nil {
		return Entry[K]{}, false
	}
	return Entry[K]{Member: n.member, Score: n.score}, true
}

// PopFirst removes and returns the entry at rank 0 (the lowest-ranked
// entry), or false if the set is empty.
func (z *ZSet[K]) PopFirst() (Entry[K], bool) {
	return z.popByRank(1)
}

// PopLast removes and returns the entry at the highest rank, or false if
// the set is empty.
func (z *ZSet[K]) PopLast() (Entry[K], bool) {
	return z.popByRank(z.sl.length)
}

func (z *ZSet[K]) popByRank(rank1based int) (Entry[K], bool) {
	if z.sl.length == 0 {
		return Entry[K]{}, false
	}
	n := z.sl.getNodeByRank(rank1based)
	if n == nil {
		return Entry[K]{}, false
	}
	e := Entry[K]{Member: n.member, Score: n.score}
	delete(z.dict, n.member)
	z.sl.deleteMember(n.member, n.score)
	z.epoch++
	return e, true
}

// RangeByRank returns entries at 0-based ranks [start, end] inclusive,
// ascending order, honoring negative indices. Empty if the range is
// empty.
func (z *ZSet[K]) RangeByRank(start, end int) []Entry[K] {
	return z.rangeByRank(start, end, false)
}

// RevRangeByRank is RangeByRank with ranks counted from the end: rank 0
// is the last entry, and entries are returned in descending
// ordered-index order.
func (z *ZSet[K]) RevRangeByRank(start, end int) []Entry[K] {
	return z.rangeByRank(start, end, true)
}

func (z *ZSet[K]) rangeByRank(start, end int, reverse bool) []Entry[K] {
	s, e, empty := normalizeRankRange(start, end, z.sl.length)
	if empty {
		return nil
	}
	count := e - s + 1
	result := make([]Entry[K], 0, count)

	var n *node[K]
	if reverse {
		n = z.sl.getNodeByRank(z.sl.length - s)
	} else {
		n = z.sl.getNodeByRank(s + 1)
	}
	for i := 0; i < count && n != nil; i++ {
		result = append(result, Entry[K]{Member: n.member, Score: n.score})
		if reverse {
			n = n.backward
		} else {
			n = n.levels[0].forward
		}
	}
	return result
}

// RangeByScore returns every entry whose score satisfies r, ascending
// order.
func (z *ZSet[K]) RangeByScore(r RangeSpec) []Entry[K] {
	// offset=0 never yields ErrInvalidArgument.
	result, _ := z.RangeByScoreWithOptions(r, 0, -1, false)
	return result
}

// RevRangeByScore returns every entry whose score satisfies r,
// descending order.
func (z *ZSet[K]) RevRangeByScore(r RangeSpec) []Entry[K] {
	result, _ := z.RangeByScoreWithOptions(r, 0, -1, true)
	return result
}

// RangeByScoreWithOptions returns entries whose score satisfies r,
// skipping the first offset matches (in the requested order) and
// returning at most limit entries (a negative limit means unlimited).
// offset must be >= 0.
func (z *ZSet[K]) RangeByScoreWithOptions(r RangeSpec, offset, limit int, reverse bool) ([]Entry[K], error) {
	if offset < 0 {
		return nil, ErrInvalidArgument
	}
	spec := normalizeRange(r, z.sl.scores)
	if spec.empty() {
		return nil, nil
	}

	var n *node[K]
	if reverse {
		n = z.sl.lastInRange(spec)
	} else {
		n = z.sl.firstInRange(spec)
	}

	for offset > 0 && n != nil {
		if reverse {
			n = n.backward
		} else {
			n = n.levels[0].forward
		}
		offset--
	}

	var result []Entry[K]
	for n != nil && (limit < 0 || len(result) < limit) {
		if reverse {
			if !spec.gteMin(n.score) {
				break
			}
		} else if !spec.lteMax(n.score) {
			break
		}
		result = append(result, Entry[K]{Member: n.member, Score: n.score})
		if reverse {
			n = n.backward
		} else {
			n = n.levels[0].forward
		}
	}
	return result, nil
}

// Count returns the number of entries whose score satisfies r.
func (z *ZSet[K]) Count(r RangeSpec) int {
	spec := normalizeRange(r, z.sl.scores)
	first := z.sl.firstInRange(spec)
	if first == nil {
		return 0
	}
	last := z.sl.lastInRange(spec)
	return z.sl.getRank(last.member, last.score) - z.sl.getRank(first.member, first.score) + 1
}

// RemoveRangeByScore removes every entry whose score satisfies r,
// returning the count removed.
func (z *ZSet[K]) RemoveRangeByScore(r RangeSpec) int {
	spec := normalizeRange(r, z.sl.scores)
	if spec.empty() {
		return 0
	}
	removed := z.sl.deleteRangeByScore(spec)
	for _, e := range removed {
		delete(z.dict, e.Member)
	}
	if len(removed) > 0 {
		z.epoch++
	}
	return len(removed)
}

// RemoveByRank removes and returns the entry at 0-based rank (negative
// counts from the end), or false if out of range.
func (z *ZSet[K]) RemoveByRank(rank int) (Entry[K], bool) {
	idx, ok := normalizeRank(rank, z.sl.length)
	if !ok {
		return Entry[K]{}, false
	}
	return z.popByRank(idx + 1)
}

// RemoveRangeByRank removes entries at 0-based ranks [start, end]
// inclusive (negative indices count from the end), returning the count
// removed.
func (z *ZSet[K]) RemoveRangeByRank(start, end int) int {
	s, e, empty := normalizeRankRange(start, end, z.sl.length)
	if empty {
		return 0
	}
	removed := z.sl.deleteRangeByRank(s+1, e+1)
	for _, entry := range removed {
		delete(z.dict, entry.Member)
	}
	if len(removed) > 0 {
		z.epoch++
	}
	return len(removed)
}

// Limit trims the set to its first n entries in ascending ordered-index
// order, removing the tail. A no-op if the set already has <= n
// entries. Returns the count removed.
func (z *ZSet[K]) Limit(n int) int {
	if n < 0 {
		n = 0
	}
	if z.sl.length <= n {
		return 0
	}
	return z.RemoveRangeByRank(n, -1)
}

// RevLimit trims the set to its last n entries in ascending
// ordered-index order, removing the head. A no-op if the set already has
// <= n entries. Returns the count removed.
func (z *ZSet[K]) RevLimit(n int) int {
	if n < 0 {
		n = 0
	}
	if z.sl.length <= n {
		return 0
	}
	return z.RemoveRangeByRank(0, z.sl.length-n-1)
}

// GetAll returns every entry in ascending ordered-index order.
func (z *ZSet[K]) GetAll() []Entry[K] {
	if z.sl.length == 0 {
		return nil
	}
	return z.RangeByRank(0, z.sl.length-1)
}

// Dump renders a textual sanity-check view of the ordered index. Not a
// machine-readable format, not for persistence.
func (z *ZSet[K]) Dump() string {
	return z.sl.dump()
}
