package checkout

import "strconv"

// idGenerator hands out millisecond-epoch order ids, matching the format of
// the persisted history. The monotonic guard covers two checkouts landing in
// the same clock tick: the second id advances to the next unused millisecond.
type idGenerator struct {
	last int64
}

func (g *idGenerator) next(nowMilli int64) string {
	if nowMilli <= g.last {
		nowMilli = g.last + 1
	}
	g.last = nowMilli
	return strconv.FormatInt(nowMilli, 10)
}

// seed advances the guard past an already-used id, e.g. when the ledger was
// loaded from storage.
func (g *idGenerator) seed(id string) {
	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	if ms > g.last {
		g.last = ms
	}
}
