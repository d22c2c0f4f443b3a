package social

// Thread is a derived summary row: the most recent message exchanged with
// one conversation partner. Threads are never stored.
type Thread struct {
	PeerID string  `json:"peerId"`
	Last   Message `json:"last"`
}

// DeriveThreads reduces the unordered message log to one row per distinct
// peer of the given user. A peer keeps the message with the strictly latest
// timestamp seen so far, so a tie keeps the first one encountered. Rows come
// out in the order peers were first seen during the scan. The reduction is
// O(n) and recomputed on every call.
func DeriveThreads(userID string, messages []Message) []Thread {
	index := map[string]int{}
	order := make([]Thread, 0)
	for _, m := range messages {
		if m.FromID != userID && m.ToID != userID {
			continue
		}
		peer := m.FromID
		if m.FromID == userID {
			peer = m.ToID
		}
		idx, ok := index[peer]
		if !ok {
			index[peer] = len(order)
			order = append(order, Thread{PeerID: peer, Last: m})
			continue
		}
		if parseTime(m.Time).After(parseTime(order[idx].Last.Time)) {
			order[idx].Last = m
		}
	}
	return order
}
