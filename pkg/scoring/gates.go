package scoring

// SelfMatchGate excludes a user from being matched with themselves.
type SelfMatchGate struct{}

func (SelfMatchGate) Name() string { return "self_match" }

func (SelfMatchGate) Gate(v *ViewerContext, c *CandidateContext) bool {
	return v.UserID == c.UserID
}

// BlockedPairGate excludes pairs where either side has blocked the other.
type BlockedPairGate struct{}

func (BlockedPairGate) Name() string { return "blocked_pair" }

func (BlockedPairGate) Gate(v *ViewerContext, c *CandidateContext) bool {
	return v.Blocked[c.UserID] || c.Blocked[v.UserID]
}
