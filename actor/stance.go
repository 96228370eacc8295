package actor

// Stance is the posture of an actor.
type Stance uint8

const (
	StanceStand Stance = iota
	StanceCrawl
	// StanceWait is a crawl whose key has been released but that has no headroom to stand up yet.
	StanceWait
)

func (s Stance) String() string {
	switch s {
	case StanceStand:
		return "stand"
	case StanceCrawl:
		return "crawl"
	case StanceWait:
		return "wait"
	}
	return "unknown"
}

// Crawling reports whether the stance uses the reduced hitbox.
func (s Stance) Crawling() bool {
	return s != StanceStand
}
