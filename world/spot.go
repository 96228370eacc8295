package world

// SpotKind identifies which state a Spot is in.
type SpotKind uint8

const (
	// SpotFull marks a cell that has not been generated yet and is assumed solid. It is the zero value
	// so that freshly allocated chunks start out Full.
	SpotFull SpotKind = iota
	// SpotEmpty marks traversable void.
	SpotEmpty
	// SpotRich marks a materialised voxel holding a Block.
	SpotRich
)

func (k SpotKind) String() string {
	switch k {
	case SpotFull:
		return "full"
	case SpotEmpty:
		return "empty"
	case SpotRich:
		return "rich"
	}
	return "unknown"
}

// Spot is the state of one voxel cell. Only Rich spots carry a Block.
type Spot struct {
	kind  SpotKind
	block *Block
}

// Empty returns an Empty spot.
func Empty() Spot { return Spot{kind: SpotEmpty} }

// Full returns a Full spot.
func Full() Spot { return Spot{kind: SpotFull} }

// Rich returns a Rich spot holding b.
func Rich(b *Block) Spot { return Spot{kind: SpotRich, block: b} }

func (s Spot) Kind() SpotKind { return s.kind }
func (s Spot) IsEmpty() bool  { return s.kind == SpotEmpty }
func (s Spot) IsFull() bool   { return s.kind == SpotFull }
func (s Spot) IsRich() bool   { return s.kind == SpotRich }

// Block returns the block held by a Rich spot.
func (s Spot) Block() (*Block, bool) {
	return s.block, s.kind == SpotRich
}
