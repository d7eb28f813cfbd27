package component

// Kind discriminates enemy behavior variants
type Kind uint8

const (
	KindNormal Kind = iota
	KindFast
	KindTank
	KindShooter
	KindZigzag
	KindSplitter
	KindMini
	KindCharger
	KindBomber
	KindBoss

	kindCount
)

// Kinds lists every enemy kind in declaration order
var Kinds = [...]Kind{
	KindNormal, KindFast, KindTank, KindShooter, KindZigzag,
	KindSplitter, KindMini, KindCharger, KindBomber, KindBoss,
}

var kindNames = [kindCount]string{
	KindNormal:   "normal",
	KindFast:     "fast",
	KindTank:     "tank",
	KindShooter:  "shooter",
	KindZigzag:   "zigzag",
	KindSplitter: "splitter",
	KindMini:     "mini",
	KindCharger:  "charger",
	KindBomber:   "bomber",
	KindBoss:     "boss",
}

// killScore is awarded when a player bullet destroys an enemy of the kind
var killScore = [kindCount]int{
	KindNormal:   70,
	KindFast:     70,
	KindTank:     220,
	KindShooter:  120,
	KindZigzag:   120,
	KindSplitter: 180,
	KindMini:     50,
	KindCharger:  130,
	KindBomber:   200,
	KindBoss:     600,
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Score returns the kill reward; unknown kinds score as normal
func (k Kind) Score() int {
	if k >= kindCount {
		return killScore[KindNormal]
	}
	return killScore[k]
}

// Shoots reports whether the kind carries a gun
func (k Kind) Shoots() bool {
	return k == KindShooter || k == KindBoss
}
