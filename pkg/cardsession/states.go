package cardsession

// LetterState zarfın yapısal durumu.
type LetterState int

const (
	LetterClosed LetterState = iota
	LetterOpening
	LetterOpen
)

func (s LetterState) String() string {
	switch s {
	case LetterClosed:
		return "closed"
	case LetterOpening:
		return "opening"
	case LetterOpen:
		return "open"
	}
	return "unknown"
}

// RevealState kart içeriğinin açılma (unfurl) durumu.
// Yalnızca LetterOpen iken Unfurling/Unfurled olabilir.
type RevealState int

const (
	RevealCollapsed RevealState = iota
	RevealUnfurling
	RevealUnfurled
)

func (s RevealState) String() string {
	switch s {
	case RevealCollapsed:
		return "collapsed"
	case RevealUnfurling:
		return "unfurling"
	case RevealUnfurled:
		return "unfurled"
	}
	return "unknown"
}

// Focus düzenleme modunda hangi form bölümünün aktif olduğu.
// Yalnızca hangi içerik önizlemesinin gösterileceğini belirler,
// ses üzerinde etkisi yoktur.
type Focus int

const (
	FocusRecipient Focus = iota
	FocusContent
	FocusNone
)

// Mode oturumun türü: kart hazırlayan mı, kartı açan alıcı mı.
type Mode int

const (
	ModeAuthoring Mode = iota
	ModeViewing
)
