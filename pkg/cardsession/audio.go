package cardsession

// AudioHandle oturumun sahip olduğu tek ses kaynağı.
// Oturum başına en fazla bir handle vardır ve paylaşılmaz;
// teardown sırasında durdurulup bırakılır.
type AudioHandle interface {
	// PlayFromStart çalmayı her zaman sıfırdan başlatır.
	PlayFromStart()
	// Pause çalmayı durdurur. Çalmıyorken çağrılması sorun değildir.
	Pause()
}

// LoopTrack döngüde çalan müzik kaynağının sunucu tarafı temsili.
// Gerçek çalma istemcide olur; bu model hangi parçanın hangi durumda
// olduğunu oturumla birlikte taşır.
type LoopTrack struct {
	url     string
	playing bool
}

// NewLoopTrack verilen adresteki parça için bir handle oluşturur.
func NewLoopTrack(url string) *LoopTrack {
	return &LoopTrack{url: url}
}

func (t *LoopTrack) PlayFromStart() { t.playing = true }
func (t *LoopTrack) Pause()         { t.playing = false }

// URL parçanın adresi (view tarafına aktarılır).
func (t *LoopTrack) URL() string { return t.url }

// Playing parça şu an çalıyor olarak işaretli mi.
func (t *LoopTrack) Playing() bool { return t.playing }

var _ AudioHandle = (*LoopTrack)(nil)
