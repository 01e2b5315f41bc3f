// Package cardsession kart hazırlama ve görüntüleme oturumlarının durum
// makinesini içerir: zarfın açılış/kapanış sekansı, içeriğin unfurl
// geçişleri, ses kaynağının yaşam döngüsü ve hazırlama moduna özgü
// önizleme/odak katmanı.
//
// Oturum tek iş parçacıklı, olay güdümlü bir modeldir; kilit yoktur,
// doğruluk geçişlerin sıralamasına dayanır. Zamanlayıcı ve ağ
// tamamlanmaları epoch token'ı taşır: oturum bu arada başka bir duruma
// geçtiyse sonuç sessizce atılır.
package cardsession

import "time"

// Geçiş gecikmeleri: zarf animasyonunun oturma süresi ve unfurl süresi.
const (
	OpenSettleDelay  = time.Second
	CloseSettleDelay = time.Second
	UnfurlDuration   = 800 * time.Millisecond
)

// Session tek bir hazırlama ya da görüntüleme oturumu. Kalıcı değildir;
// sayfadan ayrılana kadar yaşar ve Teardown ile kaynaklarını bırakır.
type Session struct {
	mode       Mode
	letter     LetterState
	reveal     RevealState
	focus      Focus
	previewing bool

	audio AudioHandle
	sched Scheduler
	asset PendingAsset

	// epoch her kesintiye uğratan geçişte artar; bekleyen zamanlayıcı
	// ve ağ sonuçları eski epoch ile gelirse yok sayılır.
	epoch    uint64
	torndown bool
}

// NewAuthoring kart hazırlama oturumu oluşturur. Başlangıç odağı alıcı
// bölümüdür. Ses kaynağı yoksa audio nil verilebilir; bu durumda
// zarf açma istekleri no-op olur.
func NewAuthoring(audio AudioHandle, sched Scheduler) *Session {
	return &Session{
		mode:   ModeAuthoring,
		letter: LetterClosed,
		reveal: RevealCollapsed,
		focus:  FocusRecipient,
		audio:  audio,
		sched:  sched,
	}
}

// NewViewing alıcının salt okunur görüntüleme oturumunu oluşturur.
func NewViewing(audio AudioHandle, sched Scheduler) *Session {
	return &Session{
		mode:   ModeViewing,
		letter: LetterClosed,
		reveal: RevealCollapsed,
		focus:  FocusNone,
		audio:  audio,
		sched:  sched,
	}
}

// Durum okuyucuları.
func (s *Session) Letter() LetterState { return s.letter }
func (s *Session) Reveal() RevealState { return s.reveal }
func (s *Session) Focus() Focus        { return s.focus }
func (s *Session) Previewing() bool    { return s.previewing }
func (s *Session) Mode() Mode          { return s.mode }

// Epoch oturumun geçerlilik token'ı. Asenkron bir işlem başlatılırken
// alınır; tamamlandığında StillCurrent ile karşılaştırılır.
func (s *Session) Epoch() uint64 { return s.epoch }

// StillCurrent verilen token'ın hâlâ geçerli olup olmadığını söyler.
// Eski token'la gelen sonuçlar oturuma uygulanmamalıdır.
func (s *Session) StillCurrent(token uint64) bool {
	return !s.torndown && token == s.epoch
}

// Open zarfı açma isteği. Ses kaynağı yoksa no-op (çökme değil).
// Ses sıfırdan başlatılır; oturma süresi sonunda zarf açılır ve
// unfurl sekansı başlar.
func (s *Session) Open() {
	if s.torndown || s.audio == nil {
		return
	}
	if s.letter != LetterClosed {
		return
	}

	s.letter = LetterOpening
	if s.mode == ModeAuthoring {
		s.focus = FocusNone
	}
	s.audio.PlayFromStart()

	token := s.epoch
	s.sched.AfterFunc(OpenSettleDelay, func() { s.advanceOpen(token) })
}

// advanceOpen açılış oturma süresinin tamamlanma olayı.
func (s *Session) advanceOpen(token uint64) {
	if !s.StillCurrent(token) || s.letter != LetterOpening {
		return
	}
	s.letter = LetterOpen
	s.reveal = RevealUnfurling
	s.sched.AfterFunc(UnfurlDuration, func() { s.advanceUnfurl(token) })
}

// advanceUnfurl unfurl animasyonunun tamamlanma olayı.
func (s *Session) advanceUnfurl(token uint64) {
	if !s.StillCurrent(token) || s.letter != LetterOpen || s.reveal != RevealUnfurling {
		return
	}
	s.reveal = RevealUnfurled
}

// Close zarfı kapatma isteği. İçerik ve ses anında durur, zarfın
// yapısal kapanışı oturma süresi kadar gecikir; kapanış animasyonu
// böylece ani kesilmez. Bekleyen açılış zamanlayıcıları geçersiz kalır.
func (s *Session) Close() {
	if s.torndown || s.letter == LetterClosed {
		return
	}

	s.epoch++
	s.reveal = RevealCollapsed
	if s.audio != nil {
		s.audio.Pause()
	}

	token := s.epoch
	s.sched.AfterFunc(CloseSettleDelay, func() { s.advanceClose(token) })
}

// advanceClose kapanış oturma süresinin tamamlanma olayı.
func (s *Session) advanceClose(token uint64) {
	if !s.StillCurrent(token) {
		return
	}
	s.letter = LetterClosed
}

// TogglePreview hazırlama oturumunda önizleme modunu açıp kapatır.
// Önizlemeden çıkış açık zarfı ve çalan sesi editöre sızdırmaz:
// zarf ve içerik anında kapanır, ses durur.
func (s *Session) TogglePreview() {
	if s.torndown || s.mode != ModeAuthoring {
		return
	}
	if s.previewing {
		s.exitPreview()
		return
	}
	s.previewing = true
	s.focus = FocusNone
}

func (s *Session) exitPreview() {
	s.previewing = false
	s.epoch++
	s.letter = LetterClosed
	s.reveal = RevealCollapsed
	if s.audio != nil {
		s.audio.Pause()
	}
}

// SetFocus aktif form bölümünü değiştirir. Yalnızca hazırlama modunda ve
// önizleme dışında anlamlıdır; ses üzerinde etkisi yoktur.
func (s *Session) SetFocus(f Focus) {
	if s.torndown || s.mode != ModeAuthoring || s.previewing {
		return
	}
	s.focus = f
}

// SelectImage yeni görsel adayını kaydeder. Önceki önizleme referansı
// varsa önce bırakılır. Odak içerik bölümüne geçer.
func (s *Session) SelectImage(fileName string, preview PreviewRef) {
	if s.torndown || s.mode != ModeAuthoring {
		return
	}
	s.asset.releasePreview()
	s.asset.FileName = fileName
	s.asset.preview = preview
	s.SetFocus(FocusContent)
}

// SetCaptionDraft görsel açıklaması taslağını günceller.
func (s *Session) SetCaptionDraft(caption string) {
	if s.torndown {
		return
	}
	s.asset.Caption = caption
}

// ClearImage görsel adayını ve açıklama taslağını temizler,
// önizleme referansını bırakır.
func (s *Session) ClearImage() {
	if s.torndown {
		return
	}
	s.asset.releasePreview()
	s.asset = PendingAsset{}
}

// Asset bekleyen görsel adayının anlık kopyası.
func (s *Session) Asset() PendingAsset { return s.asset }

// ResetAfterCreate kart başarıyla kaydedildikten sonra formu sıfırlar:
// görsel adayı bırakılır, odak alıcı bölümüne döner.
func (s *Session) ResetAfterCreate() {
	if s.torndown || s.mode != ModeAuthoring {
		return
	}
	s.ClearImage()
	s.focus = FocusRecipient
}

// Teardown oturumun kaynaklarını bırakır: ses durdurulup referansı
// temizlenir, bekleyen önizleme referansı revoke edilir. İdempotenttir;
// tekrarlanan çağrılar no-op.
func (s *Session) Teardown() {
	if s.torndown {
		return
	}
	s.torndown = true
	s.epoch++
	if s.audio != nil {
		s.audio.Pause()
		s.audio = nil
	}
	s.asset.releasePreview()
}

// TornDown oturumun kapatılıp kapatılmadığını söyler.
func (s *Session) TornDown() bool { return s.torndown }
