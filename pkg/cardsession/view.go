package cardsession

// Visibility mevcut duruma göre sunumda nelerin görüneceği.
// Render katmanı yalnızca bu değerlere bakar; durum alanlarını
// doğrudan yorumlamaz.
type Visibility struct {
	ShowClosedLetter bool
	ShowCard         bool
	Unfurled         bool
	ShowEditorPanel  bool
}

// View durumdan görünürlük kurallarını türetir.
//
// Görüntüleme ve önizleme: zarf kapalıyken kapalı zarf, açılırken ve
// açıkken kart gösterilir; Unfurled yalnızca unfurl tamamlandığında
// true olur. Düzenleme: içerik bölümü odaktayken kart açık halde
// inline gösterilir, aksi halde kapalı zarf.
func (s *Session) View() Visibility {
	if s.mode == ModeAuthoring && !s.previewing {
		return Visibility{
			ShowClosedLetter: s.focus != FocusContent,
			ShowCard:         s.focus == FocusContent,
			Unfurled:         s.focus == FocusContent,
			ShowEditorPanel:  true,
		}
	}

	return Visibility{
		ShowClosedLetter: s.letter == LetterClosed,
		ShowCard:         s.letter != LetterClosed,
		Unfurled:         s.reveal == RevealUnfurled,
	}
}
