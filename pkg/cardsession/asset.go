package cardsession

// PreviewRef yerel görsel önizlemesinin geri alınabilir referansı
// (tarayıcı tarafındaki object URL'in karşılığı). Revoke arkadaki
// kaynağı serbest bırakır; oturum her referansı en fazla bir kez
// revoke eder.
type PreviewRef interface {
	Revoke()
}

// RevokeFunc fonksiyonu PreviewRef olarak kullanmayı sağlar.
type RevokeFunc func()

func (f RevokeFunc) Revoke() {
	if f != nil {
		f()
	}
}

// PendingAsset henüz yüklenmemiş görsel adayı: dosya adı, önizleme
// referansı ve açıklama taslağı. Yalnızca hazırlama oturumuna aittir.
type PendingAsset struct {
	FileName string
	Caption  string
	preview  PreviewRef
}

// releasePreview önizleme referansını bırakır. Hiç oluşturulmamış ya da
// zaten bırakılmış referans için no-op.
func (a *PendingAsset) releasePreview() {
	if a == nil || a.preview == nil {
		return
	}
	a.preview.Revoke()
	a.preview = nil
}
